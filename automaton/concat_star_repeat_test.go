package automaton

import (
	"testing"

	"github.com/awwright/grammarswiki-sub003/symbolclass"
)

func seq(s string) []symbolclass.Symbol {
	out := make([]symbolclass.Symbol, len(s))
	for i, c := range []byte(s) {
		out[i] = symbolclass.Symbol(c)
	}
	return out
}

func TestConcatenateJoinsLanguages(t *testing.T) {
	a := FromSequence(seq("ab"))
	b := FromSequence(seq("cd"))
	c := Concatenate(a, b)
	if !c.Contains(seq("abcd")) {
		t.Errorf("expected abcd to be accepted")
	}
	if c.Contains(seq("ab")) || c.Contains(seq("cd")) || c.Contains(seq("abc")) {
		t.Errorf("concatenation should require both parts in full")
	}
}

func TestStarAcceptsEmptyAndRepeats(t *testing.T) {
	a := FromSequence(seq("ab"))
	s := Star(a)
	if !s.Contains(seq("")) {
		t.Errorf("star should accept empty")
	}
	if !s.Contains(seq("ab")) || !s.Contains(seq("abab")) || !s.Contains(seq("ababab")) {
		t.Errorf("star should accept any number of repeats")
	}
	if s.Contains(seq("a")) || s.Contains(seq("aba")) {
		t.Errorf("star should reject partial repeats")
	}
}

func TestRepeatBounds(t *testing.T) {
	a := FromSequence(seq("x"))
	r := Repeat(a, 2, 3)
	if r.Contains(seq("x")) || r.Contains(seq("")) {
		t.Errorf("repeat(2,3) should reject fewer than 2")
	}
	if !r.Contains(seq("xx")) || !r.Contains(seq("xxx")) {
		t.Errorf("repeat(2,3) should accept 2 or 3")
	}
	if r.Contains(seq("xxxx")) {
		t.Errorf("repeat(2,3) should reject more than 3")
	}
}

func TestRepeatUnboundedUpper(t *testing.T) {
	a := FromSequence(seq("x"))
	r := Repeat(a, 1, Infinite)
	if r.Contains(seq("")) {
		t.Errorf("repeat(1,inf) should reject empty")
	}
	for n := 1; n <= 5; n++ {
		s := make([]symbolclass.Symbol, n)
		for i := range s {
			s[i] = 'x'
		}
		if !r.Contains(s) {
			t.Errorf("repeat(1,inf) should accept %d copies", n)
		}
	}
}
