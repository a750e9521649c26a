package automaton

import "testing"

func TestDeriveStripsPrefix(t *testing.T) {
	a := FromSequence(seq("abc"))
	d := Derive(a, seq("ab"))
	if !d.Contains(seq("c")) {
		t.Errorf("derive by 'ab' should accept the remaining 'c'")
	}
	if d.Contains(seq("")) || d.Contains(seq("bc")) {
		t.Errorf("derive should only accept the exact suffix")
	}
}

func TestDeriveOffPathIsEmpty(t *testing.T) {
	a := FromSequence(seq("abc"))
	d := Derive(a, seq("xy"))
	if !d.IsEmpty() {
		t.Errorf("deriving by an unmatched prefix should give the empty language")
	}
}

func TestDockUnambiguousConcatenation(t *testing.T) {
	// "ab" followed by "cd": no prefix P makes P·"cd" a string of "ab", so
	// dock(a, b) is empty — not even the empty prefix qualifies.
	a := FromSequence(seq("ab"))
	b := FromSequence(seq("cd"))
	overlap := Dock(a, b)
	if overlap.Contains(seq("")) {
		t.Errorf("dock should reject the empty prefix: \"cd\" is not accepted by a")
	}
	if overlap.Contains(seq("a")) || overlap.Contains(seq("ab")) {
		t.Errorf("dock should reject prefixes whose continuation cannot satisfy all of b")
	}
}

func TestDockFullOverlap(t *testing.T) {
	// a = b = "x": dock(a, b) should accept the empty prefix, since from
	// a's own initial state, everything b accepts is accepted by a too.
	x := FromSequence(seq("x"))
	overlap := Dock(x, x)
	if !overlap.Contains(seq("")) {
		t.Errorf("dock(x, x) should accept the empty prefix")
	}
}
