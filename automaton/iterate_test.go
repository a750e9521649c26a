package automaton

import (
	"reflect"
	"testing"

	"github.com/awwright/grammarswiki-sub003/symbolclass"
)

func TestIterateDigitsAscending(t *testing.T) {
	a := digits('0', '9')
	it := a.Iterate()
	var got []string
	for {
		s, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, string(rune(s[0])))
	}
	want := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIterateLengthThenClassOrder(t *testing.T) {
	a := Union(FromSequence(seq("b")), Union(FromSequence(seq("a")), FromSequence(seq("aa"))))
	it := a.Iterate()
	var got [][]symbolclass.Symbol
	for i := 0; i < 3; i++ {
		s, ok := it.Next()
		if !ok {
			t.Fatalf("expected more results")
		}
		got = append(got, append([]symbolclass.Symbol{}, s...))
	}
	if string(runeSlice(got[0])) != "a" || string(runeSlice(got[1])) != "b" || string(runeSlice(got[2])) != "aa" {
		t.Errorf("unexpected order: %v", got)
	}
}

func runeSlice(s []symbolclass.Symbol) []rune {
	out := make([]rune, len(s))
	for i, c := range s {
		out[i] = rune(c)
	}
	return out
}

func TestIterateEmptyLanguageYieldsNothing(t *testing.T) {
	it := Empty().Iterate()
	if _, ok := it.Next(); ok {
		t.Errorf("empty language should never yield a string")
	}
}

func TestIterateEpsilonYieldsOnlyEmpty(t *testing.T) {
	it := Epsilon().Iterate()
	s, ok := it.Next()
	if !ok || len(s) != 0 {
		t.Errorf("epsilon should yield exactly one empty string")
	}
	if _, ok := it.Next(); ok {
		t.Errorf("epsilon should yield nothing further")
	}
}
