package automaton

import (
	"testing"

	"github.com/awwright/grammarswiki-sub003/symbolclass"
)

func digits(lo, hi symbolclass.Symbol) Dfa { return NewRange(lo, hi) }

func TestUnionAcceptsEither(t *testing.T) {
	a := digits('0', '4')
	b := digits('5', '9')
	u := Union(a, b)
	for c := symbolclass.Symbol('0'); c <= '9'; c++ {
		if !u.Contains([]symbolclass.Symbol{c}) {
			t.Errorf("union should contain %q", c)
		}
	}
	if u.Contains([]symbolclass.Symbol{'a'}) {
		t.Errorf("union should not contain 'a'")
	}
}

func TestIntersectionOverlap(t *testing.T) {
	a := digits('0', '5')
	b := digits('3', '9')
	i := Intersection(a, b)
	for c := symbolclass.Symbol('3'); c <= '5'; c++ {
		if !i.Contains([]symbolclass.Symbol{c}) {
			t.Errorf("intersection should contain %q", c)
		}
	}
	if i.Contains([]symbolclass.Symbol{'1'}) || i.Contains([]symbolclass.Symbol{'9'}) {
		t.Errorf("intersection should not extend past the overlap")
	}
}

func TestDifferenceRemovesOther(t *testing.T) {
	a := digits('0', '9')
	b := digits('5', '9')
	d := Difference(a, b)
	if !d.Contains([]symbolclass.Symbol{'3'}) {
		t.Errorf("difference should keep '3'")
	}
	if d.Contains([]symbolclass.Symbol{'7'}) {
		t.Errorf("difference should drop '7'")
	}
}

func TestSymmetricDifferenceIsXor(t *testing.T) {
	a := digits('0', '5')
	b := digits('3', '9')
	s := SymmetricDifference(a, b)
	if s.Contains([]symbolclass.Symbol{'4'}) {
		t.Errorf("symmetric difference should drop the shared overlap")
	}
	if !s.Contains([]symbolclass.Symbol{'1'}) || !s.Contains([]symbolclass.Symbol{'8'}) {
		t.Errorf("symmetric difference should keep the non-shared parts")
	}
}

func TestUnionAssociativeViaEquals(t *testing.T) {
	a := digits('0', '2')
	b := digits('3', '5')
	c := digits('6', '8')
	left := Union(Union(a, b), c)
	right := Union(a, Union(b, c))
	if !Equals(left, right) {
		t.Errorf("union should be associative")
	}
}
