package automaton

import (
	"testing"

	"github.com/awwright/grammarswiki-sub003/symbolclass"
)

func TestNormalizeProducesStructuralEquality(t *testing.T) {
	a := Union(digits('0', '4'), digits('5', '9')).Minimize().Normalize()
	b := digits('0', '9').Minimize().Normalize()
	if a.NumStates() != b.NumStates() {
		t.Fatalf("normalized equivalent automata should have the same state count: %d vs %d", a.NumStates(), b.NumStates())
	}
	for q := 0; q < a.NumStates(); q++ {
		if a.IsFinal(StateID(q)) != b.IsFinal(StateID(q)) {
			t.Errorf("state %d finality mismatch", q)
		}
	}
}

func TestNormalizePrunesDeadStates(t *testing.T) {
	n := newThompsonNFA()
	s0 := n.addState()
	s1 := n.addState()
	dead := n.addState()
	n.start = s0
	n.states[s1].final = true
	n.addEdge(s0, s1, symbolclass.Single('a'))
	n.addEdge(s0, dead, symbolclass.Single('b'))
	d := determinize(n).Normalize()
	if d.Contains(seq("b")) {
		t.Errorf("dead branch should be pruned and never accept")
	}
	if !d.Contains(seq("a")) {
		t.Errorf("live branch should still accept")
	}
}

func TestEqualsDetectsDifference(t *testing.T) {
	if Equals(digits('0', '9'), digits('0', '8')) {
		t.Errorf("different languages should not be equal")
	}
}

func TestAlphabetPartitionsOverlappingEdges(t *testing.T) {
	d := Union(digits('0', '5'), digits('3', '9'))
	classes := d.Alphabet()
	var total uint64
	for _, c := range classes {
		total += c.Len()
	}
	if total != 10 {
		t.Fatalf("expected the partition to cover all 10 digits exactly once, got %d symbols across %d classes", total, len(classes))
	}
}
