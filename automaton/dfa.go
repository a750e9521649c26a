package automaton

import (
	"fmt"

	"github.com/awwright/grammarswiki-sub003/symbolclass"
)

// StateID identifies a state within a Dfa's state slice.
type StateID int32

// Oblivion is the implicit rejecting sink state: it is not a member of a
// Dfa's state slice, carries no outgoing transitions of its own, and is
// never final. Every State method treats it as a valid, terminal StateID.
const Oblivion StateID = -1

// Edge is a single outgoing transition: reading any symbol in Label moves
// to To. A state's edges are pairwise disjoint and sorted by each label's
// first range, the canonical order Normalize restores after construction.
type Edge struct {
	Label symbolclass.Class
	To    StateID
}

type dfaState struct {
	edges []Edge
	final bool
}

// Dfa is an immutable deterministic finite automaton over closed ranges of
// symbolclass.Symbol. The initial state is always index 0. Dfa values are
// safe to share and compare; every constructor and combinator in this
// package returns a minimized, normalized Dfa.
type Dfa struct {
	states []dfaState
}

// NumStates returns the number of explicit states, excluding Oblivion.
func (d Dfa) NumStates() int { return len(d.states) }

// Start returns the initial state, always 0 for any non-degenerate Dfa.
func (d Dfa) Start() StateID { return 0 }

// IsFinal reports whether q is an accepting state. Oblivion is never final.
func (d Dfa) IsFinal(q StateID) bool {
	if q == Oblivion || int(q) >= len(d.states) {
		return false
	}
	return d.states[q].final
}

// Edges returns a copy of q's outgoing transitions. Oblivion has none.
func (d Dfa) Edges(q StateID) []Edge {
	if q == Oblivion || int(q) >= len(d.states) {
		return nil
	}
	out := make([]Edge, len(d.states[q].edges))
	copy(out, d.states[q].edges)
	return out
}

// Step follows a single symbol from q, returning Oblivion if no edge at q
// covers s (or q is already Oblivion). Step never fails: oblivion is a
// value, not an error.
func (d Dfa) Step(q StateID, s symbolclass.Symbol) StateID {
	if q == Oblivion || int(q) >= len(d.states) {
		return Oblivion
	}
	for _, e := range d.states[q].edges {
		if e.Label.Contains(s) {
			return e.To
		}
	}
	return Oblivion
}

// NextState follows seq from an arbitrary state, returning Oblivion when
// the run falls off the automaton partway through.
func (d Dfa) NextState(from StateID, seq []symbolclass.Symbol) StateID {
	q := from
	for _, s := range seq {
		q = d.Step(q, s)
		if q == Oblivion {
			return Oblivion
		}
	}
	return q
}

// Contains reports whether seq is accepted, i.e. NextState(Start(), seq)
// lands on a final state.
func (d Dfa) Contains(seq []symbolclass.Symbol) bool {
	return d.IsFinal(d.NextState(d.Start(), seq))
}

// String renders a compact debug view of the automaton's states and edges.
func (d Dfa) String() string {
	s := fmt.Sprintf("Dfa{states:%d}", len(d.states))
	for i, st := range d.states {
		s += fmt.Sprintf("\n  q%d final=%v", i, st.final)
		for _, e := range st.edges {
			to := "oblivion"
			if e.To != Oblivion {
				to = fmt.Sprintf("q%d", e.To)
			}
			s += fmt.Sprintf("\n    %s -> %s", e.Label, to)
		}
	}
	return s
}

// withFinals returns a Dfa sharing d's states and transitions but with
// finality replaced by final, which must have exactly len(d.states)
// entries. Used by Dock and EquivalentInputs, both of which reuse a
// source automaton's transition structure under a different acceptance
// condition.
func withFinals(d Dfa, final []bool) Dfa {
	states := make([]dfaState, len(d.states))
	for i, st := range d.states {
		states[i] = dfaState{edges: st.edges, final: final[i]}
	}
	return Dfa{states: states}
}

// unionOfLabels returns the canonical class covering every edge label.
func unionOfLabels(edges []Edge) symbolclass.Class {
	classes := make([]symbolclass.Class, len(edges))
	for i, e := range edges {
		classes[i] = e.Label
	}
	return symbolclass.UnionAll(classes...)
}
