package automaton

import "github.com/awwright/grammarswiki-sub003/symbolclass"

// Complement returns the Dfa accepting universe* \ L(a): every sequence
// over universe that a does not accept. universe must be nonempty — the
// complement of a language is only meaningful relative to a fixed
// alphabet, since growing the alphabet always grows the complement.
//
// Totalization makes every state have an edge for every symbol in
// universe, routing anything a state doesn't already handle to a single
// new sink state with a self-loop on universe, itself non-final. Swapping
// finality on the totalized machine then yields the complement directly.
func Complement(a Dfa, universe symbolclass.Class) (Dfa, error) {
	if universe.IsEmpty() {
		return Dfa{}, ErrAlphabetUnspecified
	}

	sink := StateID(len(a.states))
	states := make([]dfaState, len(a.states)+1)
	for i, st := range a.states {
		handled := unionOfLabels(st.edges)
		leftover := symbolclass.Difference(universe, handled)
		var edges []Edge
		for _, e := range st.edges {
			if label := symbolclass.Intersection(e.Label, universe); !label.IsEmpty() {
				edges = append(edges, Edge{Label: label, To: e.To})
			}
		}
		if !leftover.IsEmpty() {
			edges = append(edges, Edge{Label: leftover, To: sink})
		}
		states[i] = dfaState{edges: edges, final: !st.final}
	}
	states[sink] = dfaState{
		edges: []Edge{{Label: universe, To: sink}},
		final: true,
	}

	return Dfa{states: states}.Minimize().Normalize(), nil
}
