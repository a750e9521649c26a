package automaton

import "github.com/awwright/grammarswiki-sub003/symbolclass"

// product runs a synchronized BFS over the pair (a, b), discovering the
// product automaton's reachable states only, and decides each product
// state's finality with finalFn. Dfa.Step already maps a missing
// transition to Oblivion on either side, so a pair with one side stuck
// falls out of the walk naturally; a class on which both sides are stuck
// gets no edge at all, so (Oblivion, Oblivion) never becomes a state.
func product(a, b Dfa, finalFn func(af, bf bool) bool) Dfa {
	type pair struct{ x, y StateID }

	pairID := map[pair]StateID{{a.Start(), b.Start()}: 0}
	order := []pair{{a.Start(), b.Start()}}
	var states []dfaState

	for i := 0; i < len(order); i++ {
		cur := order[i]

		af := cur.x != Oblivion && a.states[cur.x].final
		bf := cur.y != Oblivion && b.states[cur.y].final
		final := finalFn(af, bf)

		var labels []symbolclass.Class
		if cur.x != Oblivion {
			for _, e := range a.states[cur.x].edges {
				labels = append(labels, e.Label)
			}
		}
		if cur.y != Oblivion {
			for _, e := range b.states[cur.y].edges {
				labels = append(labels, e.Label)
			}
		}
		part := symbolclass.BuildPartition(labels)

		var edges []Edge
		for _, cls := range part.Classes {
			rep := cls[0].Lo
			next := pair{a.Step(cur.x, rep), b.Step(cur.y, rep)}
			if next.x == Oblivion && next.y == Oblivion {
				continue
			}
			id, ok := pairID[next]
			if !ok {
				id = StateID(len(order))
				pairID[next] = id
				order = append(order, next)
			}
			edges = append(edges, Edge{Label: cls, To: id})
		}

		for len(states) <= i {
			states = append(states, dfaState{})
		}
		states[i] = dfaState{edges: edges, final: final}
	}

	return Dfa{states: states}
}

// Union returns the Dfa accepting L(a) ∪ L(b).
func Union(a, b Dfa) Dfa {
	return product(a, b, func(af, bf bool) bool { return af || bf }).Minimize().Normalize()
}

// Intersection returns the Dfa accepting L(a) ∩ L(b).
func Intersection(a, b Dfa) Dfa {
	return product(a, b, func(af, bf bool) bool { return af && bf }).Minimize().Normalize()
}

// Difference returns the Dfa accepting L(a) \ L(b).
func Difference(a, b Dfa) Dfa {
	return product(a, b, func(af, bf bool) bool { return af && !bf }).Minimize().Normalize()
}

// SymmetricDifference returns the Dfa accepting the sequences on which a
// and b disagree: (L(a) \ L(b)) ∪ (L(b) \ L(a)).
func SymmetricDifference(a, b Dfa) Dfa {
	return product(a, b, func(af, bf bool) bool { return af != bf }).Minimize().Normalize()
}
