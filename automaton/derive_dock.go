package automaton

import "github.com/awwright/grammarswiki-sub003/symbolclass"

// Derive returns the left quotient of a by prefix: the Dfa accepting every
// suffix w such that prefix·w is in L(a). This is exactly the state a
// reaches after consuming prefix, reseated as the new initial state.
func Derive(a Dfa, prefix []symbolclass.Symbol) Dfa {
	cur := a.Start()
	for _, s := range prefix {
		cur = a.Step(cur, s)
		if cur == Oblivion {
			return Empty()
		}
	}
	return rerootAndPrune(a, cur)
}

// DeriveFromStates returns the union, over every state in states, of the
// language reachable from that state — the generalization of Derive from
// a single prefix to a whole set of re-entry points at once. The
// ambiguity package uses this to take the derivative of a Dfa with
// respect to an entire language rather than a single string.
func DeriveFromStates(d Dfa, states []StateID) Dfa {
	result := Empty()
	for _, q := range states {
		result = Union(result, rerootAndPrune(d, q))
	}
	return result
}

// Dock returns the largest language P such that P·B ⊆ A, starting from
// A's initial state: the set of prefixes of a whose right-quotient
// contains every string of b. A state q of a is kept final in the result
// iff everything b accepts is also accepted by a from q onward, i.e. iff
// Derive(a, <path to q>) is a superset of L(b).
func Dock(a, b Dfa) Dfa {
	final := make([]bool, len(a.states))
	for q := range a.states {
		if Difference(b, rerootAndPrune(a, StateID(q))).IsEmpty() {
			final[q] = true
		}
	}
	return withFinals(a, final).Minimize().Normalize()
}
