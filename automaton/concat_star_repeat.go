package automaton

// Infinite marks an unbounded upper bound for Repeat.
const Infinite = -1

// Concatenate returns the Dfa accepting L(a)·L(b): sequences formed by an
// a-string immediately followed by a b-string.
func Concatenate(a, b Dfa) Dfa {
	n := newThompsonNFA()
	aOff := n.liftDfa(a)
	bOff := n.liftDfa(b)
	n.start = aOff + nfaStateID(a.Start())

	for i, st := range a.states {
		if st.final {
			n.states[aOff+nfaStateID(i)].final = false
			n.addEps(aOff+nfaStateID(i), bOff+nfaStateID(b.Start()))
		}
	}
	return determinize(n).Minimize().Normalize()
}

// Star returns the Dfa accepting L(a)*: zero or more concatenations of a.
func Star(a Dfa) Dfa {
	n := newThompsonNFA()
	start := n.addState()
	n.states[start].final = true
	aOff := n.liftDfa(a)
	n.start = start
	n.addEps(start, aOff+nfaStateID(a.Start()))

	for i, st := range a.states {
		if st.final {
			n.addEps(aOff+nfaStateID(i), start)
		}
	}
	return determinize(n).Minimize().Normalize()
}

// Repeat returns the Dfa accepting between min and max concatenations of a,
// inclusive. max may be Infinite for an unbounded upper bound, in which
// case the final min'th copy is followed by Star(a).
func Repeat(a Dfa, min, max int) Dfa {
	if min < 0 {
		min = 0
	}
	result := Epsilon()
	for i := 0; i < min; i++ {
		result = Concatenate(result, a)
	}
	if max == Infinite {
		return Concatenate(result, Star(a)).Minimize().Normalize()
	}
	for i := min; i < max; i++ {
		result = Concatenate(result, optional(a))
	}
	return result.Minimize().Normalize()
}

// optional returns the Dfa accepting L(a) ∪ {ε}.
func optional(a Dfa) Dfa {
	return Union(a, Epsilon())
}
