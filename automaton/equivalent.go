package automaton

import "github.com/awwright/grammarswiki-sub003/symbolclass"

// EquivalentInputs follows seq from a's initial state to a state q. If q is
// oblivion or not live, it reports false and the caller should treat the
// result as the "non-live" marker rather than a meaningful language. If q
// is live, it returns the Dfa whose accepted language is exactly the set
// of strings that reach q from a's initial state: every string in that
// language behaves identically to seq from this point forward.
func EquivalentInputs(a Dfa, seq []symbolclass.Symbol) (Dfa, bool) {
	cur := a.Start()
	for _, s := range seq {
		cur = a.Step(cur, s)
		if cur == Oblivion {
			return Empty(), false
		}
	}
	live := computeLive(a)
	if int(cur) >= len(live) || !live[cur] {
		return Empty(), false
	}

	final := make([]bool, len(a.states))
	final[cur] = true
	return withFinals(a, final).Minimize().Normalize(), true
}
