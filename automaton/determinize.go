package automaton

import (
	"strconv"
	"strings"

	"github.com/awwright/grammarswiki-sub003/symbolclass"
)

// determinize runs subset construction over n, starting from the
// epsilon-closure of n's start state, and returns an equivalent Dfa. States
// are discovered and numbered in breadth-first order, and a state's
// outgoing partition classes are visited in ascending order, so the result
// is deterministic for a given n. It is not yet normalized: dead states are
// kept and several edges may lead to one target, so callers run Normalize.
func determinize(n *thompsonNFA) Dfa {
	// trim drops states that are neither final nor have a labelled edge:
	// after the closure is taken they cannot change the subset's behaviour,
	// and keeping them would split equivalent subsets apart.
	trim := func(set []nfaStateID) []nfaStateID {
		out := set[:0]
		for _, s := range set {
			if n.states[s].final || len(n.states[s].edges) > 0 {
				out = append(out, s)
			}
		}
		return out
	}
	startSet := trim(epsilonClosure(n, []nfaStateID{n.start}))

	setKey := func(set []nfaStateID) string {
		parts := make([]string, len(set))
		for i, s := range set {
			parts[i] = strconv.Itoa(int(s))
		}
		return strings.Join(parts, ",")
	}

	type pending struct {
		id  StateID
		set []nfaStateID
	}

	keyToID := map[string]StateID{setKey(startSet): 0}
	queue := []pending{{id: 0, set: startSet}}
	var states []dfaState

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		final := false
		for _, s := range cur.set {
			if n.states[s].final {
				final = true
				break
			}
		}

		var labels []symbolclass.Class
		for _, s := range cur.set {
			for _, e := range n.states[s].edges {
				labels = append(labels, e.Label)
			}
		}
		part := symbolclass.BuildPartition(labels)

		var edges []Edge
		for _, cls := range part.Classes {
			rep := cls[0].Lo
			var targets []nfaStateID
			for _, s := range cur.set {
				for _, e := range n.states[s].edges {
					if e.Label.Contains(rep) {
						targets = append(targets, e.To)
					}
				}
			}
			closed := trim(epsilonClosure(n, targets))
			key := setKey(closed)
			id, ok := keyToID[key]
			if !ok {
				id = StateID(len(keyToID))
				keyToID[key] = id
				queue = append(queue, pending{id: id, set: closed})
			}
			edges = append(edges, Edge{Label: cls, To: id})
		}

		for len(states) <= int(cur.id) {
			states = append(states, dfaState{})
		}
		states[cur.id] = dfaState{edges: edges, final: final}
	}

	return Dfa{states: states}
}
