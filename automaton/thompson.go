package automaton

import (
	"github.com/awwright/grammarswiki-sub003/internal/conv"
	"github.com/awwright/grammarswiki-sub003/internal/sparse"
	"github.com/awwright/grammarswiki-sub003/symbolclass"
)

// nfaStateID indexes into a thompsonNFA's state slice. Unlike StateID,
// nfaStateID has no Oblivion sentinel: every nondeterministic state is
// explicit, including states with no transitions at all.
type nfaStateID int32

type nfaEdge struct {
	Label symbolclass.Class
	To    nfaStateID
}

type nfaState struct {
	edges []nfaEdge
	eps   []nfaStateID
	final bool
}

// thompsonNFA is the epsilon-NFA intermediate form used by Concatenate,
// Star and Reverse. It exists purely to feed determinize; nothing outside
// this package ever sees one.
type thompsonNFA struct {
	states []nfaState
	start  nfaStateID
}

func newThompsonNFA() *thompsonNFA {
	return &thompsonNFA{}
}

func (n *thompsonNFA) addState() nfaStateID {
	id := nfaStateID(len(n.states))
	n.states = append(n.states, nfaState{})
	return id
}

func (n *thompsonNFA) addEdge(from, to nfaStateID, label symbolclass.Class) {
	n.states[from].edges = append(n.states[from].edges, nfaEdge{Label: label, To: to})
}

func (n *thompsonNFA) addEps(from, to nfaStateID) {
	n.states[from].eps = append(n.states[from].eps, to)
}

// liftDfa copies d's states into n, offset by the number of states already
// present in n, and returns the offset so callers can translate d's
// StateIDs into nfaStateIDs. Oblivion transitions are simply omitted: a
// missing NFA edge already means "no way forward", the same meaning
// Oblivion carries in a Dfa.
func (n *thompsonNFA) liftDfa(d Dfa) nfaStateID {
	offset := nfaStateID(len(n.states))
	for _, st := range d.states {
		id := n.addState()
		n.states[id].final = st.final
		for _, e := range st.edges {
			if e.To == Oblivion {
				continue
			}
			n.addEdge(id, offset+nfaStateID(e.To), e.Label)
		}
	}
	return offset
}

// epsilonClosure returns the set of states reachable from seeds via zero or
// more epsilon transitions, including the seeds themselves. The visited
// set's universe is exactly n's state count, known upfront, so a
// sparse.SparseSet tracks membership in O(1) instead of hashing
// nfaStateIDs through a map.
func epsilonClosure(n *thompsonNFA, seeds []nfaStateID) []nfaStateID {
	seen := sparse.NewSparseSet(conv.IntToUint32(len(n.states)))
	var stack []nfaStateID
	for _, s := range seeds {
		if !seen.Contains(uint32(s)) {
			seen.Insert(uint32(s))
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range n.states[cur].eps {
			if !seen.Contains(uint32(next)) {
				seen.Insert(uint32(next))
				stack = append(stack, next)
			}
		}
	}
	out := make([]nfaStateID, 0, seen.Size())
	for _, v := range seen.Values() {
		out = append(out, nfaStateID(v))
	}
	insertionSortNFAStates(out)
	return out
}

func insertionSortNFAStates(s []nfaStateID) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
