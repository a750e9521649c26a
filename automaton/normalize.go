package automaton

import (
	"sort"

	"github.com/awwright/grammarswiki-sub003/symbolclass"
)

// Normalize renumbers states by breadth-first visit order from the initial
// state, merges the edges each state has into one target into a single
// edge, and sorts each state's outgoing edges by their label's first
// range, producing the canonical form two structurally equal automata both
// converge to. It also prunes non-live states other than the initial one:
// since Oblivion is not a member of Q, an edge into a state that can never
// reach a final is rewritten to Oblivion and the dead state is dropped.
// Every combinator in this package calls Normalize on its minimized result,
// so two results accepting the same language are structurally equal.
func (d Dfa) Normalize() Dfa {
	return rerootAndPrune(d, d.Start())
}

// rerootAndPrune renumbers d by breadth-first visit order starting from
// start, dropping every state unreachable from start and every state that
// cannot reach a final (mirroring Normalize, but for an arbitrary state
// instead of always d.Start()). Derive uses this to make the state reached
// after consuming a prefix the new initial state.
func rerootAndPrune(d Dfa, start StateID) Dfa {
	if start == Oblivion || len(d.states) == 0 {
		return Empty()
	}
	live := computeLive(d)
	if !live[start] {
		return Empty()
	}

	newID := make(map[StateID]StateID)
	order := []StateID{start}
	newID[start] = 0
	queue := []StateID{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range sortedEdges(d.states[cur].edges) {
			if e.To == Oblivion || !live[e.To] {
				continue
			}
			if _, seen := newID[e.To]; !seen {
				newID[e.To] = StateID(len(order))
				order = append(order, e.To)
				queue = append(queue, e.To)
			}
		}
	}

	states := make([]dfaState, len(order))
	for newIdx, old := range order {
		st := d.states[old]
		var edges []Edge
		for _, e := range sortedEdges(st.edges) {
			if e.To == Oblivion || !live[e.To] {
				continue
			}
			to := newID[e.To]
			merged := false
			for k := range edges {
				if edges[k].To == to {
					edges[k].Label = symbolclass.Union(edges[k].Label, e.Label)
					merged = true
					break
				}
			}
			if !merged {
				edges = append(edges, Edge{Label: e.Label, To: to})
			}
		}
		states[newIdx] = dfaState{edges: edges, final: st.final}
	}
	return Dfa{states: states}
}

func sortedEdges(edges []Edge) []Edge {
	out := make([]Edge, len(edges))
	copy(out, edges)
	sort.Slice(out, func(i, j int) bool {
		li, lj := out[i].Label, out[j].Label
		if len(li) == 0 || len(lj) == 0 {
			return len(li) < len(lj)
		}
		if li[0].Lo != lj[0].Lo {
			return li[0].Lo < lj[0].Lo
		}
		return li[0].Hi < lj[0].Hi
	})
	return out
}

// Equals reports whether a and b accept exactly the same language, via
// (a △ b).IsEmpty().
func Equals(a, b Dfa) bool {
	return SymmetricDifference(a, b).IsEmpty()
}

// Alphabet returns the partitioned alphabet over d: the finest set of
// disjoint symbol classes such that every transition in d labels its edge
// with a union of whole classes in the result.
func (d Dfa) Alphabet() []symbolclass.Class {
	var labels []symbolclass.Class
	for _, st := range d.states {
		for _, e := range st.edges {
			labels = append(labels, e.Label)
		}
	}
	return symbolclass.BuildPartition(labels).Classes
}
