package regexsynth

import (
	"sort"

	"github.com/awwright/grammarswiki-sub003/automaton"
)

// Synthesize builds a regex tree equivalent to d via state elimination: a
// fresh start and accept state are added, every explicit state is
// eliminated one at a time by folding its self-loop and each
// incoming/outgoing pair of edges into a single regex-labeled edge, and
// the edge that remains between start and accept is the answer.
func Synthesize(d automaton.Dfa) Node {
	n := d.NumStates()
	size := n + 2
	start, accept := n, n+1

	trans := make([][]Node, size)
	for i := range trans {
		trans[i] = make([]Node, size)
		for j := range trans[i] {
			trans[i][j] = Empty()
		}
	}

	for i := 0; i < n; i++ {
		for _, e := range d.Edges(automaton.StateID(i)) {
			if e.To == automaton.Oblivion {
				continue
			}
			j := int(e.To)
			trans[i][j] = Alt(trans[i][j], Symbol(e.Label))
		}
		if d.IsFinal(automaton.StateID(i)) {
			trans[i][accept] = Alt(trans[i][accept], Epsilon())
		}
	}
	trans[start][int(d.Start())] = Alt(trans[start][int(d.Start())], Epsilon())

	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}
	isAlive := func(idx int) bool { return idx >= n || alive[idx] }

	for _, k := range eliminationOrder(d, n) {
		loop := trans[k][k]
		var loopStar Node
		if loop.Kind == NodeEmpty {
			loopStar = Epsilon()
		} else {
			loopStar = Star(loop)
		}
		for i := 0; i < size; i++ {
			if i == k || !isAlive(i) || trans[i][k].Kind == NodeEmpty {
				continue
			}
			for j := 0; j < size; j++ {
				if j == k || !isAlive(j) || trans[k][j].Kind == NodeEmpty {
					continue
				}
				path := Concat(trans[i][k], loopStar, trans[k][j])
				trans[i][j] = Alt(trans[i][j], path)
			}
		}
		alive[k] = false
	}

	return factorRepeats(trans[start][accept])
}

// eliminationOrder picks a static elimination order biased toward
// eliminating low-degree states first (in-degree times out-degree,
// computed once from the original automaton), which tends to keep
// intermediate expressions smaller than eliminating in index order on a
// DFA with a few high-fan-in hub states.
func eliminationOrder(d automaton.Dfa, n int) []int {
	outDeg := make([]int, n)
	inDeg := make([]int, n)
	for i := 0; i < n; i++ {
		edges := d.Edges(automaton.StateID(i))
		outDeg[i] = len(edges)
		for _, e := range edges {
			if e.To != automaton.Oblivion {
				inDeg[int(e.To)]++
			}
		}
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return inDeg[order[a]]*outDeg[order[a]] < inDeg[order[b]]*outDeg[order[b]]
	})
	return order
}
