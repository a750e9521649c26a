package automaton

import "github.com/awwright/grammarswiki-sub003/symbolclass"

// Iterator enumerates the strings accepted by a Dfa, lazily, in
// length-ascending and then class-ascending order: within one length, each
// state's edges are taken by their label's first range, and a label's
// symbols in ascending order. Call Next repeatedly
// until it reports false; a Dfa accepting an infinite language simply
// never returns false.
type Iterator struct {
	d     Dfa
	live  []bool
	queue []iterFrontier
}

type iterFrontier struct {
	state  StateID
	prefix []symbolclass.Symbol
}

// Iterate returns an Iterator over d's accepted strings. It is seeded with
// a single frontier entry at the initial state and the empty prefix; every
// call to Next advances a breadth-first walk one step further, so strings
// are produced in length order without ever materializing states beyond
// what the caller actually asks for.
func (d Dfa) Iterate() *Iterator {
	return &Iterator{
		d:     d,
		live:  computeLive(d),
		queue: []iterFrontier{{state: d.Start()}},
	}
}

// Next returns the next accepted string in order, or (nil, false) once
// every accepted string has been produced (only possible for a finite
// language).
func (it *Iterator) Next() ([]symbolclass.Symbol, bool) {
	for len(it.queue) > 0 {
		cur := it.queue[0]
		it.queue = it.queue[1:]

		if cur.state != Oblivion {
			for _, e := range sortedEdges(it.d.states[cur.state].edges) {
				if e.To == Oblivion || !it.live[e.To] {
					continue
				}
				for _, r := range e.Label {
					for s := r.Lo; ; s++ {
						next := make([]symbolclass.Symbol, len(cur.prefix)+1)
						copy(next, cur.prefix)
						next[len(cur.prefix)] = s
						it.queue = append(it.queue, iterFrontier{state: e.To, prefix: next})
						if s == r.Hi {
							break
						}
					}
				}
			}
		}

		if cur.state != Oblivion && it.d.states[cur.state].final {
			return cur.prefix, true
		}
	}
	return nil, false
}
