// Package ambiguity analyses a concatenation A·B for split-point
// ambiguity and finds, for an alternation and a sample string, every
// other string that behaves identically from the parser's viewpoint.
package ambiguity

import (
	"github.com/awwright/grammarswiki-sub003/automaton"
	"github.com/awwright/grammarswiki-sub003/symbolclass"
)

// ConcatOverlap decomposes the concatenation A·B into a prefix machine Aʹ,
// an overlap language, and a suffix machine Bʹ, such that
// concat(Aʹ, overlap, Bʹ) accepts the same language as concat(A, B). The
// overlap is the language of strings that can equally well be read as
// "end of an A-match, start of a B-match" at more than one split point;
// it is exactly {ε} iff the concatenation is unambiguous.
type ConcatOverlap struct {
	Overlap automaton.Dfa
	APrime  automaton.Dfa
	BPrime  automaton.Dfa
}

// Decompose computes the ConcatOverlap for a·b. Overlap is built as
// Dock(a, b) ∩ b: Dock(a, b) is the language of a-prefixes whose
// continuation could still satisfy the whole of b, and intersecting with
// b itself narrows that down to the strings that are simultaneously a
// complete b-match and a valid continuation point inside a — exactly the
// strings whose split against a is not forced.
func Decompose(a, b automaton.Dfa) ConcatOverlap {
	overlap := automaton.Intersection(automaton.Dock(a, b), b)
	aPrime := automaton.Dock(a, overlap)
	bPrime := automaton.DeriveFromStates(b, reachableStatesViaLanguage(b, overlap))
	return ConcatOverlap{Overlap: overlap, APrime: aPrime, BPrime: bPrime}
}

// Unambiguous reports whether a·b has exactly one valid split point for
// every string it accepts.
func (c ConcatOverlap) Unambiguous() bool {
	return c.Overlap.Contains(nil) && c.Overlap.NumStates() == 1 &&
		len(c.Overlap.Edges(c.Overlap.Start())) == 0
}

// reachableStatesViaLanguage returns every state of d reachable by
// consuming some string accepted by lang, found by a synchronized product
// walk over (d, lang) that records d's half of the pair whenever lang's
// half lands on one of lang's final states.
func reachableStatesViaLanguage(d, lang automaton.Dfa) []automaton.StateID {
	type pair struct{ dq, lq automaton.StateID }

	start := pair{d.Start(), lang.Start()}
	seen := map[pair]bool{start: true}
	queue := []pair{start}
	result := map[automaton.StateID]bool{}
	if lang.IsFinal(lang.Start()) {
		result[d.Start()] = true
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		var labels []symbolclass.Class
		for _, e := range d.Edges(cur.dq) {
			labels = append(labels, e.Label)
		}
		for _, e := range lang.Edges(cur.lq) {
			labels = append(labels, e.Label)
		}
		part := symbolclass.BuildPartition(labels)

		for _, cls := range part.Classes {
			rep := cls[0].Lo
			next := pair{d.Step(cur.dq, rep), lang.Step(cur.lq, rep)}
			if next.dq == automaton.Oblivion && next.lq == automaton.Oblivion {
				continue
			}
			if seen[next] {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
			if next.lq != automaton.Oblivion && lang.IsFinal(next.lq) {
				result[next.dq] = true
			}
		}
	}

	out := make([]automaton.StateID, 0, len(result))
	for q := range result {
		out = append(out, q)
	}
	return out
}
