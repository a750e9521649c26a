// Package automaton implements deterministic finite automata over closed
// symbol ranges: the construction primitives, the algebra (union,
// intersection, difference, concatenation, star, repetition, complement,
// reverse), Brzozowski minimization, and the derived queries (containment,
// derivative, dock, equivalent-inputs, enumeration) that the rest of the
// engine is built on.
//
// Every exported function that returns a Dfa returns it already minimized
// and normalized, so that two structurally equal languages always produce
// byte-identical values — the determinism guarantee the wider engine
// depends on for caching and equivalence testing.
package automaton

import "errors"

// ErrAlphabetUnspecified is returned by Complement when the caller passes
// an empty universe, which the spec treats as "no universe was stated"
// rather than "the universe is the empty set" (an empty universe would make
// every complement trivially empty, which is never useful and almost
// always a caller bug).
var ErrAlphabetUnspecified = errors.New("automaton: complement requires an explicit non-empty universe")
