// Package grammarswiki provides an ABNF grammar engine: parsing,
// cross-file rule resolution, compilation of rules to DFAs, a full DFA
// algebra, regex synthesis across several dialects, and deterministic
// enumeration of accepted strings.
//
// Typical usage:
//
//	rl, err := grammarswiki.ParseRulelist([]byte("greeting = \"hi\" / \"hello\"\r\n"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, err := grammarswiki.Compile(rl, "greeting", grammarswiki.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(d.Contains(grammarswiki.StringToSymbols("hi")))
package grammarswiki

import (
	"github.com/awwright/grammarswiki-sub003/abnf"
	"github.com/awwright/grammarswiki-sub003/automaton"
	"github.com/awwright/grammarswiki-sub003/catalog"
	"github.com/awwright/grammarswiki-sub003/compiler"
	"github.com/awwright/grammarswiki-sub003/regexsynth"
	"github.com/awwright/grammarswiki-sub003/symbolclass"
)

// Rulelist is an ABNF tree: an ordered sequence of rules.
type Rulelist = abnf.Rulelist

// Dfa is an immutable deterministic finite automaton over symbol classes.
type Dfa = automaton.Dfa

// Config controls compiler resource limits.
type Config = compiler.Config

// RegexTree is a synthesized regex parse tree, ready for dialect emission.
type RegexTree = regexsynth.Node

// DialectSpec names a target regex flavor's expressivity.
type DialectSpec = regexsynth.DialectSpec

// Loader fetches a catalog file's rulelist by sibling-relative filename.
type Loader = catalog.Loader

// ParseRulelist parses an ABNF rulelist from src, which must already use
// CRLF line endings; see Normalize.
func ParseRulelist(src []byte) (Rulelist, error) {
	return abnf.ParseRulelist(src)
}

// Normalize rewrites bare LF to CRLF and collapses CRCR, as required
// before ParseRulelist.
func Normalize(src []byte) []byte {
	return abnf.Normalize(src)
}

// Dereference resolves every <import FILENAME RULENAME> prose value in
// root, transitively, using loader to fetch referenced catalog files.
func Dereference(root Rulelist, loader Loader) (Rulelist, error) {
	return catalog.Dereference(root, loader)
}

// Compile lowers rulename out of rl, which must already be dereferenced if
// it spans multiple catalog files, into a minimized Dfa.
func Compile(rl Rulelist, rulename string, cfg Config) (Dfa, error) {
	return compiler.Compile(rl, rulename, cfg)
}

// DefaultConfig returns the Config used when no specific resource
// constraints are needed.
func DefaultConfig() Config {
	return compiler.DefaultConfig()
}

// ToRegex synthesizes a regex tree equivalent to d's language via state
// elimination.
func ToRegex(d Dfa) RegexTree {
	return regexsynth.Synthesize(d)
}

// Emit renders tree as regex source text under the given dialect.
func Emit(tree RegexTree, dialect DialectSpec) string {
	return regexsynth.Emit(tree, dialect)
}

// StringToSymbols converts a UTF-8 Go string into the symbol sequence the
// Dfa and ABNF layers operate over, one symbol per byte.
func StringToSymbols(s string) []symbolclass.Symbol {
	out := make([]symbolclass.Symbol, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = symbolclass.Symbol(s[i])
	}
	return out
}

// Infinite marks an unbounded upper bound for Repeat.
const Infinite = automaton.Infinite

// Empty returns the Dfa accepting no strings.
func Empty() Dfa { return automaton.Empty() }

// Epsilon returns the Dfa accepting only the empty string.
func Epsilon() Dfa { return automaton.Epsilon() }

// NewSymbol returns the Dfa accepting exactly the single-symbol string s.
func NewSymbol(s symbolclass.Symbol) Dfa { return automaton.NewSymbol(s) }

// NewRange returns the Dfa accepting exactly the single-symbol strings in
// [lo, hi].
func NewRange(lo, hi symbolclass.Symbol) Dfa { return automaton.NewRange(lo, hi) }

// FromClass returns the Dfa accepting exactly the single-symbol strings in
// cls.
func FromClass(cls SymbolClass) Dfa { return automaton.FromClass(cls) }

// FromSequence returns the Dfa accepting exactly seq.
func FromSequence(seq []symbolclass.Symbol) Dfa { return automaton.FromSequence(seq) }

// Union returns the Dfa accepting L(a) ∪ L(b).
func Union(a, b Dfa) Dfa { return automaton.Union(a, b) }

// Intersection returns the Dfa accepting L(a) ∩ L(b).
func Intersection(a, b Dfa) Dfa { return automaton.Intersection(a, b) }

// Difference returns the Dfa accepting L(a) \ L(b).
func Difference(a, b Dfa) Dfa { return automaton.Difference(a, b) }

// SymmetricDifference returns the Dfa accepting (L(a)\L(b)) ∪ (L(b)\L(a)).
func SymmetricDifference(a, b Dfa) Dfa { return automaton.SymmetricDifference(a, b) }

// Concatenate returns the Dfa accepting L(a)·L(b).
func Concatenate(a, b Dfa) Dfa { return automaton.Concatenate(a, b) }

// Star returns the Dfa accepting L(a)*.
func Star(a Dfa) Dfa { return automaton.Star(a) }

// Repeat returns the Dfa accepting between min and max (or Infinite)
// repetitions of L(a).
func Repeat(a Dfa, min, max int) Dfa { return automaton.Repeat(a, min, max) }

// Reverse returns the Dfa accepting the reverse of every string in L(a).
func Reverse(a Dfa) Dfa { return automaton.Reverse(a) }

// Equals reports whether a and b accept exactly the same language.
func Equals(a, b Dfa) bool { return automaton.Equals(a, b) }

// Derive returns the left quotient of a by prefix.
func Derive(a Dfa, prefix []symbolclass.Symbol) Dfa { return automaton.Derive(a, prefix) }

// Dock returns the largest language P such that P·b ⊆ a.
func Dock(a, b Dfa) Dfa { return automaton.Dock(a, b) }

// EquivalentInputs follows seq from a's initial state and, if it lands on
// a live state, returns the Dfa of every string that reaches that same
// state. The bool result is false for the "non-live" marker.
func EquivalentInputs(a Dfa, seq []symbolclass.Symbol) (Dfa, bool) {
	return automaton.EquivalentInputs(a, seq)
}

// Iterator lazily enumerates a Dfa's accepted strings in length-ascending,
// then class-ascending order.
type Iterator = automaton.Iterator

// Alphabet returns d's partitioned alphabet: the finest set of disjoint
// symbol classes such that every transition in d labels its edge with a
// union of whole classes in the result.
func Alphabet(d Dfa) []SymbolClass { return d.Alphabet() }
