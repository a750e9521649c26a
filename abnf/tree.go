// Package abnf implements the ABNF (RFC 5234) syntax tree, a
// recursive-descent parser over that grammar, and a pretty-printer that is
// the parser's exact inverse on well-formed trees.
package abnf

import "strings"

// DefinedAs distinguishes a fresh rule definition from an incremental
// alternative appended to an existing rule.
type DefinedAs int

const (
	// Defines introduces a rule's first (and possibly only) alternation.
	Defines DefinedAs = iota
	// Extends appends alternatives to a rule already defined elsewhere,
	// the "=/" form.
	Extends
)

func (d DefinedAs) String() string {
	if d == Extends {
		return "=/"
	}
	return "="
}

// Rule is a single `rulename defined-as alternation` production.
type Rule struct {
	Name       string
	DefinedAs  DefinedAs
	Alternation Alternation
}

// Rulelist is an ordered sequence of rules exactly as they appeared in
// source text; the list itself keeps "=/" rules separate, and
// Rulelist.Dictionary (which catalog.Dereference calls) merges them.
type Rulelist struct {
	Rules []Rule
}

// Alternation is a non-empty ordered list of concatenations, any one of
// which satisfies it.
type Alternation struct {
	Concatenations []Concatenation
}

// Concatenation is a non-empty ordered list of repetitions, all of which
// must match in sequence.
type Concatenation struct {
	Repetitions []Repetition
}

// Repetition is an element repeated between Min and Max times, inclusive.
// Max of nil means unbounded.
type Repetition struct {
	Min     int
	Max     *int
	Element Element
}

// ElementKind discriminates the variants of Element.
type ElementKind int

const (
	ElementRulename ElementKind = iota
	ElementGroup
	ElementOption
	ElementCharVal
	ElementNumVal
	ElementProseVal
)

func (k ElementKind) String() string {
	switch k {
	case ElementRulename:
		return "rulename"
	case ElementGroup:
		return "group"
	case ElementOption:
		return "option"
	case ElementCharVal:
		return "char-val"
	case ElementNumVal:
		return "num-val"
	case ElementProseVal:
		return "prose-val"
	default:
		return "unknown"
	}
}

// NumValBase is the radix a numeric value literal was written in.
type NumValBase int

const (
	NumValBin NumValBase = iota
	NumValDec
	NumValHex
)

// NumVal is a numeric-value element: either a concatenation of singleton
// code points ("%x0D.0A"), or a single inclusive range ("%x30-39").
type NumVal struct {
	Base    NumValBase
	IsRange bool
	Values  []uint32 // singleton sequence when !IsRange
	Lo, Hi  uint32   // valid when IsRange
}

// Element is one production of the ABNF "element" nonterminal. Exactly one
// of the Kind-tagged fields is meaningful per Kind.
type Element struct {
	Kind ElementKind

	Rulename string       // ElementRulename
	Group    Alternation  // ElementGroup, ElementOption
	CharVal  CharVal      // ElementCharVal
	NumVal   NumVal       // ElementNumVal
	ProseVal string       // ElementProseVal, the text between angle brackets
}

// CharVal is a quoted character-value literal. CaseSensitive records
// whether it was written with the RFC 7405 %s prefix; ordinary
// double-quoted literals are case-insensitive ASCII.
type CharVal struct {
	Text          string
	CaseSensitive bool
}

// RuleNames returns rule names in definition order, including repeats for
// "=/" continuations.
func (r Rulelist) RuleNames() []string {
	names := make([]string, len(r.Rules))
	for i, rule := range r.Rules {
		names[i] = rule.Name
	}
	return names
}

// Dictionary returns a lowercased-name to merged-rule map: every "=/"
// continuation is folded into the alternation of the first definition,
// in source order.
func (r Rulelist) Dictionary() map[string]Rule {
	out := make(map[string]Rule)
	order := []string{}
	for _, rule := range r.Rules {
		key := strings.ToLower(rule.Name)
		existing, ok := out[key]
		if !ok {
			out[key] = Rule{Name: rule.Name, DefinedAs: Defines, Alternation: rule.Alternation}
			order = append(order, key)
			continue
		}
		existing.Alternation.Concatenations = append(existing.Alternation.Concatenations, rule.Alternation.Concatenations...)
		out[key] = existing
	}
	return out
}

// ReferencedRules returns every rulename referenced anywhere within the
// rulelist's alternations, deduplicated, in first-seen order.
func (r Rulelist) ReferencedRules() []string {
	seen := map[string]bool{}
	var out []string
	var walkAlt func(Alternation)
	var walkElem func(Element)
	walkElem = func(e Element) {
		switch e.Kind {
		case ElementRulename:
			key := strings.ToLower(e.Rulename)
			if !seen[key] {
				seen[key] = true
				out = append(out, e.Rulename)
			}
		case ElementGroup, ElementOption:
			walkAlt(e.Group)
		}
	}
	walkAlt = func(a Alternation) {
		for _, c := range a.Concatenations {
			for _, rep := range c.Repetitions {
				walkElem(rep.Element)
			}
		}
	}
	for _, rule := range r.Rules {
		walkAlt(rule.Alternation)
	}
	return out
}
