package grammarswiki

import (
	"github.com/awwright/grammarswiki-sub003/abnf"
	"github.com/awwright/grammarswiki-sub003/automaton"
	"github.com/awwright/grammarswiki-sub003/catalog"
	"github.com/awwright/grammarswiki-sub003/compiler"
	"github.com/awwright/grammarswiki-sub003/symbolclass"
)

// SymbolClass is a canonical set of symbols: a sorted, disjoint,
// non-adjacent sequence of closed ranges.
type SymbolClass = symbolclass.Class

// ParseError is returned by ParseRulelist; see abnf.ParseError.
type ParseError = abnf.ParseError

// ImportError, UnknownImport, and CircularImport are returned by
// Dereference; see the catalog package.
type ImportError = catalog.ImportError
type UnknownImport = catalog.UnknownImport
type CircularImport = catalog.CircularImport

// NotRegular, UnknownRule, and NotMechanizable are returned by Compile;
// see the compiler package.
type NotRegular = compiler.NotRegular
type UnknownRule = compiler.UnknownRule
type NotMechanizable = compiler.NotMechanizable
type StatesExceeded = compiler.StatesExceeded

// ErrAlphabetUnspecified is returned by Complement when called without an
// explicit universe.
var ErrAlphabetUnspecified = automaton.ErrAlphabetUnspecified

// Complement returns the Dfa accepting universe's language minus d's,
// failing with ErrAlphabetUnspecified if universe is empty.
func Complement(d Dfa, universe SymbolClass) (Dfa, error) {
	return automaton.Complement(d, universe)
}
