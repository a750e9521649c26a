package compiler

import (
	"github.com/awwright/grammarswiki-sub003/abnf"
	"github.com/awwright/grammarswiki-sub003/automaton"
	"github.com/awwright/grammarswiki-sub003/symbolclass"
)

// compileCharVal compiles a quoted literal into a concatenation of
// per-character DFAs. An ordinary literal is case-insensitive: each ASCII
// letter becomes a union of its two case variants. A %s literal is
// case-sensitive and every symbol maps to itself.
func compileCharVal(cv abnf.CharVal) automaton.Dfa {
	result := automaton.Epsilon()
	for _, c := range []byte(cv.Text) {
		result = automaton.Concatenate(result, charSymbolDfa(c, cv.CaseSensitive))
	}
	return result
}

func charSymbolDfa(c byte, caseSensitive bool) automaton.Dfa {
	if caseSensitive || !isASCIILetter(c) {
		return automaton.NewSymbol(symbolclass.Symbol(c))
	}
	lower, upper := toLower(c), toUpper(c)
	return automaton.Union(
		automaton.NewSymbol(symbolclass.Symbol(lower)),
		automaton.NewSymbol(symbolclass.Symbol(upper)),
	)
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// compileNumVal compiles a numeric-value element: a single symbol, an
// inclusive range, or a concatenation of singleton code points.
func compileNumVal(n abnf.NumVal) automaton.Dfa {
	if n.IsRange {
		return automaton.NewRange(symbolclass.Symbol(n.Lo), symbolclass.Symbol(n.Hi))
	}
	if len(n.Values) == 1 {
		return automaton.NewSymbol(symbolclass.Symbol(n.Values[0]))
	}
	result := automaton.Epsilon()
	for _, v := range n.Values {
		result = automaton.Concatenate(result, automaton.NewSymbol(symbolclass.Symbol(v)))
	}
	return result
}
