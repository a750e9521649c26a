package ambiguity

import (
	"testing"

	"github.com/awwright/grammarswiki-sub003/automaton"
	"github.com/awwright/grammarswiki-sub003/symbolclass"
)

func seq(s string) []symbolclass.Symbol {
	out := make([]symbolclass.Symbol, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = symbolclass.Symbol(s[i])
	}
	return out
}

// concat3 is a small test helper mirroring automaton.Concatenate for three
// arguments, since the production package only concatenates pairs.
func concat3(a, b, c automaton.Dfa) automaton.Dfa {
	return automaton.Concatenate(automaton.Concatenate(a, b), c)
}

func TestDecomposeUnambiguousConcatenation(t *testing.T) {
	// "ab" · "cd" has exactly one split point: no suffix of "ab" can also
	// start "cd", so overlap collapses to {ε}.
	a := automaton.FromSequence(seq("ab"))
	b := automaton.FromSequence(seq("cd"))

	d := Decompose(a, b)
	if !d.Unambiguous() {
		t.Fatalf("expected unambiguous split, overlap was %v", d.Overlap)
	}

	whole := automaton.Concatenate(a, b)
	rebuilt := concat3(d.APrime, d.Overlap, d.BPrime)
	if !automaton.Equals(whole, rebuilt) {
		t.Fatalf("concat(Aprime, overlap, Bprime) != concat(a, b)")
	}
}

func TestDecomposeAmbiguousConcatenation(t *testing.T) {
	// a* · a+ is ambiguous: any run of a's accepted by the whole can be
	// split after any number of leading a's, so the overlap is nonempty.
	aStar := automaton.Star(automaton.NewSymbol('a'))
	aPlus := automaton.Repeat(automaton.NewSymbol('a'), 1, automaton.Infinite)

	d := Decompose(aStar, aPlus)
	if d.Unambiguous() {
		t.Fatalf("expected ambiguous split, got unambiguous")
	}

	whole := automaton.Concatenate(aStar, aPlus)
	rebuilt := concat3(d.APrime, d.Overlap, d.BPrime)
	if !automaton.Equals(whole, rebuilt) {
		t.Fatalf("concat(Aprime, overlap, Bprime) != concat(aStar, aPlus)")
	}
}
