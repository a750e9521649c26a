package grammarswiki

import (
	"testing"

	"github.com/awwright/grammarswiki-sub003/regexsynth"
)

func TestCompileAndContainsRoundTrip(t *testing.T) {
	rl, err := ParseRulelist(Normalize([]byte(`greeting = "hi" / "hello"` + "\n")))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	d, err := Compile(rl, "greeting", DefaultConfig())
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}
	if !d.Contains(StringToSymbols("HI")) {
		t.Errorf("expected case-insensitive literal match")
	}
	if d.Contains(StringToSymbols("bye")) {
		t.Errorf("unexpected match")
	}
}

func TestFacadeCombinatorsAgreeWithAutomatonPackage(t *testing.T) {
	a := NewRange('0', '4')
	b := NewRange('5', '9')
	u := Union(a, b)
	if !Equals(u, NewRange('0', '9')) {
		t.Fatalf("facade Union/Equals diverged from expected digit range")
	}
	if !IsEmptyDfa(Intersection(a, b)) {
		t.Fatalf("disjoint ranges should not intersect")
	}
}

// IsEmptyDfa is a tiny local helper so this test doesn't need to reach
// past the facade for the IsEmpty method promoted through the Dfa alias.
func IsEmptyDfa(d Dfa) bool { return d.IsEmpty() }

func TestToRegexEmit(t *testing.T) {
	d := Concatenate(NewSymbol('a'), NewSymbol('b'))
	tree := ToRegex(d)
	out := Emit(tree, regexsynth.ECMAScript)
	if out != "ab" {
		t.Fatalf("expected \"ab\", got %q", out)
	}
}
