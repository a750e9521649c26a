package ambiguity

import (
	"testing"

	"github.com/awwright/grammarswiki-sub003/abnf"
	"github.com/awwright/grammarswiki-sub003/compiler"
)

func mustParseRulelist(t *testing.T, src string) abnf.Rulelist {
	t.Helper()
	rl, err := abnf.ParseRulelist(abnf.Normalize([]byte(src)))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return rl
}

func TestEquivalentInputsLiveSample(t *testing.T) {
	rl := mustParseRulelist(t, "greeting = \"hi\" / \"ok\"\r\n")
	res, err := EquivalentInputs(rl, "greeting", seq("h"), compiler.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Live {
		t.Fatalf("expected a live state after consuming \"h\"")
	}
	if !res.Inputs.Contains(seq("h")) {
		t.Fatalf("expected the equivalent-inputs Dfa to contain the sample prefix itself")
	}
	if res.Inputs.Contains(seq("o")) {
		t.Fatalf("\"o\" should not reach the same state as \"h\"")
	}
}

func TestEquivalentInputsNonLiveSample(t *testing.T) {
	rl := mustParseRulelist(t, "greeting = \"hi\"\r\n")
	res, err := EquivalentInputs(rl, "greeting", seq("x"), compiler.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Live {
		t.Fatalf("expected non-live result for a sample that falls off the automaton")
	}
}
