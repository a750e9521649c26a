package abnf

import "testing"

func TestParseSimpleRule(t *testing.T) {
	src := Normalize([]byte("greeting = \"hello\"\n"))
	rl, err := ParseRulelist(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rl.Rules) != 1 || rl.Rules[0].Name != "greeting" {
		t.Fatalf("unexpected rulelist: %+v", rl)
	}
	alt := rl.Rules[0].Alternation
	if len(alt.Concatenations) != 1 || len(alt.Concatenations[0].Repetitions) != 1 {
		t.Fatalf("unexpected alternation shape: %+v", alt)
	}
	elem := alt.Concatenations[0].Repetitions[0].Element
	if elem.Kind != ElementCharVal || elem.CharVal.Text != "hello" {
		t.Fatalf("unexpected element: %+v", elem)
	}
}

func TestParseAlternationAndGroup(t *testing.T) {
	src := Normalize([]byte("digit-or-letter = DIGIT / (ALPHA)\n"))
	rl, err := ParseRulelist(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	alt := rl.Rules[0].Alternation
	if len(alt.Concatenations) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(alt.Concatenations))
	}
	second := alt.Concatenations[1].Repetitions[0].Element
	if second.Kind != ElementGroup {
		t.Fatalf("expected a group, got %v", second.Kind)
	}
}

func TestParseRepetitionBounds(t *testing.T) {
	src := Normalize([]byte("r = 2*4DIGIT\n"))
	rl, err := ParseRulelist(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rep := rl.Rules[0].Alternation.Concatenations[0].Repetitions[0]
	if rep.Min != 2 || rep.Max == nil || *rep.Max != 4 {
		t.Fatalf("unexpected repetition bounds: %+v", rep)
	}
}

func TestParseNumValRange(t *testing.T) {
	src := Normalize([]byte("r = %x30-39\n"))
	rl, err := ParseRulelist(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	elem := rl.Rules[0].Alternation.Concatenations[0].Repetitions[0].Element
	if elem.Kind != ElementNumVal || !elem.NumVal.IsRange || elem.NumVal.Lo != 0x30 || elem.NumVal.Hi != 0x39 {
		t.Fatalf("unexpected num-val: %+v", elem.NumVal)
	}
}

func TestParseErrorReportsIndex(t *testing.T) {
	src := Normalize([]byte("1bad = \"x\"\n"))
	_, err := ParseRulelist(src)
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Index != 0 {
		t.Fatalf("expected error at index 0, got %d", pe.Index)
	}
}

func TestRoundTrip(t *testing.T) {
	src := Normalize([]byte("rule = 1*DIGIT \"-\" ALPHA / [rule2]\nrule2 = %x41-5A\n"))
	rl, err := ParseRulelist(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	printed := Print(rl)
	rl2, err := ParseRulelist(Normalize([]byte(printed)))
	if err != nil {
		t.Fatalf("re-parse error: %v, printed:\n%s", err, printed)
	}
	if len(rl2.Rules) != len(rl.Rules) {
		t.Fatalf("round trip changed rule count: %d vs %d", len(rl2.Rules), len(rl.Rules))
	}
}

func TestDefinedAsExtends(t *testing.T) {
	src := Normalize([]byte("r = \"a\"\nr =/ \"b\"\n"))
	rl, err := ParseRulelist(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dict := rl.Dictionary()
	merged, ok := dict["r"]
	if !ok {
		t.Fatalf("expected rule 'r' in dictionary")
	}
	if len(merged.Alternation.Concatenations) != 2 {
		t.Fatalf("expected merged alternation with 2 branches, got %d", len(merged.Alternation.Concatenations))
	}
}
