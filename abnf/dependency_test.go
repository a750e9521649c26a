package abnf

import "testing"

func parseOrFatal(t *testing.T, src string) Rulelist {
	t.Helper()
	rl, err := ParseRulelist(Normalize([]byte(src)))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return rl
}

func contains(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}

func TestDependenciesLeavesFirst(t *testing.T) {
	rl := parseOrFatal(t, "top = mid\nmid = leaf\nleaf = \"x\"\n")
	report := Dependencies(rl, "top")
	if len(report.Dependencies) != 2 || report.Dependencies[0] != "leaf" || report.Dependencies[1] != "mid" {
		t.Fatalf("unexpected dependency order: %v", report.Dependencies)
	}
	if len(report.Undefined) != 0 || len(report.Recursive) != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestDependenciesBuiltinAndUndefined(t *testing.T) {
	rl := parseOrFatal(t, "top = DIGIT / nowhere\n")
	report := Dependencies(rl, "top")
	if !contains(report.Builtins, "digit") {
		t.Errorf("expected DIGIT reported as builtin: %v", report.Builtins)
	}
	if !contains(report.Undefined, "nowhere") {
		t.Errorf("expected nowhere reported as undefined: %v", report.Undefined)
	}
}

func TestDependenciesRecursiveCycle(t *testing.T) {
	rl := parseOrFatal(t, "a = b\nb = c\nc = a / \"x\"\n")
	report := Dependencies(rl, "a")
	for _, name := range []string{"a", "b", "c"} {
		if !contains(report.Recursive, name) {
			t.Errorf("expected %q reported recursive: %v", name, report.Recursive)
		}
	}
}
