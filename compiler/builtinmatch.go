package compiler

import (
	"strings"
	"sync"

	"github.com/awwright/grammarswiki-sub003/abnf"
	"github.com/coregx/ahocorasick"
)

// builtinMatcher answers "is this rulename one of the sixteen core
// rules" via a single Aho-Corasick automaton over the builtin names
// instead of abnf.IsBuiltin's per-call linear scan. Compile calls this on
// every rulename element it visits, so for grammars with many references
// the multi-pattern automaton amortizes to a single pass per candidate
// rather than sixteen string comparisons.
type builtinMatcher struct {
	machine *ahocorasick.Machine
}

var (
	sharedBuiltinMatcher     *builtinMatcher
	sharedBuiltinMatcherOnce sync.Once
)

func getBuiltinMatcher() *builtinMatcher {
	sharedBuiltinMatcherOnce.Do(func() {
		patterns := make([]string, len(abnf.BuiltinNames))
		copy(patterns, abnf.BuiltinNames)
		sharedBuiltinMatcher = &builtinMatcher{machine: ahocorasick.New(patterns)}
	})
	return sharedBuiltinMatcher
}

// lookup reports whether name matches a builtin rule exactly (not merely
// as a substring): it scans for Aho-Corasick matches against the
// uppercased candidate and accepts only a match spanning the whole
// string.
func (m *builtinMatcher) lookup(name string) (string, bool) {
	upper := strings.ToUpper(name)
	for _, match := range m.machine.Match([]byte(upper)) {
		if match.Index == 0 && len(match.Pattern) == len(upper) {
			return match.Pattern, true
		}
	}
	return "", false
}
