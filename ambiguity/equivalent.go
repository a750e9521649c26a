package ambiguity

import (
	"github.com/awwright/grammarswiki-sub003/abnf"
	"github.com/awwright/grammarswiki-sub003/automaton"
	"github.com/awwright/grammarswiki-sub003/compiler"
	"github.com/awwright/grammarswiki-sub003/symbolclass"
)

// EquivalentInputsResult is the outcome of an equivalent-inputs query: either
// Live is true and Inputs accepts every string that parses identically to
// the sample from the query rule's viewpoint, or Live is false and the
// sample fell off the automaton (or landed on a dead state), meaning no
// string is equivalent to it.
type EquivalentInputsResult struct {
	Inputs automaton.Dfa
	Live   bool
}

// EquivalentInputs compiles rulename out of rl, follows sample along the
// resulting Dfa, and reports the set of strings that behave identically to
// sample from the parser's viewpoint: every string that drives the
// automaton to the same state sample does.
func EquivalentInputs(rl abnf.Rulelist, rulename string, sample []symbolclass.Symbol, cfg compiler.Config) (EquivalentInputsResult, error) {
	d, err := compiler.Compile(rl, rulename, cfg)
	if err != nil {
		return EquivalentInputsResult{}, err
	}
	inputs, live := automaton.EquivalentInputs(d, sample)
	return EquivalentInputsResult{Inputs: inputs, Live: live}, nil
}
