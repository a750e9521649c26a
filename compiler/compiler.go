// Package compiler translates a dereferenced ABNF rulelist into DFAs by
// structural induction on each rule's alternation, per spec §4.5.
package compiler

import (
	"strings"

	"github.com/awwright/grammarswiki-sub003/abnf"
	"github.com/awwright/grammarswiki-sub003/automaton"
)

// Compile compiles rulename out of rl into a minimized, normalized Dfa.
// rl must already be dereferenced (catalog.Dereference) if it came from a
// multi-file catalog; Compile itself never performs I/O.
func Compile(rl abnf.Rulelist, rulename string, cfg Config) (automaton.Dfa, error) {
	if err := cfg.Validate(); err != nil {
		return automaton.Dfa{}, err
	}

	dict := rl.Dictionary()
	report := abnf.Dependencies(rl, rulename)
	if len(report.Recursive) > 0 {
		return automaton.Dfa{}, &NotRegular{Cycle: report.Recursive}
	}
	if len(report.Undefined) > 0 {
		return automaton.Dfa{}, &UnknownRule{Name: report.Undefined[0]}
	}

	c := &compilation{dict: dict, cfg: cfg, working: map[string]automaton.Dfa{}}

	for _, name := range report.Dependencies {
		if _, err := c.compileRule(name); err != nil {
			return automaton.Dfa{}, err
		}
	}
	return c.compileRule(strings.ToLower(rulename))
}

type compilation struct {
	dict    map[string]abnf.Rule
	cfg     Config
	working map[string]automaton.Dfa
}

func (c *compilation) compileRule(name string) (automaton.Dfa, error) {
	key := strings.ToLower(name)
	if d, ok := c.working[key]; ok {
		return d, nil
	}
	if builtin, ok := getBuiltinMatcher().lookup(key); ok {
		d, err := c.compileAlternation(abnf.BuiltinDefinition(builtin), builtin)
		if err != nil {
			return automaton.Dfa{}, err
		}
		d = d.Minimize().Normalize()
		c.working[key] = d
		return d, nil
	}
	rule, ok := c.dict[key]
	if !ok {
		return automaton.Dfa{}, &UnknownRule{Name: name}
	}
	d, err := c.compileAlternation(rule.Alternation, rule.Name)
	if err != nil {
		return automaton.Dfa{}, err
	}
	if d.NumStates() > c.cfg.MaxStates {
		return automaton.Dfa{}, &StatesExceeded{Rulename: rule.Name, Limit: c.cfg.MaxStates}
	}
	d = d.Minimize().Normalize()
	c.working[key] = d
	return d, nil
}

func (c *compilation) compileAlternation(a abnf.Alternation, ruleContext string) (automaton.Dfa, error) {
	parts := make([]automaton.Dfa, len(a.Concatenations))
	for i, conc := range a.Concatenations {
		d, err := c.compileConcatenation(conc, ruleContext)
		if err != nil {
			return automaton.Dfa{}, err
		}
		parts[i] = d
	}
	result := parts[0]
	for _, p := range parts[1:] {
		result = automaton.Union(result, p)
	}
	return result, nil
}

func (c *compilation) compileConcatenation(conc abnf.Concatenation, ruleContext string) (automaton.Dfa, error) {
	result := automaton.Epsilon()
	for _, rep := range conc.Repetitions {
		d, err := c.compileRepetition(rep, ruleContext)
		if err != nil {
			return automaton.Dfa{}, err
		}
		result = automaton.Concatenate(result, d)
	}
	return result, nil
}

func (c *compilation) compileRepetition(rep abnf.Repetition, ruleContext string) (automaton.Dfa, error) {
	base, err := c.compileElement(rep.Element, ruleContext)
	if err != nil {
		return automaton.Dfa{}, err
	}
	max := automaton.Infinite
	if rep.Max != nil {
		max = *rep.Max
	}
	return automaton.Repeat(base, rep.Min, max), nil
}

func (c *compilation) compileElement(e abnf.Element, ruleContext string) (automaton.Dfa, error) {
	switch e.Kind {
	case abnf.ElementRulename:
		return c.compileRule(e.Rulename)

	case abnf.ElementGroup:
		return c.compileAlternation(e.Group, ruleContext)

	case abnf.ElementOption:
		inner, err := c.compileAlternation(e.Group, ruleContext)
		if err != nil {
			return automaton.Dfa{}, err
		}
		return automaton.Repeat(inner, 0, 1), nil

	case abnf.ElementCharVal:
		return compileCharVal(e.CharVal), nil

	case abnf.ElementNumVal:
		return compileNumVal(e.NumVal), nil

	case abnf.ElementProseVal:
		return automaton.Dfa{}, &NotMechanizable{Rulename: ruleContext}

	default:
		return automaton.Dfa{}, &NotMechanizable{Rulename: ruleContext}
	}
}
