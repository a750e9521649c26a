package abnf

import "strings"

// DependencyReport partitions the rulenames reachable from a target rule
// into four disjoint sets.
type DependencyReport struct {
	// Dependencies lists locally-defined rules the target transitively
	// needs, leaves first (topological order), excluding the target
	// itself.
	Dependencies []string
	// Builtins lists referenced names matched by the core rules.
	Builtins []string
	// Undefined lists referenced names that are neither defined locally
	// nor a builtin.
	Undefined []string
	// Recursive lists names lying on any cycle reachable from the target.
	Recursive []string
}

// Dependencies computes the DependencyReport for rulename within r's
// merged dictionary. r is compilable to a DFA iff the report's Undefined
// and Recursive sets are both empty.
func Dependencies(r Rulelist, rulename string) DependencyReport {
	dict := r.Dictionary()
	key := strings.ToLower(rulename)

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int)
	onStack := map[string]bool{}
	var order []string
	recursive := map[string]bool{}
	undefined := map[string]bool{}
	builtins := map[string]bool{}

	var visit func(string)
	visit = func(name string) {
		k := strings.ToLower(name)
		switch state[k] {
		case visiting:
			recursive[k] = true
			return
		case done:
			return
		}
		rule, ok := dict[k]
		if !ok {
			if IsBuiltin(name) {
				builtins[k] = true
			} else {
				undefined[k] = true
			}
			state[k] = done
			return
		}
		state[k] = visiting
		onStack[k] = true
		for _, ref := range referencedIn(rule.Alternation) {
			rk := strings.ToLower(ref)
			visit(ref)
			if recursive[rk] {
				recursive[k] = true
			}
		}
		onStack[k] = false
		state[k] = done
		order = append(order, k)
	}
	visit(rulename)

	var report DependencyReport
	for _, name := range order {
		if name == key {
			continue
		}
		if recursive[name] {
			continue
		}
		report.Dependencies = append(report.Dependencies, name)
	}
	for name := range builtins {
		report.Builtins = append(report.Builtins, name)
	}
	for name := range undefined {
		report.Undefined = append(report.Undefined, name)
	}
	for name := range recursive {
		report.Recursive = append(report.Recursive, name)
	}
	return report
}

func referencedIn(a Alternation) []string {
	var out []string
	var walkElem func(Element)
	var walkAlt func(Alternation)
	walkElem = func(e Element) {
		switch e.Kind {
		case ElementRulename:
			out = append(out, e.Rulename)
		case ElementGroup, ElementOption:
			walkAlt(e.Group)
		}
	}
	walkAlt = func(alt Alternation) {
		for _, c := range alt.Concatenations {
			for _, rep := range c.Repetitions {
				walkElem(rep.Element)
			}
		}
	}
	walkAlt(a)
	return out
}
