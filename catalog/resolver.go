// Package catalog resolves a root ABNF rulelist's cross-file imports into
// a single flattened dictionary, following the `<import FILENAME
// RULENAME>` prose-value convention (see spec §6.1) and detecting import
// cycles.
package catalog

import (
	"strings"

	"github.com/awwright/grammarswiki-sub003/abnf"
)

// Loader fetches and parses the catalog file named filename, relative to
// whatever base the collaborator chooses (the core never touches a
// filesystem directly).
type Loader func(filename string) (abnf.Rulelist, error)

// Dereference produces a flattened rulelist containing root's own rules
// plus every rule transitively reachable through import directives,
// substituting each `<import FILENAME RULENAME>` element with a plain
// rulename reference to RULENAME. A name already defined in root (or in
// an earlier, shallower import) wins over a same-named rule pulled in
// later.
func Dereference(root abnf.Rulelist, loader Loader) (abnf.Rulelist, error) {
	r := &resolver{
		loader:  loader,
		cache:   map[string]abnf.Rulelist{},
		working: map[string]abnf.Rule{},
		local:   map[string]bool{},
		order:   nil,
	}

	rootDict := root.Dictionary()
	// Reserve every root-level name before resolving any body. Without
	// this, an earlier root rule's import could recursively localize a
	// same-named external rule before the outer loop below reaches the
	// local definition, and the skip-check would then drop the local
	// definition entirely instead of merely losing a precedence race.
	for _, name := range root.RuleNames() {
		r.local[strings.ToLower(name)] = true
	}
	for _, name := range root.RuleNames() {
		key := strings.ToLower(name)
		if _, done := r.working[key]; done {
			continue
		}
		rule := rootDict[key]
		if err := r.localize(rule, rootDict, "", nil); err != nil {
			return abnf.Rulelist{}, err
		}
	}

	out := abnf.Rulelist{}
	for _, name := range r.order {
		out.Rules = append(out.Rules, r.working[name])
	}
	return out, nil
}

type resolver struct {
	loader  Loader
	cache   map[string]abnf.Rulelist
	working map[string]abnf.Rule
	local   map[string]bool
	order   []string
}

func (r *resolver) load(filename string) (abnf.Rulelist, error) {
	if rl, ok := r.cache[filename]; ok {
		return rl, nil
	}
	rl, err := r.loader(filename)
	if err != nil {
		return abnf.Rulelist{}, &ImportError{Filename: filename, Cause: err}
	}
	r.cache[filename] = rl
	return rl, nil
}

// localize walks rule's body (belonging to sourceFile's dict, "" for the
// root), resolving import directives and same-file references, and
// installs the result into r.working under rule's own name. stack carries
// the chain of "file#rulename" hops currently being resolved, for cycle
// detection.
//
// A name reserved by a root-level local definition (r.local[key]) can only
// ever be installed by a call whose sourceFile is "" (the root's own
// dictionary, reached either directly from Dereference's outer loop or via
// an internal reference from another root rule). A call arriving through a
// non-root file for such a name is a losing import and is dropped
// unconditionally, so the local definition always wins regardless of which
// is resolved first.
func (r *resolver) localize(rule abnf.Rule, sourceDict map[string]abnf.Rule, sourceFile string, stack []string) error {
	key := strings.ToLower(rule.Name)
	if sourceFile != "" && r.local[key] {
		return nil
	}
	if _, done := r.working[key]; done {
		return nil
	}

	hop := sourceFile + "#" + key
	for _, s := range stack {
		if s == hop {
			return &CircularImport{Path: append(append([]string{}, stack...), hop)}
		}
	}
	stack = append(stack, hop)

	newAlt, err := r.resolveAlternation(rule.Alternation, sourceDict, sourceFile, stack)
	if err != nil {
		return err
	}

	r.working[key] = abnf.Rule{Name: rule.Name, DefinedAs: abnf.Defines, Alternation: newAlt}
	r.order = append(r.order, key)
	return nil
}

func (r *resolver) resolveAlternation(a abnf.Alternation, dict map[string]abnf.Rule, file string, stack []string) (abnf.Alternation, error) {
	out := abnf.Alternation{Concatenations: make([]abnf.Concatenation, len(a.Concatenations))}
	for i, c := range a.Concatenations {
		nc, err := r.resolveConcatenation(c, dict, file, stack)
		if err != nil {
			return abnf.Alternation{}, err
		}
		out.Concatenations[i] = nc
	}
	return out, nil
}

func (r *resolver) resolveConcatenation(c abnf.Concatenation, dict map[string]abnf.Rule, file string, stack []string) (abnf.Concatenation, error) {
	out := abnf.Concatenation{Repetitions: make([]abnf.Repetition, len(c.Repetitions))}
	for i, rep := range c.Repetitions {
		elem, err := r.resolveElement(rep.Element, dict, file, stack)
		if err != nil {
			return abnf.Concatenation{}, err
		}
		out.Repetitions[i] = abnf.Repetition{Min: rep.Min, Max: rep.Max, Element: elem}
	}
	return out, nil
}

func (r *resolver) resolveElement(e abnf.Element, dict map[string]abnf.Rule, file string, stack []string) (abnf.Element, error) {
	switch e.Kind {
	case abnf.ElementGroup, abnf.ElementOption:
		inner, err := r.resolveAlternation(e.Group, dict, file, stack)
		if err != nil {
			return abnf.Element{}, err
		}
		return abnf.Element{Kind: e.Kind, Group: inner}, nil

	case abnf.ElementRulename:
		key := strings.ToLower(e.Rulename)
		if _, done := r.working[key]; !done {
			if target, ok := dict[key]; ok {
				if err := r.localize(target, dict, file, stack); err != nil {
					return abnf.Element{}, err
				}
			}
		}
		return e, nil

	case abnf.ElementProseVal:
		filename, rulename, ok := parseImportDirective(e.ProseVal)
		if !ok {
			return e, nil
		}
		importedRL, err := r.load(filename)
		if err != nil {
			return abnf.Element{}, err
		}
		importedDict := importedRL.Dictionary()
		target, ok := importedDict[strings.ToLower(rulename)]
		if !ok {
			return abnf.Element{}, &UnknownImport{Filename: filename, Rulename: rulename}
		}
		if err := r.localize(target, importedDict, filename, stack); err != nil {
			return abnf.Element{}, err
		}
		return abnf.Element{Kind: abnf.ElementRulename, Rulename: target.Name}, nil

	default:
		return e, nil
	}
}

// parseImportDirective recognizes prose-val text of the form
// "import FILENAME RULENAME", whitespace-separated.
func parseImportDirective(text string) (filename, rulename string, ok bool) {
	fields := strings.Fields(text)
	if len(fields) != 3 || !strings.EqualFold(fields[0], "import") {
		return "", "", false
	}
	return fields[1], fields[2], true
}
