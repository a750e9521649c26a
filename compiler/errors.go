package compiler

import (
	"fmt"
	"strings"
)

// NotRegular reports that the requested rule's transitive definition
// depends on a reference cycle, which a DFA cannot express.
type NotRegular struct {
	Cycle []string
}

func (e *NotRegular) Error() string {
	return fmt.Sprintf("compiler: not regular, cycle through: %s", strings.Join(e.Cycle, ", "))
}

// UnknownRule reports a referenced rulename with neither a local
// definition nor a builtin match.
type UnknownRule struct {
	Name string
}

func (e *UnknownRule) Error() string {
	return fmt.Sprintf("compiler: unknown rule %q", e.Name)
}

// NotMechanizable reports a prose-value element reached while compiling
// rulename's transitive definition: prose values are opaque descriptions,
// not mechanizable grammar.
type NotMechanizable struct {
	Rulename string
}

func (e *NotMechanizable) Error() string {
	return fmt.Sprintf("compiler: rule %q is not mechanizable: contains a prose-val", e.Rulename)
}

// StatesExceeded reports that a rule's DFA grew past Config.MaxStates
// during construction.
type StatesExceeded struct {
	Rulename string
	Limit    int
}

func (e *StatesExceeded) Error() string {
	return fmt.Sprintf("compiler: rule %q exceeded the %d-state limit", e.Rulename, e.Limit)
}
