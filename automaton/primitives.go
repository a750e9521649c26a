package automaton

import "github.com/awwright/grammarswiki-sub003/symbolclass"

// Empty returns the Dfa accepting no strings at all.
func Empty() Dfa {
	return Dfa{states: []dfaState{{final: false}}}
}

// Epsilon returns the Dfa accepting exactly the empty sequence.
func Epsilon() Dfa {
	return Dfa{states: []dfaState{{final: true}}}
}

// NewSymbol returns the Dfa accepting exactly the one-symbol sequence [s].
func NewSymbol(s symbolclass.Symbol) Dfa {
	return NewRange(s, s)
}

// NewRange returns the Dfa accepting exactly [c] for any c with
// lo <= c <= hi.
func NewRange(lo, hi symbolclass.Symbol) Dfa {
	return Dfa{states: []dfaState{
		{edges: []Edge{{Label: symbolclass.NewRange(lo, hi), To: 1}}},
		{final: true},
	}}
}

// FromClass returns the Dfa accepting exactly one symbol drawn from cls.
func FromClass(cls symbolclass.Class) Dfa {
	if cls.IsEmpty() {
		return Empty()
	}
	return Dfa{states: []dfaState{
		{edges: []Edge{{Label: cls, To: 1}}},
		{final: true},
	}}
}

// FromSequence returns the Dfa accepting exactly seq and nothing else.
func FromSequence(seq []symbolclass.Symbol) Dfa {
	if len(seq) == 0 {
		return Epsilon()
	}
	states := make([]dfaState, len(seq)+1)
	for i, s := range seq {
		states[i] = dfaState{edges: []Edge{{Label: symbolclass.Single(s), To: StateID(i + 1)}}}
	}
	states[len(seq)] = dfaState{final: true}
	return Dfa{states: states}
}
