// Package regexsynth synthesizes a regular-expression tree from a
// automaton.Dfa via state elimination, then emits it as dialect-specific
// source text.
package regexsynth

import "github.com/awwright/grammarswiki-sub003/symbolclass"

// NodeKind discriminates the variants of Node.
type NodeKind int

const (
	NodeEmpty NodeKind = iota
	NodeEpsilon
	NodeSymbolClass
	NodeConcat
	NodeAlternation
	NodeStar
	// NodeRepeat is a synthesized bounded repetition, introduced by
	// factoring out runs of identical consecutive subtrees in a
	// concatenation; it never comes directly out of state elimination.
	NodeRepeat
)

func (k NodeKind) String() string {
	switch k {
	case NodeEmpty:
		return "empty"
	case NodeEpsilon:
		return "epsilon"
	case NodeSymbolClass:
		return "symbol-class"
	case NodeConcat:
		return "concat"
	case NodeAlternation:
		return "alternation"
	case NodeStar:
		return "star"
	case NodeRepeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// Node is one node of a regex tree. Exactly the fields relevant to Kind
// are populated.
type Node struct {
	Kind NodeKind

	Class    symbolclass.Class // NodeSymbolClass
	Children []Node            // NodeConcat, NodeAlternation
	Inner    *Node             // NodeStar, NodeRepeat

	// RepeatMin/RepeatMax bound NodeRepeat; RepeatMax == -1 means
	// unbounded.
	RepeatMin int
	RepeatMax int
}

func Empty() Node    { return Node{Kind: NodeEmpty} }
func Epsilon() Node  { return Node{Kind: NodeEpsilon} }
func Symbol(c symbolclass.Class) Node {
	return Node{Kind: NodeSymbolClass, Class: c}
}
func Star(n Node) Node { return Node{Kind: NodeStar, Inner: &n} }

func Concat(nodes ...Node) Node {
	flat := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind == NodeEpsilon {
			continue
		}
		flat = append(flat, n)
	}
	if len(flat) == 0 {
		return Epsilon()
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return Node{Kind: NodeConcat, Children: flat}
}

func Alt(nodes ...Node) Node {
	flat := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind == NodeEmpty {
			continue
		}
		flat = append(flat, n)
	}
	if len(flat) == 0 {
		return Empty()
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return Node{Kind: NodeAlternation, Children: flat}
}
