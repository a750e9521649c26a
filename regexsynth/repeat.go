package regexsynth

import "github.com/awwright/grammarswiki-sub003/symbolclass"

// factorRepeats rewrites runs of three or more structurally identical
// consecutive children of a concatenation into a single NodeRepeat,
// recursively. Two repetitions is left as an explicit pair: a bounded
// repeat node only pays for itself once a dialect's {n} syntax is
// actually shorter than writing the subtree out.
func factorRepeats(n Node) Node {
	switch n.Kind {
	case NodeConcat:
		return factorConcat(n)
	case NodeAlternation:
		children := make([]Node, len(n.Children))
		for i, c := range n.Children {
			children[i] = factorRepeats(c)
		}
		return Node{Kind: NodeAlternation, Children: children}
	case NodeStar:
		inner := factorRepeats(*n.Inner)
		return Star(inner)
	case NodeRepeat:
		inner := factorRepeats(*n.Inner)
		return Node{Kind: NodeRepeat, Inner: &inner, RepeatMin: n.RepeatMin, RepeatMax: n.RepeatMax}
	default:
		return n
	}
}

func factorConcat(n Node) Node {
	children := make([]Node, len(n.Children))
	for i, c := range n.Children {
		children[i] = factorRepeats(c)
	}

	var out []Node
	i := 0
	for i < len(children) {
		j := i + 1
		for j < len(children) && equalNode(children[j], children[i]) {
			j++
		}
		run := j - i
		if run >= 3 {
			inner := children[i]
			out = append(out, Node{Kind: NodeRepeat, Inner: &inner, RepeatMin: run, RepeatMax: run})
		} else {
			out = append(out, children[i:j]...)
		}
		i = j
	}
	return Concat(out...)
}

func equalNode(a, b Node) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case NodeSymbolClass:
		return symbolclass.Equal(a.Class, b.Class)
	case NodeConcat, NodeAlternation:
		if len(a.Children) != len(b.Children) {
			return false
		}
		for i := range a.Children {
			if !equalNode(a.Children[i], b.Children[i]) {
				return false
			}
		}
		return true
	case NodeStar:
		return equalNode(*a.Inner, *b.Inner)
	case NodeRepeat:
		return a.RepeatMin == b.RepeatMin && a.RepeatMax == b.RepeatMax && equalNode(*a.Inner, *b.Inner)
	default:
		return true
	}
}
