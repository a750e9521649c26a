package regexsynth

import (
	"fmt"
	"strings"

	"github.com/awwright/grammarswiki-sub003/symbolclass"
)

// Emit renders n as regex source text under spec, such that the result
// compiles under that dialect to a pattern matching the same language as
// n (modulo what the dialect can express at all: a dialect lacking both
// "+" and "{n,}" still gets a correct, just more verbose, expansion).
func Emit(n Node, spec DialectSpec) string {
	var b strings.Builder
	emitNode(&b, n, spec, false)
	return b.String()
}

// emitNode writes n into b. grouped indicates the caller already needs n
// parenthesized if it is anything but a single atom, so emitNode can skip
// adding its own redundant group in the common case of a bare symbol or
// literal.
func emitNode(b *strings.Builder, n Node, spec DialectSpec, grouped bool) {
	switch n.Kind {
	case NodeEmpty:
		// A dialect has no standard way to spell "matches nothing"; the
		// narrowest always-available approximation is a class no input
		// byte satisfies.
		b.WriteString("[^\\x00-\\x{10FFFF}]")
	case NodeEpsilon:
		b.WriteString("")
	case NodeSymbolClass:
		emitClass(b, n.Class, spec)
	case NodeConcat:
		for _, c := range n.Children {
			emitNode(b, c, spec, true)
		}
	case NodeAlternation:
		parts := make([]string, len(n.Children))
		for i, c := range n.Children {
			var sb strings.Builder
			emitNode(&sb, c, spec, false)
			parts[i] = sb.String()
		}
		joined := strings.Join(parts, "|")
		if grouped {
			b.WriteString(group(joined, spec))
		} else {
			b.WriteString(joined)
		}
	case NodeStar:
		emitQuantified(b, *n.Inner, "*", spec)
	case NodeRepeat:
		emitRepeat(b, n, spec)
	}
}

func group(s string, spec DialectSpec) string {
	if spec.Name == PosixBRE.Name {
		return "\\(" + s + "\\)"
	}
	return "(" + s + ")"
}

func emitQuantified(b *strings.Builder, inner Node, quant string, spec DialectSpec) {
	var sb strings.Builder
	emitNode(&sb, inner, spec, false)
	atom := sb.String()
	if needsGroupForQuantifier(inner) {
		atom = group(atom, spec)
	}
	b.WriteString(atom)
	b.WriteString(quant)
}

func needsGroupForQuantifier(n Node) bool {
	switch n.Kind {
	case NodeSymbolClass, NodeEpsilon, NodeEmpty:
		return false
	default:
		return true
	}
}

func emitRepeat(b *strings.Builder, n Node, spec DialectSpec) {
	min, max := n.RepeatMin, n.RepeatMax
	switch {
	case spec.SupportsBraceRepeat:
		var sb strings.Builder
		emitNode(&sb, *n.Inner, spec, false)
		atom := sb.String()
		if needsGroupForQuantifier(*n.Inner) {
			atom = group(atom, spec)
		}
		b.WriteString(atom)
		if min == max {
			fmt.Fprintf(b, "{%d}", min)
		} else if max < 0 {
			fmt.Fprintf(b, "{%d,}", min)
		} else {
			fmt.Fprintf(b, "{%d,%d}", min, max)
		}
	default:
		// No brace-repeat support: expand into min literal copies, then
		// optional copies (or a trailing "*" if max is unbounded).
		for i := 0; i < min; i++ {
			emitNode(b, *n.Inner, spec, true)
		}
		if max < 0 {
			emitQuantified(b, *n.Inner, "*", spec)
			return
		}
		for i := min; i < max; i++ {
			emitOptional(b, *n.Inner, spec)
		}
	}
}

func emitOptional(b *strings.Builder, n Node, spec DialectSpec) {
	if spec.SupportsQuestion {
		emitQuantified(b, n, "?", spec)
		return
	}
	var sb strings.Builder
	emitNode(&sb, n, spec, false)
	b.WriteString(group(sb.String()+"|", spec))
}

func emitClass(b *strings.Builder, cls symbolclass.Class, spec DialectSpec) {
	if len(cls) == 1 && cls[0].Lo == cls[0].Hi {
		emitLiteralSymbol(b, cls[0].Lo, spec)
		return
	}
	if !spec.SupportsBrackets {
		parts := make([]string, 0)
		for _, r := range cls {
			for s := r.Lo; ; s++ {
				var sb strings.Builder
				emitLiteralSymbol(&sb, s, spec)
				parts = append(parts, sb.String())
				if s == r.Hi {
					break
				}
			}
		}
		b.WriteString(group(strings.Join(parts, "|"), spec))
		return
	}
	b.WriteByte('[')
	for _, r := range cls {
		if r.Lo == r.Hi {
			emitClassSymbol(b, r.Lo, spec)
		} else {
			emitClassSymbol(b, r.Lo, spec)
			b.WriteByte('-')
			emitClassSymbol(b, r.Hi, spec)
		}
	}
	b.WriteByte(']')
}

func emitLiteralSymbol(b *strings.Builder, s symbolclass.Symbol, spec DialectSpec) {
	if isEscaped(byte(s), spec) && s < 128 {
		b.WriteByte('\\')
		b.WriteByte(byte(s))
		return
	}
	writeRune(b, s)
}

func emitClassSymbol(b *strings.Builder, s symbolclass.Symbol, spec DialectSpec) {
	if s < 128 && (byte(s) == ']' || byte(s) == '^' || byte(s) == '-' || byte(s) == '\\') {
		b.WriteByte('\\')
		b.WriteByte(byte(s))
		return
	}
	writeRune(b, s)
}

func writeRune(b *strings.Builder, s symbolclass.Symbol) {
	if s < 128 {
		b.WriteByte(byte(s))
		return
	}
	b.WriteRune(rune(s))
}

func isEscaped(c byte, spec DialectSpec) bool {
	for _, m := range spec.EscapeSpecial {
		if m == c {
			return true
		}
	}
	return false
}
