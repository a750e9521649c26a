package abnf

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders r as ABNF source text such that ParseRulelist(Print(r))
// reproduces a tree equal to r, for any r produced by ParseRulelist
// itself. Repetition bounds and numeric-value radixes round-trip exactly;
// incidental source formatting (comments, line folding, witespace layout)
// does not survive the round trip.
func Print(r Rulelist) string {
	var b strings.Builder
	for _, rule := range r.Rules {
		b.WriteString(rule.Name)
		b.WriteByte(' ')
		b.WriteString(rule.DefinedAs.String())
		b.WriteByte(' ')
		printAlternation(&b, rule.Alternation)
		b.WriteString("\r\n")
	}
	return b.String()
}

func printAlternation(b *strings.Builder, a Alternation) {
	for i, c := range a.Concatenations {
		if i > 0 {
			b.WriteString(" / ")
		}
		printConcatenation(b, c)
	}
}

func printConcatenation(b *strings.Builder, c Concatenation) {
	for i, r := range c.Repetitions {
		if i > 0 {
			b.WriteByte(' ')
		}
		printRepetition(b, r)
	}
}

func printRepetition(b *strings.Builder, r Repetition) {
	if r.Max == nil {
		if r.Min != 0 {
			fmt.Fprintf(b, "%d*", r.Min)
		} else {
			b.WriteByte('*')
		}
	} else if r.Min != 1 || *r.Max != 1 {
		if r.Min == *r.Max {
			fmt.Fprintf(b, "%d", r.Min)
		} else {
			fmt.Fprintf(b, "%d*%d", r.Min, *r.Max)
		}
	}
	printElement(b, r.Element)
}

func printElement(b *strings.Builder, e Element) {
	switch e.Kind {
	case ElementRulename:
		b.WriteString(e.Rulename)
	case ElementGroup:
		b.WriteByte('(')
		printAlternation(b, e.Group)
		b.WriteByte(')')
	case ElementOption:
		b.WriteByte('[')
		printAlternation(b, e.Group)
		b.WriteByte(']')
	case ElementCharVal:
		if e.CharVal.CaseSensitive {
			b.WriteString("%s")
		}
		b.WriteByte('"')
		b.WriteString(e.CharVal.Text)
		b.WriteByte('"')
	case ElementNumVal:
		printNumVal(b, e.NumVal)
	case ElementProseVal:
		b.WriteByte('<')
		b.WriteString(e.ProseVal)
		b.WriteByte('>')
	}
}

func numValPrefix(base NumValBase) (string, int) {
	switch base {
	case NumValBin:
		return "%b", 2
	case NumValDec:
		return "%d", 10
	default:
		return "%x", 16
	}
}

func printNumVal(b *strings.Builder, n NumVal) {
	prefix, radix := numValPrefix(n.Base)
	b.WriteString(prefix)
	if n.IsRange {
		b.WriteString(strconv.FormatUint(uint64(n.Lo), radix))
		b.WriteByte('-')
		b.WriteString(strconv.FormatUint(uint64(n.Hi), radix))
		return
	}
	for i, v := range n.Values {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatUint(uint64(v), radix))
	}
}
