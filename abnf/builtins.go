package abnf

// BuiltinNames is the RFC 5234 appendix B.1 core rule set: these rulenames
// are mechanizable without any user-supplied definition.
var BuiltinNames = []string{
	"ALPHA", "BIT", "CHAR", "CR", "CRLF", "CTL", "DIGIT", "DQUOTE",
	"HEXDIG", "HTAB", "LF", "LWSP", "OCTET", "SP", "VCHAR", "WSP",
}

// IsBuiltin reports whether name (case-insensitively) is one of the core
// rules.
func IsBuiltin(name string) bool {
	for _, b := range BuiltinNames {
		if equalFold(b, name) {
			return true
		}
	}
	return false
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// BuiltinDefinition returns the core rule's own definition, expressed as
// an Alternation over the same tree types a parsed rule would produce, so
// callers can compile built-ins through the exact same structural
// induction as user rules. Panics if name is not a known builtin; callers
// should check IsBuiltin first.
func BuiltinDefinition(name string) Alternation {
	def, ok := builtinDefs[normalizeBuiltin(name)]
	if !ok {
		panic("abnf: not a builtin rule: " + name)
	}
	return def
}

func normalizeBuiltin(name string) string {
	b := []byte(name)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

func charRange(lo, hi uint32) Element {
	return Element{Kind: ElementNumVal, NumVal: NumVal{Base: NumValHex, IsRange: true, Lo: lo, Hi: hi}}
}

func charSeq(vs ...uint32) Element {
	return Element{Kind: ElementNumVal, NumVal: NumVal{Base: NumValHex, Values: vs}}
}

func single(e Element) Alternation {
	return Alternation{Concatenations: []Concatenation{{Repetitions: []Repetition{{Min: 1, Max: one(1), Element: e}}}}}
}

func concatOf(es ...Element) Alternation {
	reps := make([]Repetition, len(es))
	for i, e := range es {
		reps[i] = Repetition{Min: 1, Max: one(1), Element: e}
	}
	return Alternation{Concatenations: []Concatenation{{Repetitions: reps}}}
}

func one(n int) *int { return &n }

var builtinDefs = map[string]Alternation{
	"ALPHA":  single(charRange(0x41, 0x5A)),
	"BIT":    single(charRange(0x30, 0x31)),
	"CHAR":   single(charRange(0x01, 0x7F)),
	"CR":     single(charSeq(0x0D)),
	"CRLF":   concatOf(charSeq(0x0D), charSeq(0x0A)),
	"CTL":    single(charRange(0x00, 0x1F)),
	"DIGIT":  single(charRange(0x30, 0x39)),
	"DQUOTE": single(charSeq(0x22)),
	"HEXDIG": single(charRange(0x30, 0x39)),
	"HTAB":   single(charSeq(0x09)),
	"LF":     single(charSeq(0x0A)),
	"OCTET":  single(charRange(0x00, 0xFF)),
	"SP":     single(charSeq(0x20)),
	"VCHAR":  single(charRange(0x21, 0x7E)),
	"WSP":    single(charRange(0x20, 0x20)),
}

func init() {
	// ALPHA also covers lowercase: %x41-5A / %x61-7A.
	builtinDefs["ALPHA"] = Alternation{Concatenations: []Concatenation{
		{Repetitions: []Repetition{{Min: 1, Max: one(1), Element: charRange(0x41, 0x5A)}}},
		{Repetitions: []Repetition{{Min: 1, Max: one(1), Element: charRange(0x61, 0x7A)}}},
	}}
	// HEXDIG extends DIGIT with the letters A-F.
	builtinDefs["HEXDIG"] = Alternation{Concatenations: []Concatenation{
		{Repetitions: []Repetition{{Min: 1, Max: one(1), Element: charRange(0x30, 0x39)}}},
		{Repetitions: []Repetition{{Min: 1, Max: one(1), Element: charRange(0x41, 0x46)}}},
	}}
	// WSP is SP / HTAB.
	builtinDefs["WSP"] = Alternation{Concatenations: []Concatenation{
		{Repetitions: []Repetition{{Min: 1, Max: one(1), Element: charSeq(0x20)}}},
		{Repetitions: []Repetition{{Min: 1, Max: one(1), Element: charSeq(0x09)}}},
	}}
	// CTL also covers DEL: %x00-1F / %x7F.
	builtinDefs["CTL"] = Alternation{Concatenations: []Concatenation{
		{Repetitions: []Repetition{{Min: 1, Max: one(1), Element: charRange(0x00, 0x1F)}}},
		{Repetitions: []Repetition{{Min: 1, Max: one(1), Element: charSeq(0x7F)}}},
	}}
	// LWSP is *(WSP / CRLF WSP): folded linear whitespace. Expressed here
	// directly in terms of its own expansion rather than referencing WSP
	// or CRLF by name, since builtins are compiled standalone.
	wsp := Alternation{Concatenations: []Concatenation{
		{Repetitions: []Repetition{{Min: 1, Max: one(1), Element: charSeq(0x20)}}},
		{Repetitions: []Repetition{{Min: 1, Max: one(1), Element: charSeq(0x09)}}},
	}}
	crlfWsp := Concatenation{Repetitions: []Repetition{
		{Min: 1, Max: one(1), Element: charSeq(0x0D)},
		{Min: 1, Max: one(1), Element: charSeq(0x0A)},
		{Min: 1, Max: one(1), Element: Element{Kind: ElementGroup, Group: wsp}},
	}}
	lwspBody := Alternation{Concatenations: append([]Concatenation{{Repetitions: []Repetition{
		{Min: 1, Max: one(1), Element: Element{Kind: ElementGroup, Group: wsp}},
	}}}, crlfWsp)}
	builtinDefs["LWSP"] = Alternation{Concatenations: []Concatenation{
		{Repetitions: []Repetition{{Min: 0, Max: nil, Element: Element{Kind: ElementGroup, Group: lwspBody}}}},
	}}
}
