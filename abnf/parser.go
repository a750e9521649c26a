package abnf

import (
	"strconv"
	"strings"
)

// parser is a hand-written recursive-descent recognizer over RFC 5234's
// own grammar for itself (see the catalog's abnf-syntax.abnf). It never
// backtracks across alternatives at the rulelist level; ABNF's grammar is
// LL(1) once defined-as is reached, since rulename is the only element
// that isn't introduced by a distinguishing fixed prefix.
type parser struct {
	src []byte
	pos int
}

// ParseRulelist parses ABNF source text into a Rulelist. Line terminators
// must already be normalized to CRLF; bare LF and CRCR are caller
// responsibilities (see Normalize).
func ParseRulelist(src []byte) (Rulelist, error) {
	p := &parser{src: src}
	p.skipBlankLines()
	var rl Rulelist
	for !p.atEnd() {
		rule, err := p.parseRule()
		if err != nil {
			return Rulelist{}, err
		}
		rl.Rules = append(rl.Rules, rule)
		p.skipBlankLines()
	}
	if len(rl.Rules) == 0 {
		return Rulelist{}, &ParseError{Index: 0, Msg: "no rules found"}
	}
	return rl, nil
}

// Normalize rewrites bare LF to CRLF and collapses CRCR, the text hygiene
// ParseRulelist expects its caller to have already applied.
func Normalize(src []byte) []byte {
	s := string(src)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\n", "\r\n")
	return []byte(s)
}

func (p *parser) atEnd() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.atEnd() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) errorf(msg string) error {
	return &ParseError{Index: p.pos, Msg: msg}
}

// skipBlankLines consumes comment lines, blank lines, and line folding
// between rules.
func (p *parser) skipBlankLines() {
	for {
		start := p.pos
		p.skipCWSPRun()
		if p.peek() == ';' {
			p.skipComment()
		}
		if p.pos+1 < len(p.src) && p.src[p.pos] == '\r' && p.src[p.pos+1] == '\n' {
			p.pos += 2
			continue
		}
		if p.pos == start {
			return
		}
	}
}

func (p *parser) skipCWSPRun() {
	for !p.atEnd() && (p.peek() == ' ' || p.peek() == '\t') {
		p.pos++
	}
}

func (p *parser) skipComment() {
	for !p.atEnd() && p.peek() != '\r' {
		p.pos++
	}
}

// skipCWsp skips c-wsp*: runs of SP/HTAB, including folded continuation
// lines (CRLF followed by at least one SP/HTAB), and comment lines.
func (p *parser) skipCWsp() {
	for {
		if p.peek() == ' ' || p.peek() == '\t' {
			p.pos++
			continue
		}
		if p.peek() == ';' {
			p.skipComment()
			if p.pos+1 < len(p.src) && p.src[p.pos] == '\r' && p.src[p.pos+1] == '\n' {
				p.pos += 2
			}
			continue
		}
		if p.pos+2 < len(p.src) && p.src[p.pos] == '\r' && p.src[p.pos+1] == '\n' &&
			(p.src[p.pos+2] == ' ' || p.src[p.pos+2] == '\t') {
			p.pos += 2
			continue
		}
		return
	}
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
func isBinDigit(c byte) bool { return c == '0' || c == '1' }

func (p *parser) parseRulename() (string, error) {
	if !isAlpha(p.peek()) {
		return "", p.errorf("expected rulename")
	}
	start := p.pos
	p.pos++
	for !p.atEnd() && (isAlpha(p.peek()) || isDigit(p.peek()) || p.peek() == '-') {
		p.pos++
	}
	return string(p.src[start:p.pos]), nil
}

func (p *parser) parseRule() (Rule, error) {
	name, err := p.parseRulename()
	if err != nil {
		return Rule{}, err
	}
	p.skipCWSPRun()
	definedAs := Defines
	if p.pos+1 < len(p.src) && p.src[p.pos] == '=' && p.src[p.pos+1] == '/' {
		definedAs = Extends
		p.pos += 2
	} else if p.peek() == '=' {
		p.pos++
	} else {
		return Rule{}, p.errorf("expected \"=\" or \"=/\"")
	}
	p.skipCWsp()
	alt, err := p.parseAlternation()
	if err != nil {
		return Rule{}, err
	}
	p.skipCWSPRun()
	if p.peek() == ';' {
		p.skipComment()
	}
	if p.pos+1 >= len(p.src) || p.src[p.pos] != '\r' || p.src[p.pos+1] != '\n' {
		return Rule{}, p.errorf("expected end of line after rule")
	}
	p.pos += 2
	return Rule{Name: name, DefinedAs: definedAs, Alternation: alt}, nil
}

func (p *parser) parseAlternation() (Alternation, error) {
	first, err := p.parseConcatenation()
	if err != nil {
		return Alternation{}, err
	}
	alt := Alternation{Concatenations: []Concatenation{first}}
	for {
		save := p.pos
		p.skipCWsp()
		if p.peek() != '/' {
			p.pos = save
			return alt, nil
		}
		p.pos++
		p.skipCWsp()
		next, err := p.parseConcatenation()
		if err != nil {
			return Alternation{}, err
		}
		alt.Concatenations = append(alt.Concatenations, next)
	}
}

func (p *parser) parseConcatenation() (Concatenation, error) {
	first, err := p.parseRepetition()
	if err != nil {
		return Concatenation{}, err
	}
	conc := Concatenation{Repetitions: []Repetition{first}}
	for {
		save := p.pos
		p.skipCWSPRun()
		if p.pos+2 < len(p.src) && p.src[p.pos] == '\r' && p.src[p.pos+1] == '\n' &&
			(p.src[p.pos+2] == ' ' || p.src[p.pos+2] == '\t') {
			p.skipCWsp()
		}
		if !p.startsElement() {
			p.pos = save
			return conc, nil
		}
		rep, err := p.parseRepetition()
		if err != nil {
			return Concatenation{}, err
		}
		conc.Repetitions = append(conc.Repetitions, rep)
	}
}

func (p *parser) startsElement() bool {
	c := p.peek()
	return isAlpha(c) || c == '(' || c == '[' || c == '"' || c == '%' || c == '<' || isDigit(c)
}

func (p *parser) parseRepetition() (Repetition, error) {
	min, max, err := p.parseRepeat()
	if err != nil {
		return Repetition{}, err
	}
	elem, err := p.parseElement()
	if err != nil {
		return Repetition{}, err
	}
	return Repetition{Min: min, Max: max, Element: elem}, nil
}

// parseRepeat recognizes the optional *( "*" ) repeat prefix:
// 1*DIGIT / ( *DIGIT "*" *DIGIT ). Returns (1, &1) for the absent case.
func (p *parser) parseRepeat() (int, *int, error) {
	start := p.pos
	for isDigit(p.peek()) {
		p.pos++
	}
	digitsBefore := string(p.src[start:p.pos])

	if p.peek() != '*' {
		if digitsBefore == "" {
			one := 1
			return 1, &one, nil
		}
		n, _ := strconv.Atoi(digitsBefore)
		return n, &n, nil
	}
	p.pos++

	startAfter := p.pos
	for isDigit(p.peek()) {
		p.pos++
	}
	digitsAfter := string(p.src[startAfter:p.pos])

	min := 0
	if digitsBefore != "" {
		min, _ = strconv.Atoi(digitsBefore)
	}
	var max *int
	if digitsAfter != "" {
		n, _ := strconv.Atoi(digitsAfter)
		max = &n
	}
	return min, max, nil
}

func (p *parser) parseElement() (Element, error) {
	c := p.peek()
	switch {
	case isAlpha(c):
		name, err := p.parseRulename()
		if err != nil {
			return Element{}, err
		}
		return Element{Kind: ElementRulename, Rulename: name}, nil
	case c == '(':
		p.pos++
		p.skipCWsp()
		alt, err := p.parseAlternation()
		if err != nil {
			return Element{}, err
		}
		p.skipCWsp()
		if p.peek() != ')' {
			return Element{}, p.errorf("expected \")\"")
		}
		p.pos++
		return Element{Kind: ElementGroup, Group: alt}, nil
	case c == '[':
		p.pos++
		p.skipCWsp()
		alt, err := p.parseAlternation()
		if err != nil {
			return Element{}, err
		}
		p.skipCWsp()
		if p.peek() != ']' {
			return Element{}, p.errorf("expected \"]\"")
		}
		p.pos++
		return Element{Kind: ElementOption, Group: alt}, nil
	case c == '"':
		return p.parseCharVal(false)
	case c == '%':
		return p.parseNumOrCaseVal()
	case c == '<':
		return p.parseProseVal()
	default:
		return Element{}, p.errorf("expected an element")
	}
}

func (p *parser) parseCharVal(caseSensitive bool) (Element, error) {
	if p.peek() != '"' {
		return Element{}, p.errorf("expected '\"'")
	}
	p.pos++
	start := p.pos
	for !p.atEnd() && p.peek() != '"' {
		p.pos++
	}
	if p.atEnd() {
		return Element{}, p.errorf("unterminated char-val")
	}
	text := string(p.src[start:p.pos])
	p.pos++
	return Element{Kind: ElementCharVal, CharVal: CharVal{Text: text, CaseSensitive: caseSensitive}}, nil
}

func (p *parser) parseNumOrCaseVal() (Element, error) {
	p.pos++ // consume '%'
	switch p.peek() {
	case 's':
		p.pos++
		return p.parseCharVal(true)
	case 'i':
		p.pos++
		return p.parseCharVal(false)
	case 'b', 'd', 'x':
		return p.parseNumVal()
	default:
		return Element{}, p.errorf("expected 'b', 'd', 'x', 's' or 'i' after '%'")
	}
}

func (p *parser) parseNumVal() (Element, error) {
	var base NumValBase
	var digitOK func(byte) bool
	var radix int
	switch p.peek() {
	case 'b':
		base, digitOK, radix = NumValBin, isBinDigit, 2
	case 'd':
		base, digitOK, radix = NumValDec, isDigit, 10
	case 'x':
		base, digitOK, radix = NumValHex, isHexDigit, 16
	}
	p.pos++

	first, err := p.parseNumValGroup(digitOK, radix)
	if err != nil {
		return Element{}, err
	}

	switch p.peek() {
	case '.':
		values := []uint32{first}
		for p.peek() == '.' {
			p.pos++
			v, err := p.parseNumValGroup(digitOK, radix)
			if err != nil {
				return Element{}, err
			}
			values = append(values, v)
		}
		return Element{Kind: ElementNumVal, NumVal: NumVal{Base: base, Values: values}}, nil
	case '-':
		p.pos++
		hi, err := p.parseNumValGroup(digitOK, radix)
		if err != nil {
			return Element{}, err
		}
		return Element{Kind: ElementNumVal, NumVal: NumVal{Base: base, IsRange: true, Lo: first, Hi: hi}}, nil
	default:
		return Element{Kind: ElementNumVal, NumVal: NumVal{Base: base, Values: []uint32{first}}}, nil
	}
}

func (p *parser) parseNumValGroup(digitOK func(byte) bool, radix int) (uint32, error) {
	start := p.pos
	for !p.atEnd() && digitOK(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		return 0, p.errorf("expected digits in numeric value")
	}
	n, err := strconv.ParseUint(string(p.src[start:p.pos]), radix, 32)
	if err != nil {
		return 0, p.errorf("numeric value out of range")
	}
	return uint32(n), nil
}

func (p *parser) parseProseVal() (Element, error) {
	p.pos++ // consume '<'
	start := p.pos
	for !p.atEnd() && p.peek() != '>' {
		p.pos++
	}
	if p.atEnd() {
		return Element{}, p.errorf("unterminated prose-val")
	}
	text := string(p.src[start:p.pos])
	p.pos++
	return Element{Kind: ElementProseVal, ProseVal: text}, nil
}
