package abnf

import "fmt"

// ParseError reports the byte offset of the first unmatched position when
// ABNF source text fails to match the grammar.
type ParseError struct {
	Index int
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("abnf: parse error at byte %d: %s", e.Index, e.Msg)
}
