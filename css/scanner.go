package css

import (
	"unicode"
	"unicode/utf8"
)

// Scanner is a cursor over style sheet source text. It is aware of
// multi-byte UTF-8 encoded characters: the cursor always steps over the
// complete encoding of a character.
//
// A Scanner is not safe for concurrent use, but every parse owns a
// scanner of its own.
type Scanner struct {
	input string
	pos   int // byte offset
}

// NewScanner creates a scanner positioned at the start of input.
func NewScanner(input string) *Scanner {
	return &Scanner{input: input}
}

// Pos returns the current byte offset into the source text.
func (sc *Scanner) Pos() int {
	return sc.pos
}

// AtEnd returns true if all input is consumed.
func (sc *Scanner) AtEnd() bool {
	return sc.pos >= len(sc.input)
}

// Peek returns the character at the cursor without consuming it.
// Peek fails with ErrOutOfBounds if called at the end of input.
func (sc *Scanner) Peek() (rune, error) {
	r, _, err := sc.current()
	return r, err
}

// Advance returns the character at the cursor and consumes it.
func (sc *Scanner) Advance() (rune, error) {
	r, width, err := sc.current()
	if err != nil {
		return r, err
	}
	sc.pos += width
	return r, nil
}

func (sc *Scanner) current() (rune, int, error) {
	if sc.AtEnd() {
		return utf8.RuneError, 0, &ParseError{Kind: ErrOutOfBounds, Pos: sc.pos}
	}
	r, width := utf8.DecodeRuneInString(sc.input[sc.pos:])
	return r, width, nil
}

// Expect consumes the character at the cursor and fails with
// ErrUnexpectedInput if it is not equal to c.
func (sc *Scanner) Expect(c rune) error {
	pos := sc.pos
	r, err := sc.Advance()
	if err != nil {
		return parseError(ErrOutOfBounds, pos, "expected %q", c)
	}
	if r != c {
		return parseError(ErrUnexpectedInput, pos, "expected %q, found %q", c, r)
	}
	return nil
}

// ConsumeWhile consumes characters as long as pred holds for them and the
// end of input is not reached. It returns the consumed run, which may be empty.
func (sc *Scanner) ConsumeWhile(pred func(rune) bool) string {
	start := sc.pos
	for !sc.AtEnd() {
		r, width, _ := sc.current()
		if !pred(r) {
			break
		}
		sc.pos += width
	}
	return sc.input[start:sc.pos]
}

// SkipWhitespace consumes and discards a (possibly empty) run of whitespace.
func (sc *Scanner) SkipWhitespace() {
	sc.ConsumeWhile(unicode.IsSpace)
}

// lookingAt is true if the cursor is not at the end of input and pred holds
// for the character at the cursor.
func (sc *Scanner) lookingAt(pred func(rune) bool) bool {
	r, _, err := sc.current()
	return err == nil && pred(r)
}
