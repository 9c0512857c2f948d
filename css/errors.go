package css

import (
	"errors"
	"fmt"
)

// Kinds of parse errors. A *ParseError wraps exactly one of them.
var (
	// ErrUnexpectedInput flags an expected literal character not found at the cursor.
	ErrUnexpectedInput = errors.New("unexpected input")
	// ErrOutOfBounds flags lookahead past the end of input, usually a symptom
	// of an unterminated construct.
	ErrOutOfBounds = errors.New("unexpected end of input")
	// ErrInvalidColor flags a color component which is not a two-digit hex literal.
	ErrInvalidColor = errors.New("invalid color")
	// ErrUnknownUnit flags an unrecognized unit of a length.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrMalformedNumber flags a numeric literal which does not convert to a magnitude.
	ErrMalformedNumber = errors.New("malformed number")
	// ErrEmptyValue flags a value position starting no known value form.
	ErrEmptyValue = errors.New("empty value")
)

// ParseError is the error type returned from the parser.
// Pos is the byte offset into the source text where the error was detected.
type ParseError struct {
	Kind error
	Pos  int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("css: %v at byte %d", e.Kind, e.Pos)
	}
	return fmt.Sprintf("css: %v at byte %d: %s", e.Kind, e.Pos, e.Msg)
}

// Unwrap returns the kind of error, e.g. ErrUnexpectedInput.
func (e *ParseError) Unwrap() error {
	return e.Kind
}

func parseError(kind error, pos int, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// within annotates an out-of-bounds error with the construct being parsed.
// Other errors are returned unchanged.
func within(err error, construct string) error {
	var perr *ParseError
	if errors.As(err, &perr) && perr.Kind == ErrOutOfBounds {
		if perr.Msg == "" {
			perr.Msg = "unterminated " + construct
		} else {
			perr.Msg = "unterminated " + construct + ": " + perr.Msg
		}
	}
	return err
}
