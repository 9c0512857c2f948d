package css

import (
	"strconv"
	"strings"

	"github.com/npillmayer/tinystyle/cssom"
)

// parser is a recursive descent parser on top of a scanner.
type parser struct {
	sc *Scanner
}

func newParser(input string) *parser {
	return &parser{sc: NewScanner(input)}
}

func isIdentChar(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || isDigit(r) || r == '-' || r == '_'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}

// parseIdentifier consumes a run of identifier characters. The run may be empty.
func (p *parser) parseIdentifier() string {
	return p.sc.ConsumeWhile(isIdentChar)
}

// parseValue dispatches on the next character:
//
//     digit  =>  Length
//     '#'    =>  Color
//     else   =>  Keyword
func (p *parser) parseValue() (cssom.Value, error) {
	pos := p.sc.Pos()
	r, err := p.sc.Peek()
	if err != nil {
		return nil, err
	}
	switch {
	case isDigit(r):
		return p.parseLength()
	case r == '#':
		return p.parseColor()
	case isIdentChar(r):
		return cssom.Keyword(p.parseIdentifier()), nil
	}
	return nil, parseError(ErrEmptyValue, pos, "no value starts with %q", r)
}

// parseLength parses a number followed by a unit, e.g. "12.5px".
func (p *parser) parseLength() (cssom.Length, error) {
	x, err := p.parseNumber()
	if err != nil {
		return cssom.Length{}, err
	}
	u, err := p.parseUnit()
	if err != nil {
		return cssom.Length{}, err
	}
	return cssom.Length{Magnitude: x, Unit: u}, nil
}

func (p *parser) parseNumber() (float32, error) {
	pos := p.sc.Pos()
	s := p.sc.ConsumeWhile(func(r rune) bool {
		return isDigit(r) || r == '.'
	})
	x, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, parseError(ErrMalformedNumber, pos, "cannot convert %q", s)
	}
	return float32(x), nil
}

func (p *parser) parseUnit() (cssom.Unit, error) {
	pos := p.sc.Pos()
	s := strings.ToLower(p.parseIdentifier())
	u, ok := cssom.UnitFromString(s)
	if !ok {
		return 0, parseError(ErrUnknownUnit, pos, "unit %q", s)
	}
	return u, nil
}

// parseColor parses a color of the form #rrggbb. Short forms and forms
// with an alpha channel are not supported; alpha is always opaque.
func (p *parser) parseColor() (cssom.Color, error) {
	if err := p.sc.Expect('#'); err != nil {
		return cssom.Color{}, err
	}
	var rgb [3]uint8
	for i := range rgb {
		b, err := p.parseHexByte()
		if err != nil {
			return cssom.Color{}, err
		}
		rgb[i] = b
	}
	return cssom.RGB(rgb[0], rgb[1], rgb[2]), nil
}

// parseHexByte consumes exactly two characters and interprets them as a
// hexadecimal number in [0…255].
func (p *parser) parseHexByte() (uint8, error) {
	pos := p.sc.Pos()
	var digits [2]rune
	for i := range digits {
		r, err := p.sc.Advance()
		if err != nil {
			return 0, parseError(ErrInvalidColor, pos, "truncated color component")
		}
		if !isHexDigit(r) {
			return 0, parseError(ErrInvalidColor, pos, "%q is not a hex digit", r)
		}
		digits[i] = r
	}
	b, err := strconv.ParseUint(string(digits[:]), 16, 8)
	if err != nil { // cannot happen for two hex digits
		return 0, parseError(ErrInvalidColor, pos, "%v", err)
	}
	return uint8(b), nil
}

// ParseValue parses the text of a single value, e.g. "20px", "#cc0000" or
// "auto". Whitespace around the value is permitted, any other trailing
// input is an error.
func ParseValue(text string) (cssom.Value, error) {
	p := newParser(text)
	p.sc.SkipWhitespace()
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.sc.SkipWhitespace()
	if !p.sc.AtEnd() {
		return nil, parseError(ErrUnexpectedInput, p.sc.Pos(), "trailing input after value %s", v)
	}
	return v, nil
}
