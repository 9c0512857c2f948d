package css

import (
	"errors"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestScannerMultiByte(t *testing.T) {
	sc := NewScanner("ä€x")
	var runes []rune
	for !sc.AtEnd() {
		r, err := sc.Advance()
		if err != nil {
			t.Fatalf("expected no error, is %v", err)
		}
		runes = append(runes, r)
	}
	assert.Equal(t, []rune{'ä', '€', 'x'}, runes)
	assert.Equal(t, len("ä€x"), sc.Pos())
}

func TestScannerPeekAtEnd(t *testing.T) {
	sc := NewScanner("")
	_, err := sc.Peek()
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected Peek at end to fail with out-of-bounds, is %v", err)
	}
	_, err = sc.Advance()
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	assert.Equal(t, 0, sc.Pos())
}

func TestScannerExpect(t *testing.T) {
	sc := NewScanner("{}")
	assert.NoError(t, sc.Expect('{'))
	err := sc.Expect(';')
	if !errors.Is(err, ErrUnexpectedInput) {
		t.Errorf("expected unexpected-input error, is %v", err)
	}
	var perr *ParseError
	if assert.True(t, errors.As(err, &perr)) {
		assert.Equal(t, 1, perr.Pos)
	}
	assert.True(t, errors.Is(sc.Expect('}'), ErrOutOfBounds))
}

func TestScannerConsumeWhile(t *testing.T) {
	sc := NewScanner("  \t\nmargin-top: 1px")
	sc.SkipWhitespace()
	assert.Equal(t, "margin-top", sc.ConsumeWhile(isIdentChar))
	assert.Equal(t, "", sc.ConsumeWhile(unicode.IsSpace))
	r, err := sc.Peek()
	assert.NoError(t, err)
	assert.Equal(t, ':', r)
	sc.SkipWhitespace() // no whitespace: no-op
	assert.Equal(t, len("  \t\nmargin-top"), sc.Pos())
}
