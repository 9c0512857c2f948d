package douceuradapter

import (
	"errors"
	"strings"
	"testing"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tinystyle/css"
	"github.com/npillmayer/tinystyle/cssom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var myhtml = `
<html><head>
<style>
  body { border-color: red; }
</style>
</head><body>
  <p>The quick brown fox jumps over the lazy dog.</p>
  <p id="world">Hello <b>World</b>!</p>
  <style>
    p { margin: 0px; } #world { padding: 5px; }
  </style>
</body>
`

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinystyle.css")
	defer teardown()
	//
	h, err := html.Parse(strings.NewReader(myhtml))
	require.NoError(t, err)
	sheets, err := ExtractStyleElements(h)
	require.NoError(t, err)
	if len(sheets) != 2 {
		t.Fatalf("expected 2 embedded style sheets, have %d", len(sheets))
	}
	assert.Equal(t, 1, sheets[0].Len())
	assert.Equal(t, 2, sheets[1].Len())
	assert.Equal(t, "body { border-color: red; }", sheets[0].Rule(0).String())
}

func TestExtractNoStyles(t *testing.T) {
	h, err := html.Parse(strings.NewReader("<p>no styles</p>"))
	require.NoError(t, err)
	sheets, err := ExtractStyleElements(h)
	assert.NoError(t, err)
	assert.Empty(t, sheets)
}

func TestConvert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinystyle.css")
	defer teardown()
	//
	// douceur accepts a missing final semicolon and comments
	dsheet, err := parser.Parse(`/* headings */ h1, h2 { margin: auto; color: #CC0000 }
	div.note { margin-bottom: 20px !important; }`)
	require.NoError(t, err)
	sheet, err := Convert(dsheet)
	require.NoError(t, err)
	require.Equal(t, 2, sheet.Len())
	assert.Equal(t, "h1, h2 { margin: auto; color: #cc0000; }", sheet.Rule(0).String())
	v, ok := sheet.Rule(1).Value("margin-bottom")
	assert.True(t, ok)
	assert.Equal(t, cssom.Px(20), v)
	sel := sheet.Rule(1).Selectors()[0]
	assert.Equal(t, cssom.Specificity{0, 1, 1}, sel.Specificity())
}

func TestConvertRejects(t *testing.T) {
	for _, tc := range []struct {
		source string
		err    error
	}{
		{"@media print { p { color: red; } }", ErrUnsupported},
		{"div > p { color: red; }", css.ErrUnexpectedInput},
		{"p { width: 3em; }", css.ErrUnknownUnit},
		{"p { color: #12345; }", css.ErrInvalidColor},
	} {
		sheet, err := Parse(tc.source)
		if !errors.Is(err, tc.err) {
			t.Errorf("expected error %v for %q, is %v", tc.err, tc.source, err)
		}
		if sheet != nil {
			t.Errorf("expected no style sheet for %q, have %v", tc.source, sheet)
		}
	}
}

func TestConvertNil(t *testing.T) {
	sheet, err := Convert(nil)
	assert.NoError(t, err)
	assert.True(t, sheet.Empty())
}

func TestParseInline(t *testing.T) {
	expected := []cssom.Declaration{
		{Name: "color", Value: cssom.Keyword("blue")},
		{Name: "margin", Value: cssom.Px(2)},
	}
	for _, text := range []string{
		"color: blue; margin: 2px",
		"color: blue; margin: 2px;",
		"  color: blue; margin: 2px  ",
		"color: blue;margin:2px ;",
	} {
		decls, err := ParseInline(text)
		require.NoError(t, err, text)
		assert.Equal(t, expected, decls, text)
	}
	decls, err := ParseInline("margin: 3px")
	require.NoError(t, err)
	assert.Equal(t, []cssom.Declaration{{Name: "margin", Value: cssom.Px(3)}}, decls)
	decls, err = ParseInline("   ")
	assert.NoError(t, err)
	assert.Empty(t, decls)
}

func TestParseInlineRejectsBadValues(t *testing.T) {
	_, err := ParseInline("width: 3em")
	if !errors.Is(err, css.ErrUnknownUnit) {
		t.Errorf("expected unknown-unit error, is %v", err)
	}
	_, err = ParseInline("color: #12")
	if !errors.Is(err, css.ErrInvalidColor) {
		t.Errorf("expected invalid-color error, is %v", err)
	}
}
