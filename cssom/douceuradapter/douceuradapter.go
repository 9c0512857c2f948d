/*
Package douceuradapter converts style sheets parsed by package douceur into
our CSS object model, and extracts style sheets embedded in HTML documents.

Douceur is lenient about CSS syntax, e.g. it accepts a missing semicolon
after the last declaration of a block, and it handles comments. The
selectors and values of a douceur style sheet are re-parsed with package
css, so a converted style sheet contains exactly the constructs a style
sheet parsed by css.Parse may contain.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"errors"
	"fmt"
	"strings"

	dcss "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tinystyle/css"
	"github.com/npillmayer/tinystyle/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'tinystyle.css'.
func tracer() tracing.Trace {
	return tracing.Select("tinystyle.css")
}

// ErrUnsupported is returned for constructs of a douceur style sheet which
// have no representation in the CSS object model, e.g. at-rules.
var ErrUnsupported = errors.New("unsupported CSS construct")

// Parse parses CSS source text with douceur and converts the result.
func Parse(source string) (*cssom.StyleSheet, error) {
	dsheet, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return Convert(dsheet)
}

// Convert converts a douceur style sheet. Rules keep their source order.
// Any error is fatal and discards the whole style sheet.
func Convert(dsheet *dcss.Stylesheet) (*cssom.StyleSheet, error) {
	if dsheet == nil {
		return cssom.NewStyleSheet(), nil
	}
	rules := make([]*cssom.Rule, 0, len(dsheet.Rules))
	for _, r := range dsheet.Rules {
		rule, err := convertRule(r)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return cssom.NewStyleSheet(rules...), nil
}

func convertRule(r *dcss.Rule) (*cssom.Rule, error) {
	if r.Kind != dcss.QualifiedRule {
		return nil, fmt.Errorf("%w: at-rule %s", ErrUnsupported, r.Name)
	}
	selectors, err := css.ParseSelectors(r.Prelude)
	if err != nil {
		return nil, fmt.Errorf("selector %q: %w", r.Prelude, err)
	}
	decls, err := ConvertDeclarations(r.Declarations)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", r.Prelude, err)
	}
	for _, d := range r.Declarations {
		if d.Important {
			tracer().Debugf("css: ignoring !important for property %s", d.Property)
		}
	}
	return cssom.NewRule(selectors, decls), nil
}

// ConvertDeclarations converts douceur declarations, keeping their order.
// The "!important" flag is not represented and therefore dropped.
func ConvertDeclarations(ddecls []*dcss.Declaration) ([]cssom.Declaration, error) {
	decls := make([]cssom.Declaration, 0, len(ddecls))
	for _, d := range ddecls {
		v, err := css.ParseValue(d.Value)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", d.Property, err)
		}
		decls = append(decls, cssom.Declaration{Name: d.Property, Value: v})
	}
	return decls, nil
}

// ParseInline parses the content of an HTML style attribute, e.g.
// "color: red; margin: 0px". The semicolon after the last declaration
// is optional.
func ParseInline(text string) ([]cssom.Declaration, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if !strings.HasSuffix(text, ";") {
		text += ";" // douceur loses the value of an unterminated last declaration
	}
	ddecls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, err
	}
	return ConvertDeclarations(ddecls)
}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets, in document order.
func ExtractStyleElements(htmldoc *html.Node) ([]*cssom.StyleSheet, error) {
	var sheets []*cssom.StyleSheet
	for _, a := range []atom.Atom{atom.Head, atom.Body} {
		s, err := extractStyles(findElement(a, htmldoc))
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, s...)
	}
	return sheets, nil
}

func extractStyles(h *html.Node) ([]*cssom.StyleSheet, error) {
	if h == nil {
		return nil, nil
	}
	var sheets []*cssom.StyleSheet
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode || ch.DataAtom != atom.Style {
			continue
		}
		sheet, err := css.Parse(textContent(ch))
		if err != nil {
			return nil, fmt.Errorf("<style> in <%s>: %w", h.Data, err)
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

func textContent(h *html.Node) string {
	var b strings.Builder
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			b.WriteString(ch.Data)
		}
	}
	return b.String()
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a && h.Type == html.ElementNode {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
