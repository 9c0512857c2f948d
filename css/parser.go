package css

import (
	"github.com/npillmayer/tinystyle/cssom"
)

// Parse parses style sheet source text into a style sheet.
// Rules are returned in source order.
//
// Parse errors are fatal: if err is non-nil, the returned style sheet is nil.
func Parse(source string) (*cssom.StyleSheet, error) {
	tracer().Debugf("css: parsing style sheet of %d bytes", len(source))
	p := newParser(source)
	var rules []*cssom.Rule
	for {
		p.sc.SkipWhitespace()
		if p.sc.AtEnd() {
			break
		}
		rule, err := p.parseRule()
		if err != nil {
			tracer().Infof("css: %v", err)
			return nil, err
		}
		rules = append(rules, rule)
	}
	tracer().Debugf("css: parsed %d rules", len(rules))
	return cssom.NewStyleSheet(rules...), nil
}

// ParseSelectors parses the text of a selector list, e.g. "h1, h2.title".
// The selectors are returned ascending by specificity.
func ParseSelectors(text string) ([]cssom.Selector, error) {
	p := newParser(text)
	p.sc.SkipWhitespace()
	return p.parseSelectorList(false)
}

func (p *parser) parseRule() (*cssom.Rule, error) {
	selectors, err := p.parseSelectorList(true)
	if err != nil {
		return nil, err
	}
	decls, err := p.parseDeclarationBlock()
	if err != nil {
		return nil, err
	}
	return cssom.NewRule(selectors, decls), nil
}

// parseSelectorList parses comma-separated simple selectors. If inRule is
// set, the list has to be terminated by '{' (which is not consumed),
// otherwise by the end of input.
//
// The resulting list is sorted ascending by specificity.
func (p *parser) parseSelectorList(inRule bool) ([]cssom.Selector, error) {
	var selectors []cssom.Selector
	for {
		sel, err := p.parseSimpleSelector()
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, sel)
		p.sc.SkipWhitespace()
		if !inRule && p.sc.AtEnd() {
			break
		}
		pos := p.sc.Pos()
		r, err := p.sc.Peek()
		if err != nil {
			return nil, within(err, "selector list")
		}
		if r == '{' && inRule {
			break
		}
		if r != ',' {
			return nil, parseError(ErrUnexpectedInput, pos, "unexpected character %q in selector list", r)
		}
		p.sc.Advance()
		p.sc.SkipWhitespace()
	}
	cssom.SortBySpecificity(selectors)
	return selectors, nil
}

func (p *parser) parseSimpleSelector() (cssom.SimpleSelector, error) {
	var sel cssom.SimpleSelector
	for !p.sc.AtEnd() {
		pos := p.sc.Pos()
		r, _ := p.sc.Peek()
		switch {
		case r == '#':
			p.sc.Advance()
			id, err := p.componentName("#")
			if err != nil {
				return sel, err
			}
			sel.ID = id
		case r == '.':
			p.sc.Advance()
			class, err := p.componentName(".")
			if err != nil {
				return sel, err
			}
			if !contains(sel.Classes, class) {
				sel.Classes = append(sel.Classes, class)
			}
		case r == '*':
			p.sc.Advance() // universal selector leaves the tag name unset
		case isIdentChar(r):
			if sel.TagName != "" {
				return sel, parseError(ErrUnexpectedInput, pos, "more than one tag name in selector")
			}
			sel.TagName = p.parseIdentifier()
		default:
			return sel, nil
		}
	}
	return sel, nil
}

// componentName parses the identifier following a '#' or '.' prefix.
func (p *parser) componentName(prefix string) (string, error) {
	if !p.sc.lookingAt(isIdentChar) {
		return "", parseError(ErrUnexpectedInput, p.sc.Pos(), "expected identifier after %q", prefix)
	}
	return p.parseIdentifier(), nil
}

func (p *parser) parseDeclarationBlock() ([]cssom.Declaration, error) {
	if err := p.sc.Expect('{'); err != nil {
		return nil, err
	}
	var decls []cssom.Declaration
	for {
		p.sc.SkipWhitespace()
		r, err := p.sc.Peek()
		if err != nil {
			return nil, within(err, "declaration block")
		}
		if r == '}' {
			p.sc.Advance()
			break
		}
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, within(err, "declaration block")
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

// parseDeclaration parses a name/value pair, e.g. "margin: auto;".
func (p *parser) parseDeclaration() (cssom.Declaration, error) {
	var decl cssom.Declaration
	pos := p.sc.Pos()
	if decl.Name = p.parseIdentifier(); decl.Name == "" {
		r, _ := p.sc.Peek()
		return decl, parseError(ErrUnexpectedInput, pos, "expected property name, found %q", r)
	}
	p.sc.SkipWhitespace()
	if err := p.sc.Expect(':'); err != nil {
		return decl, err
	}
	p.sc.SkipWhitespace()
	v, err := p.parseValue()
	if err != nil {
		return decl, err
	}
	decl.Value = v
	p.sc.SkipWhitespace()
	if err := p.sc.Expect(';'); err != nil {
		return decl, err
	}
	return decl, nil
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
