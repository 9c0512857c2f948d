package cssom

import (
	"strings"
)

// StyleSheet is a parsed style sheet: an ordered sequence of rules.
// Source order of rules is significant for the cascade only as the final
// tie-break between rules of equal specificity.
//
// A StyleSheet is never modified after parsing. Clients which need to
// combine sheets should use Concat, which creates a new sheet.
type StyleSheet struct {
	rules []*Rule
}

// NewStyleSheet creates a style sheet from a list of rules, preserving their order.
func NewStyleSheet(rules ...*Rule) *StyleSheet {
	sheet := &StyleSheet{rules: make([]*Rule, 0, len(rules))}
	for _, r := range rules {
		if r != nil {
			sheet.rules = append(sheet.rules, r)
		}
	}
	return sheet
}

// Empty checks if this style sheet contains any rules. nil is a legal
// (empty) style sheet.
func (sheet *StyleSheet) Empty() bool {
	return sheet == nil || len(sheet.rules) == 0
}

// Len returns the number of rules.
func (sheet *StyleSheet) Len() int {
	if sheet == nil {
		return 0
	}
	return len(sheet.rules)
}

// Rules returns all the rules of a style sheet, in source order.
// The returned slice is a copy; rules themselves are shared.
func (sheet *StyleSheet) Rules() []*Rule {
	if sheet == nil {
		return nil
	}
	rules := make([]*Rule, len(sheet.rules))
	copy(rules, sheet.rules)
	return rules
}

// Rule returns rule #i (in source order).
func (sheet *StyleSheet) Rule(i int) *Rule {
	if sheet == nil || i < 0 || i >= len(sheet.rules) {
		return nil
	}
	return sheet.rules[i]
}

// Concat returns a new style sheet containing the rules of all the
// sheets, in the order given. Source order continues across sheets.
func Concat(sheets ...*StyleSheet) *StyleSheet {
	n := 0
	for _, s := range sheets {
		n += s.Len()
	}
	all := &StyleSheet{rules: make([]*Rule, 0, n)}
	for _, s := range sheets {
		if s != nil {
			all.rules = append(all.rules, s.rules...)
		}
	}
	return all
}

func (sheet *StyleSheet) String() string {
	var b strings.Builder
	for i, r := range sheet.Rules() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.String())
	}
	return b.String()
}

// --- Rules -----------------------------------------------------------------

// Rule is the type style sheets consist of. A rule applies to a node if any
// of its selectors matches the node.
//
// A rule always has at least one selector; its body may be empty.
type Rule struct {
	selectors    []Selector
	declarations []Declaration
}

// NewRule creates a rule. Selectors are stored ascending by specificity,
// see SortBySpecificity. NewRule returns nil if selectors is empty.
func NewRule(selectors []Selector, declarations []Declaration) *Rule {
	if len(selectors) == 0 {
		return nil
	}
	sels := make([]Selector, len(selectors))
	copy(sels, selectors)
	SortBySpecificity(sels)
	decls := make([]Declaration, len(declarations))
	copy(decls, declarations)
	return &Rule{selectors: sels, declarations: decls}
}

// Selectors returns the selectors of a rule, lowest specificity first.
// Selectors of equal specificity keep their relative source order.
func (r *Rule) Selectors() []Selector {
	sels := make([]Selector, len(r.selectors))
	copy(sels, r.selectors)
	return sels
}

// Declarations returns the body of a rule in source order.
func (r *Rule) Declarations() []Declaration {
	decls := make([]Declaration, len(r.declarations))
	copy(decls, r.declarations)
	return decls
}

// Properties returns the property names of a rule, e.g. "margin-top".
func (r *Rule) Properties() []string {
	props := make([]string, 0, len(r.declarations))
	for _, d := range r.declarations {
		props = append(props, d.Name)
	}
	return props
}

// Value returns the value for a property in this rule. If a property is
// declared more than once, the last declaration wins.
func (r *Rule) Value(name string) (Value, bool) {
	for i := len(r.declarations) - 1; i >= 0; i-- {
		if r.declarations[i].Name == name {
			return r.declarations[i].Value, true
		}
	}
	return nil, false
}

func (r *Rule) String() string {
	var b strings.Builder
	for i, sel := range r.selectors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sel.String())
	}
	b.WriteString(" {")
	for _, d := range r.declarations {
		b.WriteByte(' ')
		b.WriteString(d.String())
	}
	b.WriteString(" }")
	return b.String()
}

// --- Declarations ----------------------------------------------------------

// Declaration is a property name/value pair, e.g. "margin: auto;".
// Property names are case-sensitive.
type Declaration struct {
	Name  string
	Value Value
}

func (d Declaration) String() string {
	if d.Value == nil {
		return d.Name + ": ;"
	}
	return d.Name + ": " + d.Value.String() + ";"
}
