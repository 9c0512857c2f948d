package style

import (
	"sort"

	"github.com/npillmayer/tinystyle/cssom"
	"github.com/npillmayer/tinystyle/dom"
)

// Matches checks if a selector matches a content element.
//
// A simple selector matches if its tag name is universal or equal to the
// element's tag name, its ID is absent or equal to the element's ID, and
// all of its classes are in the element's class set.
func Matches(sel cssom.Selector, e dom.Element) bool {
	switch s := sel.(type) {
	case cssom.SimpleSelector:
		if !s.IsUniversal() && s.TagName != e.TagName() {
			return false
		}
		if s.ID != "" && s.ID != e.ID() {
			return false
		}
		for _, cl := range s.Classes {
			if !e.HasClass(cl) {
				return false
			}
		}
		return true
	}
	return false
}

// MatchRule checks if any selector of a rule matches an element. If it
// does, the maximum specificity among the matching selectors is returned.
func MatchRule(rule *cssom.Rule, e dom.Element) (bool, cssom.Specificity) {
	var (
		maxSpec cssom.Specificity
		found   bool
	)
	for _, sel := range rule.Selectors() {
		if Matches(sel, e) {
			found = true
			maxSpec = maxSpec.Max(sel.Specificity())
		}
	}
	return found, maxSpec
}

// MatchedRule is a rule matching an element, together with the metadata
// used for cascade ordering.
type MatchedRule struct {
	Rule        *cssom.Rule
	Specificity cssom.Specificity // maximum specificity of matching selectors
	Order       int               // source order
}

// MatchingRules collects all rules of a style sheet which match an element.
// The result is sorted in cascade order: ascending by specificity, rules
// of equal specificity in source order.
func MatchingRules(e dom.Element, sheet *cssom.StyleSheet) []MatchedRule {
	var matched []MatchedRule
	if e == nil {
		return nil
	}
	for i, rule := range sheet.Rules() {
		if ok, spec := MatchRule(rule, e); ok {
			matched = append(matched, MatchedRule{Rule: rule, Specificity: spec, Order: i})
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if c := matched[i].Specificity.Compare(matched[j].Specificity); c != 0 {
			return c < 0
		}
		return matched[i].Order < matched[j].Order
	})
	return matched
}

// Resolve computes the property map for an element. Declarations of
// matching rules are written in cascade order, later writes overwriting
// earlier ones.
//
// Resolving the same element against the same style sheet always yields
// equal property maps.
func Resolve(e dom.Element, sheet *cssom.StyleSheet) *PropertyMap {
	pmap := NewPropertyMap()
	for _, m := range MatchingRules(e, sheet) {
		for _, decl := range m.Rule.Declarations() {
			pmap.Set(decl.Name, decl.Value)
		}
	}
	return pmap
}

// ResolveAll computes the property map for an element from a sequence of
// style sheets. The sheets are treated as if concatenated into one, i.e.
// for equal specificity rules of later sheets win.
func ResolveAll(e dom.Element, sheets ...*cssom.StyleSheet) *PropertyMap {
	return Resolve(e, cssom.Concat(sheets...))
}
