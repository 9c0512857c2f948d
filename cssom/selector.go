package cssom

import (
	"sort"
	"strings"
)

// Selector is a pattern matched against a content node's identity.
// The set of selector variants is closed: currently the only variant is
// SimpleSelector. Clients use a type switch to discriminate variants.
type Selector interface {
	Specificity() Specificity
	String() string
	isSelector()
}

// SimpleSelector consists of an optional tag name, an optional ID and any
// number of class names. An empty tag name (or "*") is the universal
// selector which matches any tag. A simple selector without any component
// matches every element.
//
//     SimpleSelector{ TagName: "div", ID: "div-id", Classes: []string{"note"} }
type SimpleSelector struct {
	TagName string
	ID      string
	Classes []string
}

func (s SimpleSelector) isSelector() {}

// IsUniversal is true if the selector's tag name matches any tag.
func (s SimpleSelector) IsUniversal() bool {
	return s.TagName == "" || s.TagName == "*"
}

// Specificity is part of interface Selector.
func (s SimpleSelector) Specificity() Specificity {
	return SpecificityOf(s)
}

func (s SimpleSelector) String() string {
	var b strings.Builder
	if s.IsUniversal() {
		if s.ID == "" && len(s.Classes) == 0 {
			b.WriteByte('*')
		}
	} else {
		b.WriteString(s.TagName)
	}
	if s.ID != "" {
		b.WriteByte('#')
		b.WriteString(s.ID)
	}
	for _, c := range s.Classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	return b.String()
}

var _ Selector = SimpleSelector{}

// SortBySpecificity sorts a selector list ascending by specificity, i.e.
// the most specific selector comes last. The sort is stable: selectors of
// equal specificity keep their relative order.
func SortBySpecificity(sels []Selector) {
	sort.SliceStable(sels, func(i, j int) bool {
		return sels[i].Specificity().Less(sels[j].Specificity())
	})
}
