package dom

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Element is the identity of a content node as seen by selectors.
type Element interface {
	TagName() string         // tag name, e.g. "div"
	ID() string              // value of attribute "id" or ""
	HasClass(cl string) bool // is cl contained in the class set?
}

// ElementData is a plain implementation of Element, useful for content
// trees not stemming from an HTML parser.
type ElementData struct {
	tag     string
	id      string
	classes map[string]struct{}
}

// NewElement creates an element from a tag name and its attributes.
// Attributes "id" and "class" are interpreted, others are ignored.
func NewElement(tag string, attrs map[string]string) *ElementData {
	e := &ElementData{tag: tag, id: attrs["id"]}
	e.classes = classSet(attrs["class"])
	return e
}

// TagName is part of interface Element.
func (e *ElementData) TagName() string {
	return e.tag
}

// ID is part of interface Element.
func (e *ElementData) ID() string {
	return e.id
}

// HasClass is part of interface Element.
func (e *ElementData) HasClass(cl string) bool {
	_, ok := e.classes[cl]
	return ok
}

// Classes returns the class set of an element, sorted.
func (e *ElementData) Classes() []string {
	cls := make([]string, 0, len(e.classes))
	for c := range e.classes {
		cls = append(cls, c)
	}
	sort.Strings(cls)
	return cls
}

func (e *ElementData) String() string {
	var b strings.Builder
	b.WriteString("<" + e.tag)
	if e.id != "" {
		b.WriteString(" id=" + e.id)
	}
	if len(e.classes) > 0 {
		b.WriteString(` class="` + strings.Join(e.Classes(), " ") + `"`)
	}
	b.WriteString(">")
	return b.String()
}

var _ Element = &ElementData{}

func classSet(attr string) map[string]struct{} {
	fields := strings.Fields(attr)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// --- HTML nodes ------------------------------------------------------------

// HTMLElement adapts an element node of an HTML parse tree to interface
// Element. It holds a non-owning reference to the HTML node.
type HTMLElement struct {
	node    *html.Node
	id      string
	classes map[string]struct{}
}

// FromHTML wraps an HTML node. It returns false if h is not an element node.
func FromHTML(h *html.Node) (*HTMLElement, bool) {
	if h == nil || h.Type != html.ElementNode {
		return nil, false
	}
	e := &HTMLElement{node: h}
	for _, a := range h.Attr {
		if a.Namespace != "" {
			continue
		}
		switch a.Key {
		case "id":
			e.id = a.Val
		case "class":
			e.classes = classSet(a.Val)
		}
	}
	return e, true
}

// HTMLNode returns the wrapped HTML node.
func (e *HTMLElement) HTMLNode() *html.Node {
	return e.node
}

// TagName is part of interface Element.
func (e *HTMLElement) TagName() string {
	return e.node.Data
}

// ID is part of interface Element.
func (e *HTMLElement) ID() string {
	return e.id
}

// HasClass is part of interface Element.
func (e *HTMLElement) HasClass(cl string) bool {
	_, ok := e.classes[cl]
	return ok
}

var _ Element = &HTMLElement{}

// NodeName returns a name for an HTML node: the tag name for elements,
// "#text" for text nodes, "#document" for the document node, etc.
func NodeName(h *html.Node) string {
	switch h.Type {
	case html.ElementNode:
		return h.Data
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	case html.DoctypeNode:
		return "#doctype"
	}
	return "#unknown"
}
