package styledtree

import (
	"strings"

	"github.com/npillmayer/tinystyle/cssom"
	"github.com/npillmayer/tinystyle/dom"
	"github.com/npillmayer/tinystyle/maybe"
	"github.com/npillmayer/tinystyle/style"
	"github.com/npillmayer/tinystyle/tree"
	"golang.org/x/net/html"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	htmlNode            *html.Node
	computedStyles      *style.PropertyMap
}

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
func NewNodeForHTMLNode(h *html.Node) *tree.Node[*StyNode] {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.htmlNode = h
	return &sn.Node
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}

// NodeName is the tag name for element nodes, "#text" for text nodes and
// "#document" for a document node.
func (sn *StyNode) NodeName() string {
	if sn.htmlNode == nil {
		return "#unknown"
	}
	return dom.NodeName(sn.htmlNode)
}

// Styles returns the specified values of this node. Text nodes have an
// empty property map.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.computedStyles
}

// SetStyles sets the styling properties of a styled node.
func (sn *StyNode) SetStyles(styles *style.PropertyMap) {
	sn.computedStyles = styles
}

// Value returns the specified value of a property. Values are not
// inherited from parent nodes.
func (sn *StyNode) Value(key string) maybe.Maybe[cssom.Value] {
	return sn.computedStyles.Value(key)
}

// Lookup returns the value of property key, of property fallback, or def.
func (sn *StyNode) Lookup(key, fallback string, def cssom.Value) cssom.Value {
	return sn.computedStyles.Lookup(key, fallback, def)
}

// Display returns the display mode of this node.
func (sn *StyNode) Display() style.Display {
	return style.DisplayOf(sn.computedStyles)
}

// String returns a short label for the node, e.g. `div#main.note`.
// Text nodes show their (abbreviated) text.
func (sn *StyNode) String() string {
	h := sn.htmlNode
	if h == nil {
		return "#unknown"
	}
	switch h.Type {
	case html.TextNode:
		return shortText(h.Data, 16)
	case html.ElementNode:
		var b strings.Builder
		b.WriteString(h.Data)
		for _, a := range h.Attr {
			switch a.Key {
			case "id":
				b.WriteString("#" + a.Val)
			case "class":
				for _, cl := range strings.Fields(a.Val) {
					b.WriteString("." + cl)
				}
			}
		}
		return b.String()
	}
	return dom.NodeName(h)
}

func shortText(s string, maxlen int) string {
	r := []rune(s)
	if len(r) > maxlen {
		s = string(r[:maxlen]) + "…"
	}
	return strings.NewReplacer("\n", `\n`, "\t", `\t`).Replace(`"` + s + `"`)
}
