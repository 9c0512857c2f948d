package styledtree

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tinystyle/cssom"
	"github.com/npillmayer/tinystyle/cssom/douceuradapter"
	"github.com/npillmayer/tinystyle/dom"
	"github.com/npillmayer/tinystyle/style"
	"github.com/npillmayer/tinystyle/tree"
	"golang.org/x/net/html"
)

// ErrNoDocument is returned by Build for a missing HTML parse tree.
var ErrNoDocument = errors.New("styledtree: no document to style")

// Option configures the construction of a styled tree.
type Option func(*config)

type config struct {
	workers  int
	embedded bool
	inline   bool
}

// Workers sets the maximum number of nodes resolved concurrently.
// n < 1 selects the number of CPUs, n == 1 resolves sequentially.
func Workers(n int) Option {
	return func(conf *config) {
		conf.workers = n
	}
}

// EmbeddedStyles includes the style sheets of <style> elements of the
// document. Their rules cascade after the rules of the style sheet given
// to Build.
func EmbeddedStyles() Option {
	return func(conf *config) {
		conf.embedded = true
	}
}

// InlineStyles applies the declarations of HTML style attributes. They
// take precedence over every rule of a style sheet. A malformed style
// attribute makes Build fail.
func InlineStyles() Option {
	return func(conf *config) {
		conf.inline = true
	}
}

// Build creates a styled tree mirroring the HTML parse tree under root,
// resolving the specified values of every element node against sheet.
// A nil sheet is legal and results in empty property maps throughout.
//
// The returned tree is independent from the style sheet; it references,
// but does not own, the nodes of the HTML parse tree.
func Build(root *html.Node, sheet *cssom.StyleSheet, opts ...Option) (*tree.Node[*StyNode], error) {
	if root == nil {
		return nil, ErrNoDocument
	}
	conf := config{}
	for _, opt := range opts {
		opt(&conf)
	}
	if conf.embedded {
		embedded, err := douceuradapter.ExtractStyleElements(root)
		if err != nil {
			return nil, fmt.Errorf("styledtree: embedded style sheet: %w", err)
		}
		sheet = cssom.Concat(append([]*cssom.StyleSheet{sheet}, embedded...)...)
	}
	styroot := mirror(root)
	if styroot == nil {
		return nil, ErrNoDocument
	}
	tracer().Debugf("styledtree: resolving styles with %d rules", sheet.Len())
	// actions run concurrently and must not trace
	err := tree.TopDown(styroot, func(n *tree.Node[*StyNode]) error {
		sn := Node(n)
		e, ok := dom.FromHTML(sn.htmlNode)
		if !ok {
			sn.SetStyles(style.NewPropertyMap())
			return nil
		}
		pmap := style.Resolve(e, sheet)
		if conf.inline {
			if err := applyInline(pmap, sn.htmlNode); err != nil {
				return err
			}
		}
		sn.SetStyles(pmap)
		return nil
	}, tree.Concurrency(conf.workers))
	if err != nil {
		return nil, err
	}
	if tracer().GetTraceLevel() >= tracing.LevelDebug {
		elements := 0
		tree.PreOrder(styroot, func(n *tree.Node[*StyNode]) error {
			if Node(n).htmlNode.Type == html.ElementNode {
				elements++
			}
			return nil
		})
		tracer().Debugf("styledtree: styled %d elements", elements)
	}
	return styroot, nil
}

// mirror recursively creates styled nodes for h and its children. Comments,
// doctype nodes and other non-content nodes are skipped.
func mirror(h *html.Node) *tree.Node[*StyNode] {
	switch h.Type {
	case html.DocumentNode, html.ElementNode, html.TextNode:
	default:
		return nil
	}
	n := NewNodeForHTMLNode(h)
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		n.AddChild(mirror(c)) // nil children are ignored
	}
	return n
}

func applyInline(pmap *style.PropertyMap, h *html.Node) error {
	for _, a := range h.Attr {
		if a.Key != "style" || a.Namespace != "" {
			continue
		}
		decls, err := douceuradapter.ParseInline(a.Val)
		if err != nil {
			return fmt.Errorf("styledtree: style attribute of <%s>: %w", h.Data, err)
		}
		for _, d := range decls {
			pmap.Set(d.Name, d.Value)
		}
	}
	return nil
}
