/*
Package styledtree builds a styled document tree from an HTML parse tree and
a style sheet.

Overview

Every node of the styled tree mirrors a node of the HTML parse tree, holding
a non-owning reference to it, together with the specified values of its
style properties. Element nodes receive the property map resolved by
package style; text nodes receive an empty property map. Comments and
doctype nodes are not mirrored.

	root, err := styledtree.Build(doc, sheet, styledtree.Workers(4))
	...
	styledtree.Node(root).Display()

Style resolution of different nodes is independent, so Build resolves
nodes in parallel.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tinystyle.style'.
func tracer() tracing.Trace {
	return tracing.Select("tinystyle.style")
}
