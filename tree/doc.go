/*
Package tree implements an all-purpose tree type.

Nodes carry a payload of a type parameter T and maintain a
concurrency-safe slice of children. Trees of this package are used for
the styled tree, which mirrors the content tree of a document.

Walking

Operations on all nodes of a tree, where the operation for a node does
not depend on results for other nodes, may be performed concurrently:

   err := tree.TopDown(root, func(n *tree.Node[T]) error {
       …
   }, tree.Concurrency(8))

TopDown will visit every node exactly once and wait for all operations to
finish. The first error returned by an operation is returned to the caller.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tinystyle.tree'.
func tracer() tracing.Trace {
	return tracing.Select("tinystyle.tree")
}
