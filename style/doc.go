/*
Package style resolves the effective style properties of content nodes.

Given a content node's identity (see package dom) and a parsed style
sheet, Resolve matches the rules of the sheet against the node and merges
the declarations of all matching rules into a PropertyMap:

- A rule matches if any of its selectors matches.
- The priority of a matching rule is the maximum specificity among its
  matching selectors.
- Rules are applied in ascending priority, ties broken by source order.
  Later writes overwrite earlier ones, therefore higher specificity wins,
  and for equal specificity the later rule wins.

Properties are not inherited: the property map of a node depends only on
rules matching this node. Resolution never fails; absent properties fall
through to defaults (see PropertyMap.Lookup).

Style sheets are read-only during resolution. Property maps for different
nodes may be resolved concurrently.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'tinystyle.style'
func tracer() tracing.Trace {
	return tracing.Select("tinystyle.style")
}
