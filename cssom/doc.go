/*
Package cssom provides the CSS object model for a tiny subset of CSS.

Overview

A style sheet is a sequence of rules. A rule consists of one or more
selectors, separated by commas, followed by a block of declarations
enclosed in braces:

    h1, h2, h3 { margin: auto; color: #cc0000; }
    div.note { margin-bottom: 20px; padding: 10px; }
    #answer { display: none; }

Selectors and values are closed sets of variants. Clients discriminate
them with type switches; new variants are added to this package only.

Objects of this package are immutable once a parser has created them.
They may be shared between goroutines without locking.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'tinystyle.css'.
func tracer() tracing.Trace {
	return tracing.Select("tinystyle.css")
}
