/*
Package css parses a tiny subset of CSS into a cssom.StyleSheet.

The parser is a hand-written recursive descent parser operating on a
Scanner, which is a cursor over the source text. The grammar is
deliberately small:

    stylesheet  := rule*
    rule        := selector (',' selector)* '{' declaration* '}'
    selector    := ('#' ident | '.' ident | '*' | ident)*
    declaration := ident ':' value ';'
    value       := number unit | '#' hex{6} | ident

Whitespace is insignificant between tokens.

Every error is fatal to the whole parse: there is none of the error recovery
of CSS proper. A malformed style sheet yields no
style sheet at all. Errors are of type *ParseError and wrap one of the
sentinel errors of this package, so clients may test them with errors.Is.

Each call to Parse owns its scanner, therefore parsing of independent
style sheets may be done concurrently.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'tinystyle.css'.
func tracer() tracing.Trace {
	return tracing.Select("tinystyle.css")
}
