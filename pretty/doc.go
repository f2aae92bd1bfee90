/*
Package pretty implements a pretty-printing engine with automatic line
breaking, in the tradition of the Oppen/Waters algorithms used by Lisp
pretty-printers (and by Go's own go/printer, for that matter).

Clients emit a stream of tokens — plain text, logical-block boundaries,
conditional newlines and indentation adjustments — and the engine decides
where lines break so that output stays within a right margin whenever
possible. Decisions are deferred with bounded lookahead: a conditional
newline is held back until enough trailing material has been seen to know
whether the enclosing block fits on the current line.

A minimal session looks like this:

	pp := pretty.New(w, 30)
	pp.Begin("[", false)
	pp.WriteString("alpha, ")
	pp.Newline(pretty.Fill)
	pp.WriteString("beta")
	pp.End("]")
	pp.Close()

Blocks nest; every Begin must be balanced by an End before Close. Close
checks that all internal buffers have drained and panics otherwise — an
unbalanced token stream is a programming error, not an input error.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package pretty

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'clformat'
func tracer() tracing.Trace {
	return tracing.Select("clformat")
}

// assert panics with msg if condition does not hold. We do not use this for
// checking of input data, but rather for invariants of internal structures.
func assert(condition bool, msg string) {
	if !condition {
		panic("pretty: " + msg)
	}
}
