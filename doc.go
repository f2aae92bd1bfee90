/*
Package clformat provides directive-driven text formatting in the tradition
of Common Lisp's FORMAT, paired with a pretty-printing engine which decides
line breaks and indentation automatically (see subpackage pretty).

# Control Strings

A control string is ordinary text with embedded directives, introduced by a
tilde. Each directive optionally carries comma-separated prefix parameters
and the modifier flags ':' and '@', followed by a single selector character:

	clformat.String("~D warning~:P", 2)          ⇒ "2 warnings"
	clformat.String("~{~A~^, ~}", list)          ⇒ "a, b, c"
	clformat.String("~:[failed~;ok~]", passed)   ⇒ "ok"

Parameters may be integer literals, character literals ('x), 'v' to draw the
value from the next argument, or '#' for the count of remaining arguments.

Directives cover literal output (~% ~& ~| ~~ ~C), scalar rendering (~A ~S
~W), radix control (~D ~B ~O ~X ~R, including Roman numerals and English
number names), tabulation (~T), control flow (~[ ~] ~{ ~} ~? ~* ~^), case
conversion (~( ~)), plural suffixes (~P), and pretty-printer operations
(~_ ~I ~<…~:>). Delimited directives nest; their clause structure is checked
at compile time.

Compiling a control string once and reusing it is cheap:

	f, err := clformat.Compile("~A = ~S~%")
	…
	f.Format(w, key, value)

Compiled formatters are read-only and may be shared, as long as no caller
mutates the argument slices they are applied to.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package clformat

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
