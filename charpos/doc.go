/*
Package charpos wraps an output writer and keeps track of character positions
relative to the beginning of the current line.

Positions are measured in fixed-width terminal cells, not in bytes: grapheme
clusters are segmented with UAX#29 and measured with UAX#11 East Asian
widths, so that a CJK ideograph advances the column by 2.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package charpos

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'clformat'
func tracer() tracing.Trace {
	return tracing.Select("clformat")
}
