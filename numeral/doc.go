/*
Package numeral provides pure integer-to-text conversions: digit strings in
arbitrary radixes, Roman numerals, and English cardinal and ordinal number
names.

All functions are free of shared state and safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package numeral

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'clformat'
func tracer() tracing.Trace {
	return tracing.Select("clformat")
}

// NumeralError is an error type for the numeral package.
type NumeralError string

func (e NumeralError) Error() string {
	return string(e)
}

// ErrRadixOutOfRange is flagged for radixes outside of 2…36.
const ErrRadixOutOfRange = NumeralError("radix out of range 2…36")

// ErrRomanDomain is flagged for integers which cannot be expressed as a
// Roman numeral.
const ErrRomanDomain = NumeralError("integer cannot be expressed as Roman numeral")
