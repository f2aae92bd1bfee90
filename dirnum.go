package clformat

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/clformat/numeral"
)

// numeric executes the radix-control directives ~R, ~D, ~B, ~O and ~X.
// A ~R without parameters spells its argument out instead (see spelled).
func (st *state) numeric(w io.Writer, d *directive, args *Arguments) error {
	i := 0
	var radix int
	switch d.op {
	case opDecimal:
		radix = 10
	case opBinary:
		radix = 2
	case opOctal:
		radix = 8
	case opHexadecimal:
		radix = 16
	case opRadix:
		if len(d.params) == 0 {
			return st.spelled(w, d, args)
		}
		r, err := st.intParam(d, 0, args, st.cfg.base())
		if err != nil {
			return err
		}
		radix = r
		i = 1
	}
	mincol, err := st.intParam(d, i, args, 0)
	if err != nil {
		return err
	}
	padchar, err := st.runeParam(d, i+1, args, ' ')
	if err != nil {
		return err
	}
	commachar, err := st.runeParam(d, i+2, args, ',')
	if err != nil {
		return err
	}
	commaInterval, err := st.intParam(d, i+3, args, 3)
	if err != nil {
		return err
	}

	arg, err := args.Next()
	if err != nil {
		return err
	}
	n, ok := asInt64(arg)
	if !ok {
		return d.semanticErr(fmt.Sprintf("integer argument expected, got %T", arg))
	}
	abs := uint64(n)
	if n < 0 {
		abs = uint64(-n)
	}
	s, err := numeral.Digits(abs, radix)
	if err != nil {
		return err
	}
	var sign string
	switch {
	case d.atsign && n >= 0:
		sign = "+"
	case n < 0:
		sign = "-"
	}
	if d.colon {
		if commaInterval < 1 {
			return d.semanticErr("comma interval must be positive")
		}
		if padchar == '0' && mincol > len(s)+len(sign) {
			// Zeros are padded in before grouping so that they get grouped
			// too (cf. CLiki issue FORMAT-RADIX-COMMACHAR). The digit count
			// meeting mincol after grouping is found by searching upwards.
			col := func(k int) int {
				return k + (k-1)/commaInterval + len(sign)
			}
			width := len(s)
			for col(width) < mincol {
				width++
			}
			if col(width) > mincol {
				width--
			}
			s = padLeft(s, width, '0')
			// a sign may still need one space of padding up to mincol
			padchar = ' '
		}
		s = groupDigits(s, commachar, commaInterval)
	}
	_, err = io.WriteString(w, padLeft(sign+s, mincol, padchar))
	return err
}

// spelled executes the parameterless ~R forms: English cardinals and
// ordinals, Roman numerals (modern and old-style).
func (st *state) spelled(w io.Writer, d *directive, args *Arguments) error {
	arg, err := args.Next()
	if err != nil {
		return err
	}
	var s string
	if d.atsign {
		n, ok := asInt(arg)
		if !ok {
			return d.semanticErr(fmt.Sprintf("integer argument expected, got %T", arg))
		}
		s, err = numeral.Roman(n, d.colon)
		if err != nil {
			return err
		}
	} else {
		n, ok := asBigInt(arg)
		if !ok {
			return d.semanticErr(fmt.Sprintf("integer argument expected, got %T", arg))
		}
		if d.colon {
			s = numeral.Ordinal(n)
		} else {
			s = numeral.Cardinal(n)
		}
	}
	_, err = io.WriteString(w, s)
	return err
}

// groupDigits inserts commachar between groups of interval digits, counted
// from the right.
func groupDigits(s string, commachar rune, interval int) string {
	first := len(s) % interval
	var groups []string
	if first > 0 {
		groups = append(groups, s[:first])
	}
	for i := first; i < len(s); i += interval {
		groups = append(groups, s[i:i+interval])
	}
	return strings.Join(groups, string(commachar))
}

func padLeft(s string, width int, padchar rune) string {
	if n := width - len(s); n > 0 {
		return strings.Repeat(string(padchar), n) + s
	}
	return s
}
