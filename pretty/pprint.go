package pretty

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Pprinter objects know how to render themselves onto a Printer.
type Pprinter interface {
	Pprint(pp *Printer)
}

// Pprint renders an arbitrary value onto the printer. Slices and arrays
// become bracketed logical blocks with fill-style breaks between elements,
// maps become braced blocks with keys in deterministic (sorted) order.
// Values implementing Pprinter render themselves. Everything else is written
// as a scalar, strings subject to the quoting setting (see SetQuote).
//
// Element-count truncation (see SetLimits) applies per block: after the
// configured number of elements a LengthPlaceholder is emitted and the rest
// of the block is skipped. Depth truncation is handled by Begin itself.
func (pp *Printer) Pprint(v any) {
	switch x := v.(type) {
	case nil:
		pp.WriteString("nil")
	case string:
		if pp.quote {
			pp.WriteString(strconv.Quote(x))
		} else {
			pp.WriteString(x)
		}
	case rune:
		if pp.quote {
			pp.WriteString(strconv.QuoteRune(x))
		} else {
			pp.WriteString(string(x))
		}
	case Pprinter:
		x.Pprint(pp)
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			pp.pprintSeq(rv)
		case reflect.Map:
			pp.pprintMap(rv)
		default:
			pp.WriteString(fmt.Sprint(v))
		}
	}
}

func (pp *Printer) pprintSeq(rv reflect.Value) {
	pp.Begin("[", false)
	n := rv.Len()
	for i := 0; i < n; i++ {
		if pp.maxLength > 0 && i == pp.maxLength {
			pp.WriteString(LengthPlaceholder)
			break
		}
		pp.Pprint(rv.Index(i).Interface())
		if i+1 < n {
			pp.WriteString(", ")
			pp.Newline(Fill)
		}
	}
	pp.End("]")
}

func (pp *Printer) pprintMap(rv reflect.Value) {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})
	pp.Begin("{", false)
	for i, k := range keys {
		if pp.maxLength > 0 && i == pp.maxLength {
			pp.WriteString(LengthPlaceholder)
			break
		}
		pp.Pprint(k.Interface())
		pp.WriteString(": ")
		pp.Pprint(rv.MapIndex(k).Interface())
		if i+1 < len(keys) {
			pp.WriteString(", ")
			pp.Newline(Fill)
		}
	}
	pp.End("}")
}
