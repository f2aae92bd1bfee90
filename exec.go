package clformat

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"math/big"
	"reflect"
)

// signal is the result kind of directive execution. Escape directives
// terminate enclosing repetitions by returning a non-zero signal, which
// propagates up the interpreter's call chain until an iteration directive
// consumes it. Signals are control flow, not errors.
type signal int8

const (
	sigNone signal = iota
	sigUp          // stop the innermost enclosing repetition
	sigUpUp        // stop the repetition enclosing that one
)

// state carries the printer configuration through directive execution.
// Directives which override a setting for a sub-format copy the state, so
// there is nothing to restore afterwards.
type state struct {
	cfg Config
}

// run executes a compiled item sequence against sink w and the argument
// cursor, stopping early when a directive signals an escape.
func (st *state) run(w io.Writer, items []item, args *Arguments) (signal, error) {
	for _, it := range items {
		switch x := it.(type) {
		case literal:
			if _, err := io.WriteString(w, string(x)); err != nil {
				return sigNone, err
			}
		case *directive:
			sig, err := st.apply(w, x, args)
			if err != nil {
				return sigNone, err
			}
			if sig != sigNone {
				return sig, nil
			}
		}
	}
	return sigNone, nil
}

// apply executes a single directive.
func (st *state) apply(w io.Writer, d *directive, args *Arguments) (signal, error) {
	switch d.op {
	case opCharacter:
		return sigNone, st.character(w, d, args)
	case opNewline:
		return sigNone, st.constantChar(w, d, args, "\n")
	case opPage:
		return sigNone, st.constantChar(w, d, args, "\f")
	case opTilde:
		return sigNone, st.constantChar(w, d, args, "~")
	case opFreshLine:
		return sigNone, st.freshLine(w, d, args)
	case opRadix, opDecimal, opBinary, opOctal, opHexadecimal:
		return sigNone, st.numeric(w, d, args)
	case opAesthetic:
		return sigNone, st.padded(w, d, args, false)
	case opStandard:
		return sigNone, st.padded(w, d, args, true)
	case opWrite:
		return sigNone, st.writeArg(w, d, args)
	case opCondNewline:
		return sigNone, st.condNewline(w, d)
	case opIndentation:
		return sigNone, st.indentation(w, d, args)
	case opTabulate:
		return sigNone, st.tabulate(w, d, args)
	case opJustification:
		if d.logical {
			return st.logicalBlock(w, d, args)
		}
		return sigNone, d.semanticErr("justification not supported")
	case opGoTo:
		return sigNone, st.goTo(d, args)
	case opConditional:
		return st.conditional(w, d, args)
	case opIteration:
		return st.iterate(w, d, args)
	case opRecursive:
		return st.recurse(w, d, args)
	case opCaseConversion:
		return st.caseConvert(w, d, args)
	case opPlural:
		return sigNone, st.plural(w, d, args)
	case opEscape:
		return st.escape(d, args)
	}
	return sigNone, d.semanticErr("directive not executable")
}

// --- parameter resolution --------------------------------------------------

// paramValue resolves prefix parameter n of d. Variable parameters draw the
// value from the argument cursor, remaining parameters report its remaining
// count. ok is false for absent parameters, telling the caller to use the
// directive's default.
func (st *state) paramValue(d *directive, n int, args *Arguments) (v any, ok bool, err error) {
	if n >= len(d.params) {
		return nil, false, nil
	}
	switch p := d.params[n]; p.kind {
	case paramInt:
		return p.num, true, nil
	case paramChar:
		return p.ch, true, nil
	case paramArg:
		arg, err := args.Next()
		if err != nil {
			return nil, false, err
		}
		if arg == nil {
			return nil, false, nil
		}
		return arg, true, nil
	case paramRemaining:
		return args.Remaining(), true, nil
	}
	return nil, false, nil
}

func (st *state) intParam(d *directive, n int, args *Arguments, def int) (int, error) {
	v, ok, err := st.paramValue(d, n, args)
	if err != nil || !ok {
		return def, err
	}
	i, ok := asInt(v)
	if !ok {
		return 0, d.semanticErr(fmt.Sprintf("parameter %d: integer expected, got %T", n, v))
	}
	return i, nil
}

func (st *state) runeParam(d *directive, n int, args *Arguments, def rune) (rune, error) {
	v, ok, err := st.paramValue(d, n, args)
	if err != nil || !ok {
		return def, err
	}
	r, ok := asRune(v)
	if !ok {
		return 0, d.semanticErr(fmt.Sprintf("parameter %d: character expected, got %T", n, v))
	}
	return r, nil
}

// --- argument coercion -----------------------------------------------------

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	}
	return 0, false
}

func asInt(v any) (int, bool) {
	n, ok := asInt64(v)
	return int(n), ok
}

func asBigInt(v any) (*big.Int, bool) {
	if b, ok := v.(*big.Int); ok {
		return b, true
	}
	if n, ok := asInt64(v); ok {
		return big.NewInt(n), true
	}
	return nil, false
}

// asRune accepts a rune, a byte, a single-character string, or a single
// decimal digit given as an integer (pad characters like the 0 in "~8,0D").
func asRune(v any) (rune, bool) {
	switch c := v.(type) {
	case rune:
		return c, true
	case byte:
		return rune(c), true
	case int:
		if c >= 0 && c <= 9 {
			return rune('0' + c), true
		}
	case string:
		runes := []rune(c)
		if len(runes) == 1 {
			return runes[0], true
		}
	}
	return 0, false
}

// isTrue mirrors generalized-boolean semantics: nil, false, numeric zero,
// the empty string and empty sequences count as false.
func isTrue(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	if n, ok := asInt64(v); ok {
		return n != 0
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// isOne reports whether a plural-directive argument denotes exactly one.
func isOne(v any) bool {
	if n, ok := asInt64(v); ok {
		return n == 1
	}
	switch f := v.(type) {
	case float32:
		return f == 1
	case float64:
		return f == 1
	}
	return false
}
