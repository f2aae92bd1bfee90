package clformat

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/clformat/pretty"
)

// padded executes ~A and ~S: one argument, rendered aesthetically or
// readably, optionally padded to a minimum column width.
func (st *state) padded(w io.Writer, d *directive, args *Arguments, escape bool) error {
	arg, err := args.Next()
	if err != nil {
		return err
	}
	cfg := st.cfg
	cfg.Escape = escape
	if d.colon && arg == nil {
		_, err = io.WriteString(w, "[]")
		return err
	}
	if len(d.params) == 0 {
		return renderValue(cfg, w, arg)
	}
	mincol, err := st.intParam(d, 0, args, 0)
	if err != nil {
		return err
	}
	colinc, err := st.intParam(d, 1, args, 1)
	if err != nil {
		return err
	}
	minpad, err := st.intParam(d, 2, args, 0)
	if err != nil {
		return err
	}
	padchar, err := st.runeParam(d, 3, args, ' ')
	if err != nil {
		return err
	}
	if colinc != 1 {
		return d.semanticErr("colinc parameter must be 1")
	}
	if minpad != 0 {
		return d.semanticErr("minpad parameter must be 0")
	}
	s := renderToString(cfg, arg)
	if n := mincol - len([]rune(s)); n > 0 {
		pad := strings.Repeat(string(padchar), n)
		if d.atsign {
			s = pad + s
		} else {
			s += pad
		}
	}
	_, err = io.WriteString(w, s)
	return err
}

// writeArg executes ~W: one argument, rendered with the current printer
// configuration. The colon modifier forces structured rendering, the at-sign
// modifier lifts the depth and length truncation limits.
func (st *state) writeArg(w io.Writer, d *directive, args *Arguments) error {
	cfg := st.cfg
	if d.colon {
		cfg.Pretty = true
	}
	if d.atsign {
		cfg.Depth, cfg.Length = 0, 0
	}
	arg, err := args.Next()
	if err != nil {
		return err
	}
	return renderValue(cfg, w, arg)
}

// condNewline executes ~_: a conditional newline, linear by default, fill
// with colon, mandatory with both modifiers. Without a pretty-printing sink
// only the mandatory form has an effect.
func (st *state) condNewline(w io.Writer, d *directive) error {
	kind := pretty.Linear
	switch {
	case d.colon && d.atsign:
		kind = pretty.Mandatory
	case d.colon:
		kind = pretty.Fill
	}
	if pp, ok := w.(*pretty.Printer); ok {
		pp.Newline(kind)
		return nil
	}
	if kind == pretty.Mandatory {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

// indentation executes ~I: adjusting the break column of the innermost open
// logical block, relative to the block start or (with colon) to the current
// column.
func (st *state) indentation(w io.Writer, d *directive, args *Arguments) error {
	offset, err := st.intParam(d, 0, args, 0)
	if err != nil {
		return err
	}
	if pp, ok := w.(*pretty.Printer); ok {
		pp.Indent(offset, d.colon)
	}
	return nil
}

// logicalBlock executes ~<...~:>: the body runs inside a logical block of
// the pretty printer, against either the enclosing cursor (at-sign) or a
// nested cursor over the next argument. An up-and-out signalled in the body
// ends the block; up-up-and-out propagates to the enclosing iteration.
func (st *state) logicalBlock(w io.Writer, d *directive, args *Arguments) (signal, error) {
	inner := args
	if !d.atsign {
		arg, err := args.Next()
		if err != nil {
			return sigNone, err
		}
		list, ok := asList(arg)
		if !ok {
			return sigNone, d.semanticErr(fmt.Sprintf("sequence argument expected, got %T", arg))
		}
		inner = nested(list, args)
	}
	pp, ok := w.(*pretty.Printer)
	if !ok {
		// no pretty-printing sink: run the body plainly
		if _, err := io.WriteString(w, d.prefix); err != nil {
			return sigNone, err
		}
		sig, err := st.run(w, d.body, inner)
		if err != nil {
			return sigNone, err
		}
		if _, err := io.WriteString(w, d.suffix); err != nil {
			return sigNone, err
		}
		if sig == sigUpUp {
			return sigUpUp, nil
		}
		return sigNone, nil
	}
	pp.Begin(d.prefix, false)
	sig, err := st.run(pp, d.body, inner)
	if err != nil {
		return sigNone, err
	}
	pp.End(d.suffix)
	if sig == sigUpUp {
		return sigUpUp, nil
	}
	return sigNone, nil
}

// renderValue renders an argument onto the sink, using the sink's structured
// rendering when it is a pretty printer and the configuration asks for it.
func renderValue(cfg Config, w io.Writer, v any) error {
	if pp, ok := w.(*pretty.Printer); ok && cfg.Pretty {
		pp.SetQuote(cfg.Escape)
		pp.SetLimits(cfg.Depth, cfg.Length)
		pp.Pprint(v)
		return nil
	}
	_, err := io.WriteString(w, renderScalar(cfg, v))
	return err
}

// renderToString renders an argument into a string, line-broken against the
// configured margin.
func renderToString(cfg Config, v any) string {
	if !cfg.Pretty {
		return renderScalar(cfg, v)
	}
	var buf bytes.Buffer
	pp := pretty.New(&buf, cfg.Margin)
	pp.SetQuote(cfg.Escape)
	pp.SetLimits(cfg.Depth, cfg.Length)
	pp.Pprint(v)
	_ = pp.Close() // in-memory sink, cannot fail
	return buf.String()
}

// renderScalar renders an argument as a plain string, without structured
// line breaking.
func renderScalar(cfg Config, v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		if cfg.Escape {
			return strconv.Quote(x)
		}
		return x
	case rune:
		if cfg.Escape {
			return strconv.QuoteRune(x)
		}
		return string(x)
	default:
		return fmt.Sprint(v)
	}
}
