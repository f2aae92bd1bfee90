package clformat

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"io"
	"strings"

	"github.com/npillmayer/clformat/charpos"
	"github.com/npillmayer/clformat/pretty"
)

// Formatter is a compiled control string, ready to be applied to arguments.
// Formatters are read-only after compilation and may be shared and reused
// across calls.
type Formatter struct {
	control    string
	items      []item
	needCol    bool
	needPretty bool
}

// Compile parses a control string. Malformed control strings are rejected
// with a *SyntaxError.
func Compile(control string) (*Formatter, error) {
	items, err := compile(control)
	if err != nil {
		T().Debugf("clformat: cannot compile %q: %v", control, err)
		return nil, err
	}
	f := &Formatter{control: control, items: items}
	for _, it := range items {
		if d, ok := it.(*directive); ok {
			f.needPretty = f.needPretty || d.needPretty
			f.needCol = f.needCol || d.needCol
		}
	}
	f.needCol = f.needCol || f.needPretty
	return f, nil
}

// MustCompile is like Compile but panics on malformed control strings. It
// simplifies safe initialization of global variables holding formatters.
func MustCompile(control string) *Formatter {
	f, err := Compile(control)
	if err != nil {
		panic("clformat: cannot compile control string: " + err.Error())
	}
	return f
}

// Control returns the control string the formatter was compiled from.
func (f *Formatter) Control() string {
	return f.control
}

// Format applies the formatter to args, writing the rendered text to w.
func (f *Formatter) Format(w io.Writer, args ...any) error {
	return f.FormatWith(Default(), w, args...)
}

// FormatWith applies the formatter to args with an explicit configuration,
// writing the rendered text to w.
//
// If any directive of the control string calls for pretty-printing, w is
// wrapped in a pretty.Printer for the duration of the call, unless it
// already is one. Directives which need the current column position degrade
// gracefully on sinks which cannot report it (see charpos.Writer).
func (f *Formatter) FormatWith(cfg Config, w io.Writer, args ...any) error {
	sink, finish := wrapSink(w, cfg, f.needPretty, f.needCol)
	st := &state{cfg: cfg}
	// an escape signal reaching the top level just ends formatting early
	_, err := st.run(sink, f.items, NewArguments(args...))
	if err != nil {
		return err
	}
	return finish()
}

// String applies the formatter to args and returns the rendered text.
func (f *Formatter) String(args ...any) (string, error) {
	return f.StringWith(Default(), args...)
}

// StringWith applies the formatter to args with an explicit configuration
// and returns the rendered text.
func (f *Formatter) StringWith(cfg Config, args ...any) (string, error) {
	var sb strings.Builder
	if err := f.FormatWith(cfg, &sb, args...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Format compiles control and applies it to args, writing the rendered text
// to w. Callers formatting with the same control string repeatedly should
// compile it once instead.
func Format(w io.Writer, control string, args ...any) error {
	f, err := Compile(control)
	if err != nil {
		return err
	}
	return f.Format(w, args...)
}

// String compiles control, applies it to args and returns the rendered text.
func String(control string, args ...any) (string, error) {
	f, err := Compile(control)
	if err != nil {
		return "", err
	}
	return f.String(args...)
}

// StringWith is like String, with an explicit configuration.
func StringWith(cfg Config, control string, args ...any) (string, error) {
	f, err := Compile(control)
	if err != nil {
		return "", err
	}
	return f.StringWith(cfg, args...)
}

// wrapSink upgrades w to the capabilities the directives ask for: a pretty
// printer for structured rendering, or at least a column-reporting writer
// for tabulation. The returned finish function closes a self-created pretty
// printer, draining its queue.
func wrapSink(w io.Writer, cfg Config, needPretty, needCol bool) (io.Writer, func() error) {
	nop := func() error { return nil }
	if needPretty {
		if pp, ok := w.(*pretty.Printer); ok {
			return pp, nop
		}
		pp := pretty.New(w, cfg.Margin)
		pp.SetLimits(cfg.Depth, cfg.Length)
		pp.SetQuote(cfg.Escape)
		return pp, pp.Close
	}
	if needCol {
		if _, ok := w.(interface{ Column() int }); ok {
			return w, nop
		}
		return charpos.New(w), nop
	}
	return w, nop
}
