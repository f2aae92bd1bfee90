package charpos

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"io"
	"strings"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// StringWidth returns the display width of s in fixed-width cells, measured
// against uax11.LatinContext.
func StringWidth(s string) int {
	if s == "" { // grapheme.StringFromString cannot handle empty input
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), uax11.LatinContext)
}

// Writer wraps an io.Writer and tracks the current column position.
//
// A Writer created by
//
//	charpos.New(w)
//
// starts at column 0 and measures widths against uax11.LatinContext.
type Writer struct {
	w   io.Writer
	col int
	ctx *uax11.Context
}

// New wraps w in a column-tracking writer.
func New(w io.Writer) *Writer {
	return &Writer{w: w, ctx: uax11.LatinContext}
}

// SetContext sets the UAX#11 context used for width calculations.
// A nil context selects uax11.LatinContext.
func (cw *Writer) SetContext(ctx *uax11.Context) {
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	cw.ctx = ctx
}

// Width returns the display width of s in fixed-width cells.
func (cw *Writer) Width(s string) int {
	if s == "" { // grapheme.StringFromString cannot handle empty input
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), cw.ctx)
}

// Write writes p to the underlying writer, updating the column position.
func (cw *Writer) Write(p []byte) (int, error) {
	return cw.WriteString(string(p))
}

// WriteString writes s to the underlying writer, updating the column position.
func (cw *Writer) WriteString(s string) (int, error) {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		cw.col = cw.Width(s[i+1:])
	} else {
		cw.col += cw.Width(s)
	}
	return io.WriteString(cw.w, s)
}

// Column returns the current column position, 0 denoting the start of a line.
func (cw *Writer) Column() int {
	return cw.col
}

// EndLine terminates the current line.
func (cw *Writer) EndLine() {
	if _, err := io.WriteString(cw.w, "\n"); err != nil {
		tracer().Errorf("charpos: cannot write to sink: %v", err)
	}
	cw.col = 0
}

// FreshLine terminates the current line unless the writer already is at the
// start of a line. It reports whether a newline has been written.
func (cw *Writer) FreshLine() bool {
	if cw.col > 0 {
		cw.EndLine()
		return true
	}
	return false
}
