package clformat

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// FormatError is an error type for the clformat module.
type FormatError string

func (e FormatError) Error() string {
	return string(e)
}

// ErrNoMoreArguments is flagged whenever a directive tries to consume an
// argument from an exhausted argument cursor.
const ErrNoMoreArguments = FormatError("no more format arguments")

// ErrIndexOutOfBounds is flagged whenever an argument index lies outside of
// the argument sequence.
const ErrIndexOutOfBounds = FormatError("argument index out of bounds")

// SyntaxError describes a malformed control string: bad parameter syntax, an
// unknown directive selector, an illegal modifier combination, or an
// unterminated delimited directive. It is reported at compile time, never at
// execution time.
type SyntaxError struct {
	Control string // the complete control string
	Offset  int    // byte offset of the offending character
	Msg     string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Msg, e.Offset)
}

var caretColor = color.New(color.FgRed, color.Bold)

// Diagnostic returns a multi-line caret diagnostic pointing at the offending
// position of the control string:
//
//	unknown format directive
//	"~A and ~Q"
//	         ^
//
// The caret is colorized when the output supports it (see package
// github.com/fatih/color for how colorization is suppressed).
func (e *SyntaxError) Diagnostic() string {
	var sb strings.Builder
	sb.WriteString(e.Msg)
	sb.WriteString("\n\"")
	sb.WriteString(e.Control)
	sb.WriteString("\"\n")
	col := e.Offset
	if col > len(e.Control) {
		col = len(e.Control)
	}
	sb.WriteString(strings.Repeat(" ", col+1))
	sb.WriteString(caretColor.Sprint("^"))
	return sb.String()
}

// SemanticError describes a control string which is structurally valid but
// contextually wrong: a wrong clause count, an escape used outside of a
// qualifying iteration, or an argument of an unusable type.
type SemanticError struct {
	Directive string // source text of the offending directive, may be empty
	Msg       string
}

func (e *SemanticError) Error() string {
	if e.Directive == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s in %q", e.Msg, e.Directive)
}
