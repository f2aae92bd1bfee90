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
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// asciiControlChars maps ASCII control codes to their caret notation and
// their mnemonic name, selected by the colon modifier of ~C.
var asciiControlChars = map[rune][2]string{
	0: {"^@", "nul"}, 1: {"^A", "soh"}, 2: {"^B", "stx"}, 3: {"^C", "etx"},
	4: {"^D", "eot"}, 5: {"^E", "enq"}, 6: {"^F", "ack"}, 7: {"^G", "bel"},
	8: {"^H", "bs"}, 9: {"\t", "ht"}, 10: {"\n", "nl"}, 11: {"^K", "vt"},
	12: {"^L", "np"}, 13: {"^M", "cr"}, 14: {"^N", "so"}, 15: {"^O", "si"},
	16: {"^P", "dle"}, 17: {"^Q", "dc1"}, 18: {"^R", "dc2"}, 19: {"^S", "dc3"},
	20: {"^T", "dc4"}, 21: {"^U", "nak"}, 22: {"^V", "syn"}, 23: {"^W", "etb"},
	24: {"^X", "can"}, 25: {"^Y", "em"}, 26: {"^Z", "sub"}, 27: {"^[", "esc"},
	28: {"^\\", "fs"}, 29: {"^]", "gs"}, 30: {"^^", "rs"}, 31: {"^_", "us"},
	127: {"^?", "del"},
}

// character executes ~C: with at-sign the argument is written as a quoted
// character literal, otherwise verbatim, control characters by their caret
// notation or (with colon) their mnemonic name.
func (st *state) character(w io.Writer, d *directive, args *Arguments) error {
	arg, err := args.Next()
	if err != nil {
		return err
	}
	ch, ok := asRune(arg)
	if !ok {
		return d.semanticErr(fmt.Sprintf("single character expected, got %v", arg))
	}
	var s string
	switch {
	case d.atsign:
		s = strconv.QuoteRune(ch)
	case unicode.IsControl(ch):
		names, ok := asciiControlChars[ch]
		if !ok {
			return d.semanticErr(fmt.Sprintf("unprintable character %q", ch))
		}
		if d.colon {
			s = names[1]
		} else {
			s = names[0]
		}
	default:
		s = string(ch)
	}
	_, err = io.WriteString(w, s)
	return err
}

// constantChar executes ~%, ~| and ~~ when a variable or remaining-count
// parameter kept them from being folded into literal text at compile time.
func (st *state) constantChar(w io.Writer, d *directive, args *Arguments, ch string) error {
	n, err := st.intParam(d, 0, args, 1)
	if err != nil {
		return err
	}
	if n < 1 {
		return nil
	}
	_, err = io.WriteString(w, strings.Repeat(ch, n))
	return err
}

// freshLine executes ~&: one newline unless the sink already is at the start
// of a line, plus n-1 unconditional newlines. Sinks which cannot report a
// column position degrade to n unconditional newlines.
func (st *state) freshLine(w io.Writer, d *directive, args *Arguments) error {
	n, err := st.intParam(d, 0, args, 1)
	if err != nil || n < 1 {
		return err
	}
	type freshLiner interface {
		FreshLine() bool
		EndLine()
	}
	switch sink := w.(type) {
	case freshLiner:
		sink.FreshLine()
		for i := 1; i < n; i++ {
			sink.EndLine()
		}
		return nil
	case interface{ Column() int }:
		if sink.Column() == 0 {
			n--
		}
		if n > 0 {
			_, err = io.WriteString(w, strings.Repeat("\n", n))
		}
		return err
	default:
		_, err = io.WriteString(w, strings.Repeat("\n", n))
		return err
	}
}

// tabulate executes ~T: absolute column positioning, or (with at-sign)
// relative movement to the next multiple of a column increment. Sinks which
// cannot report a column position get a fixed fallback.
func (st *state) tabulate(w io.Writer, d *directive, args *Arguments) error {
	if d.colon {
		return d.semanticErr("pretty-printer tabulation not supported")
	}
	spaces := func(n int) error {
		if n < 1 {
			return nil
		}
		_, err := io.WriteString(w, strings.Repeat(" ", n))
		return err
	}
	sink, hasColumn := w.(interface{ Column() int })
	if d.atsign {
		colrel, err := st.intParam(d, 0, args, 1)
		if err != nil {
			return err
		}
		colinc, err := st.intParam(d, 1, args, 1)
		if err != nil {
			return err
		}
		if !hasColumn || colinc < 1 {
			return spaces(colrel)
		}
		cur := sink.Column()
		return spaces(colinc*ceilDiv(cur+colrel, colinc) - cur)
	}
	colnum, err := st.intParam(d, 0, args, 1)
	if err != nil {
		return err
	}
	colinc, err := st.intParam(d, 1, args, 1)
	if err != nil {
		return err
	}
	if !hasColumn {
		return spaces(2)
	}
	cur := sink.Column()
	switch {
	case cur < colnum:
		return spaces(colnum - cur)
	case colinc > 0:
		return spaces(colinc - (cur-colnum)%colinc)
	}
	return nil
}

func ceilDiv(a, b int) int {
	q, r := a/b, a%b
	if r != 0 {
		q++
	}
	return q
}

// caseConvert executes ~(...~): the body renders into a buffer, which is
// re-emitted case-converted. An escape signalled inside the body propagates
// and discards the buffered text.
func (st *state) caseConvert(w io.Writer, d *directive, args *Arguments) (signal, error) {
	var buf bytes.Buffer
	sink, finish := wrapSink(&buf, st.cfg, d.needPretty, d.needCol)
	sig, err := st.run(sink, d.body, args)
	if err != nil {
		return sigNone, err
	}
	if err = finish(); err != nil {
		return sigNone, err
	}
	if sig != sigNone {
		return sig, nil
	}
	s := buf.String()
	switch {
	case d.colon && d.atsign:
		s = cases.Upper(language.Und).String(s)
	case d.colon:
		s = cases.Title(language.Und).String(s)
	case d.atsign:
		s = capitalize(s)
	default:
		s = cases.Lower(language.Und).String(s)
	}
	if _, err := io.WriteString(w, s); err != nil {
		return sigNone, err
	}
	return sigNone, nil
}

// capitalize upcases the first letter and downcases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + cases.Lower(language.Und).String(s[size:])
}

// plural executes ~P: "s" (or, with at-sign, "y"/"ies") depending on whether
// the argument denotes exactly one. The colon modifier re-inspects the
// argument consumed by the preceding directive.
func (st *state) plural(w io.Writer, d *directive, args *Arguments) error {
	var arg any
	var err error
	if d.colon {
		arg, err = args.Peek(-1)
	} else {
		arg, err = args.Next()
	}
	if err != nil {
		return err
	}
	one := isOne(arg)
	var s string
	switch {
	case d.atsign && one:
		s = "y"
	case d.atsign:
		s = "ies"
	case one:
		s = ""
	default:
		s = "s"
	}
	_, err = io.WriteString(w, s)
	return err
}
