package clformat

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// compile parses a control string into a sequence of literal spans and
// directive nodes. All structural validation happens here: parameter grammar,
// modifier legality, clause counts and nesting of delimited directives.
// Formatting a successfully compiled control string can still fail, but only
// for argument-related reasons.
func compile(control string) ([]item, error) {
	p := parser{control: control}
	items, term, err := p.parseSequence(opNone, false)
	if err != nil {
		return nil, err
	}
	assertThat(term == nil, "parser returned a terminator at top level")
	return items, nil
}

// parser scans a control string left to right. Delimited directives recurse
// into parseSequence; iters carries the colon flags of the currently open
// iteration directives, innermost last, for validating ~:^.
type parser struct {
	control string
	pos     int
	iters   []bool
}

func (p *parser) syntaxError(offset int, msg string) error {
	return &SyntaxError{Control: p.control, Offset: offset, Msg: msg}
}

// parseSequence parses items until the end of the control string, a closing
// directive of kind closer, or (with sepOK) a clause separator. The
// terminating directive is returned alongside the items; nil at the end of
// the string.
func (p *parser) parseSequence(closer opcode, sepOK bool) ([]item, *directive, error) {
	var items []item
	for p.pos < len(p.control) {
		tilde := strings.IndexByte(p.control[p.pos:], '~')
		if tilde < 0 {
			items = appendLiteral(items, p.control[p.pos:])
			p.pos = len(p.control)
			break
		}
		if tilde > 0 {
			items = appendLiteral(items, p.control[p.pos:p.pos+tilde])
			p.pos += tilde
		}
		d, spec, err := p.parseDirective()
		if err != nil {
			return nil, nil, err
		}
		switch {
		case closer != opNone && d.op == closer:
			return items, d, nil
		case d.op == opSeparator:
			if !sepOK {
				return nil, nil, p.syntaxError(d.start, "~; not permitted here")
			}
			return items, d, nil
		case isCloser(d.op):
			return nil, nil, p.syntaxError(d.start, "unmatched closing directive")
		}
		if spec.delimited() {
			if err := p.parseDelimited(d, spec); err != nil {
				return nil, nil, err
			}
			items = append(items, d)
			continue
		}
		if s, ok := foldConstant(d); ok {
			items = appendLiteral(items, s)
			continue
		}
		items = append(items, d)
	}
	return items, nil, nil
}

// parseDelimited parses the clauses of a delimited directive up to and
// including its closing directive, then validates the clause structure.
func (p *parser) parseDelimited(d *directive, spec dirSpec) error {
	if d.op == opIteration {
		p.iters = append(p.iters, d.colon)
		defer func() { p.iters = p.iters[:len(p.iters)-1] }()
	}
	sepOK := d.op == opConditional || d.op == opJustification
	for {
		items, term, err := p.parseSequence(spec.closer, sepOK)
		if err != nil {
			return err
		}
		if term == nil {
			return p.syntaxError(d.start, "unterminated "+d.source())
		}
		d.clauses = append(d.clauses, items)
		if term.op == opSeparator {
			d.separators = append(d.separators, term)
			continue
		}
		d.closer = term
		break
	}
	d.end = d.closer.end
	return p.finishDelimited(d)
}

// finishDelimited runs the per-kind clause validation once the closing
// directive has been seen, and aggregates the sink requirements of the
// clause bodies.
func (p *parser) finishDelimited(d *directive) error {
	switch d.op {
	case opConditional:
		switch {
		case d.colon:
			if len(d.clauses) != 2 {
				return p.syntaxError(d.start, "~:[ requires exactly two clauses")
			}
		case d.atsign:
			if len(d.clauses) != 1 {
				return p.syntaxError(d.start, "~@[ permits only one clause")
			}
		default:
			for _, sep := range d.separators[:maxInt(len(d.separators)-1, 0)] {
				if sep.colon {
					return p.syntaxError(sep.start, "only the last ~; may have a colon")
				}
			}
		}
	case opCaseConversion:
		d.body = d.clauses[0]
	case opIteration:
		d.body = d.clauses[0]
	case opJustification:
		if d.closer.colon {
			if err := p.finishLogicalBlock(d); err != nil {
				return err
			}
		}
	}

	for _, clause := range d.clauses {
		for _, it := range clause {
			if dd, ok := it.(*directive); ok {
				d.needPretty = d.needPretty || dd.needPretty
				d.needCol = d.needCol || dd.needCol
			}
		}
	}
	if d.op == opIteration && len(d.body) == 0 {
		// the body arrives as an argument at run time, be prepared
		d.needPretty = true
	}
	if d.logical {
		d.needPretty = true
	}
	d.needCol = d.needCol || d.needPretty
	return nil
}

// finishLogicalBlock maps the clauses of a ~<...~:> directive onto prefix,
// body and suffix. Prefix and suffix clauses must consist of a single literal
// span. The colon modifier supplies default brackets.
func (p *parser) finishLogicalBlock(d *directive) error {
	d.logical = true
	if d.colon {
		d.prefix, d.suffix = "[", "]"
	}
	single := func(clause []item) (string, bool) {
		if len(clause) != 1 {
			return "", false
		}
		lit, ok := clause[0].(literal)
		return string(lit), ok
	}
	switch len(d.clauses) {
	case 1:
		d.body = d.clauses[0]
	case 2, 3:
		prefix, ok := single(d.clauses[0])
		if !ok {
			return p.syntaxError(d.start, "logical block prefix must be literal text")
		}
		d.prefix = prefix
		d.body = d.clauses[1]
		if len(d.clauses) == 3 {
			suffix, ok := single(d.clauses[2])
			if !ok {
				return p.syntaxError(d.start, "logical block suffix must be literal text")
			}
			d.suffix = suffix
		}
	default:
		return p.syntaxError(d.start, "too many clauses for ~<...~:>")
	}
	return nil
}

// parseDirective parses one directive at the current position, which must be
// a tilde: parameters, modifiers and the selector character.
func (p *parser) parseDirective() (*directive, dirSpec, error) {
	start := p.pos
	p.pos++ // the tilde

	params, err := p.parseParams()
	if err != nil {
		return nil, dirSpec{}, err
	}

	colon, atsign := false, false
	for p.pos < len(p.control) {
		switch p.control[p.pos] {
		case ':':
			if colon {
				return nil, dirSpec{}, p.syntaxError(p.pos, "duplicate colon modifier")
			}
			colon = true
			p.pos++
			continue
		case '@':
			if atsign {
				return nil, dirSpec{}, p.syntaxError(p.pos, "duplicate at-sign modifier")
			}
			atsign = true
			p.pos++
			continue
		}
		break
	}

	if p.pos >= len(p.control) {
		return nil, dirSpec{}, p.syntaxError(p.pos, "incomplete format directive")
	}
	selector, size := utf8.DecodeRuneInString(p.control[p.pos:])
	selAt := p.pos
	p.pos += size
	spec, ok := registry[unicode.ToUpper(selector)]
	if !ok {
		return nil, dirSpec{}, p.syntaxError(selAt, "unknown format directive")
	}

	switch {
	case colon && atsign:
		if spec.modifiers&modBoth == 0 {
			return nil, dirSpec{}, p.syntaxError(selAt, "cannot specify both colon and at-sign")
		}
	case colon:
		if spec.modifiers&modColon == 0 {
			return nil, dirSpec{}, p.syntaxError(selAt, "colon not allowed for this directive")
		}
	case atsign:
		if spec.modifiers&modAtsign == 0 {
			return nil, dirSpec{}, p.syntaxError(selAt, "at-sign not allowed for this directive")
		}
	}
	if len(params) > spec.maxParams {
		return nil, dirSpec{}, p.syntaxError(selAt, "too many parameters for this directive")
	}
	if spec.op == opEscape && colon {
		if len(p.iters) == 0 || !p.iters[len(p.iters)-1] {
			return nil, dirSpec{}, p.syntaxError(start, "~:^ requires an enclosing ~:{...~} construct")
		}
	}

	d := &directive{
		op:         spec.op,
		params:     params,
		colon:      colon,
		atsign:     atsign,
		start:      start,
		end:        p.pos,
		control:    p.control,
		needCol:    spec.needCol,
		needPretty: spec.needPretty,
	}
	return d, spec, nil
}

// parseParams parses the comma-separated prefix parameter list.
func (p *parser) parseParams() ([]param, error) {
	var params []param
	control := p.control
	comma := func() {
		if p.pos < len(control) && control[p.pos] == ',' {
			p.pos++
		}
	}
	for p.pos < len(control) {
		switch c := control[p.pos]; {
		case c == ',':
			params = append(params, param{kind: paramAbsent})
			p.pos++
		case c == '+' || c == '-' || isDigit(c):
			mark := p.pos
			if c == '+' || c == '-' {
				p.pos++
			}
			digits := p.pos
			for p.pos < len(control) && isDigit(control[p.pos]) {
				p.pos++
			}
			if p.pos == digits {
				return nil, p.syntaxError(mark, "malformed numeric parameter")
			}
			n := 0
			for _, d := range control[digits:p.pos] {
				n = n*10 + int(d-'0')
			}
			if c == '-' {
				n = -n
			}
			params = append(params, param{kind: paramInt, num: n})
			comma()
		case c == '\'':
			if p.pos+1 >= len(control) {
				return nil, p.syntaxError(p.pos, "incomplete character parameter")
			}
			r, size := utf8.DecodeRuneInString(control[p.pos+1:])
			params = append(params, param{kind: paramChar, ch: r})
			p.pos += 1 + size
			comma()
		case c == 'V' || c == 'v':
			params = append(params, param{kind: paramArg})
			p.pos++
			comma()
		case c == '#':
			params = append(params, param{kind: paramRemaining})
			p.pos++
			comma()
		default:
			return params, nil
		}
	}
	return params, nil
}

// foldConstant turns constant-character directives (~%, ~|, ~~) with literal
// parameters into plain text at compile time. Directives with V or #
// parameters keep their run-time behavior.
func foldConstant(d *directive) (string, bool) {
	var ch string
	switch d.op {
	case opNewline:
		ch = "\n"
	case opPage:
		ch = "\f"
	case opTilde:
		ch = "~"
	default:
		return "", false
	}
	if len(d.params) == 0 {
		return ch, true
	}
	switch d.params[0].kind {
	case paramAbsent:
		return ch, true
	case paramInt:
		n := d.params[0].num
		if n < 0 {
			n = 0
		}
		return strings.Repeat(ch, n), true
	}
	return "", false
}

func appendLiteral(items []item, s string) []item {
	if s == "" {
		return items
	}
	if n := len(items); n > 0 {
		if lit, ok := items[n-1].(literal); ok {
			items[n-1] = lit + literal(s)
			return items
		}
	}
	return append(items, literal(s))
}

func isCloser(op opcode) bool {
	switch op {
	case opEndConditional, opEndIteration, opEndJustification, opEndCaseConversion:
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func assertThat(condition bool, msg string) {
	if !condition {
		panic("clformat: internal error: " + msg)
	}
}
