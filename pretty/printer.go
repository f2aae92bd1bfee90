package pretty

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"io"
	"strings"

	"github.com/npillmayer/clformat/charpos"
)

// DefaultMargin is the right margin used when no explicit margin is given.
const DefaultMargin = 80

// Placeholders emitted when depth or length truncation cuts off content.
const (
	DepthPlaceholder  = "#"
	LengthPlaceholder = "..."
)

// ColumnWriter is the output sink interface of the Printer: a writer which
// can report the current column position.
type ColumnWriter interface {
	io.Writer
	Column() int
}

// Printer is a pretty-printing session on top of an output writer.
//
// A Printer is exclusively owned by a single logical call stack; it must not
// be shared across concurrent calls. Text written while no logical block is
// open passes straight through to the sink. As soon as a block opens, tokens
// are buffered until the engine has seen enough lookahead to resolve the
// pending line-break decisions, and are then flushed in their original order.
type Printer struct {
	out    ColumnWriter
	margin int
	space  int    // space left on the current line
	prefix string // per-line prefix re-emitted after every break

	scan   []*token // pending begin-block and newline tokens
	queue  []*token // tokens not yet committed to the sink
	blocks []block  // open logical blocks, innermost last

	left, right int // cumulative width totals: flushed vs. enqueued

	depth     int // logical-block nesting depth
	suppress  int // >0 while contents of a depth-truncated block are dropped
	maxDepth  int
	maxLength int
	quote     bool

	closed bool
	err    error
}

// New creates a pretty-printing session writing to w with the given right
// margin. Non-positive margins select DefaultMargin. If w cannot report a
// column position it is wrapped in a charpos.Writer, starting at column 0.
func New(w io.Writer, margin int) *Printer {
	if margin <= 0 {
		margin = DefaultMargin
	}
	col := 0
	cw, ok := w.(ColumnWriter)
	if !ok {
		cw = charpos.New(w)
	} else {
		col = cw.Column()
	}
	return &Printer{out: cw, margin: margin, space: margin - col}
}

// SetLimits configures truncation: blocks nested deeper than depth render as
// a single DepthPlaceholder, and Pprint renders at most length elements per
// block before emitting a LengthPlaceholder. Zero means unlimited.
func (pp *Printer) SetLimits(depth, length int) {
	pp.maxDepth, pp.maxLength = depth, length
}

// SetQuote controls whether Pprint renders strings as quoted Go literals.
func (pp *Printer) SetQuote(on bool) {
	pp.quote = on
}

// Margin returns the configured right margin.
func (pp *Printer) Margin() int {
	return pp.margin
}

// Column returns the current column position.
func (pp *Printer) Column() int {
	return pp.margin - pp.space
}

// Begin opens a logical block. The prefix is emitted at the block's start;
// with perLine set it is additionally re-emitted after every line break
// inside the block.
func (pp *Printer) Begin(prefix string, perLine bool) {
	if pp.suppress > 0 {
		pp.suppress++
		return
	}
	if pp.maxDepth > 0 && pp.depth >= pp.maxDepth {
		pp.WriteString(DepthPlaceholder)
		pp.suppress = 1
		return
	}
	pp.depth++
	if len(pp.scan) == 0 {
		pp.left, pp.right = 1, 1
		assert(len(pp.queue) == 0, "output queue should be empty")
	}
	tok := &token{kind: tokBegin, text: prefix, perLine: perLine, size: -pp.right}
	if perLine {
		pp.prefix = prefix
	} else {
		pp.prefix = ""
	}
	pp.queue = append(pp.queue, tok)
	pp.right += charpos.StringWidth(prefix)
	pp.scan = append(pp.scan, tok)
}

// End closes the innermost open logical block, emitting the suffix. Closing
// the outermost block resolves all pending decisions and drains the queue.
func (pp *Printer) End(suffix string) {
	if pp.suppress > 0 {
		pp.suppress--
		return
	}
	pp.depth--
	tok := &token{kind: tokEnd, text: suffix}
	if len(pp.scan) == 0 {
		pp.output(tok)
		return
	}
	pp.queue = append(pp.queue, tok)
	pp.right += charpos.StringWidth(suffix)
	top := pp.scan[len(pp.scan)-1]
	pp.scan = pp.scan[:len(pp.scan)-1]
	top.size += pp.right
	if top.kind == tokNewline && len(pp.scan) > 0 {
		top = pp.scan[len(pp.scan)-1]
		pp.scan = pp.scan[:len(pp.scan)-1]
		top.size += pp.right
	}
	if len(pp.scan) == 0 {
		pp.flush()
	}
}

// Newline emits a conditional newline of the given kind.
func (pp *Printer) Newline(kind BreakKind) {
	if pp.suppress > 0 {
		return
	}
	if len(pp.scan) == 0 {
		pp.left, pp.right = 1, 1
		assert(len(pp.queue) == 0, "output queue should be empty")
	} else {
		top := pp.scan[len(pp.scan)-1]
		if top.kind == tokNewline {
			top.size += pp.right
			pp.scan = pp.scan[:len(pp.scan)-1]
		}
	}
	tok := &token{kind: tokNewline, brk: kind, size: -pp.right}
	pp.queue = append(pp.queue, tok)
	pp.scan = append(pp.scan, tok)
}

// Indent adjusts the column that line breaks inside the current block indent
// to. With relative set the new column is offset from the current column,
// otherwise offset from the block's start column.
func (pp *Printer) Indent(offset int, relative bool) {
	if pp.suppress > 0 {
		return
	}
	tok := &token{kind: tokIndent, offset: offset, relative: relative}
	if len(pp.scan) == 0 {
		pp.output(tok)
		return
	}
	pp.queue = append(pp.queue, tok)
}

// Write writes p, deferring output while line-break decisions are pending.
// Part of interface io.Writer.
func (pp *Printer) Write(p []byte) (int, error) {
	return pp.WriteString(string(p))
}

// WriteString writes s, deferring output while line-break decisions are
// pending. Whenever the buffered material can no longer fit on the current
// line, the oldest pending token is forced to break and the queue drains up
// to the next pending one.
func (pp *Printer) WriteString(s string) (int, error) {
	if pp.suppress > 0 {
		return len(s), nil
	}
	l := charpos.StringWidth(s)
	if len(pp.scan) == 0 {
		pp.write(s)
		return len(s), pp.err
	}
	if last := pp.queue[len(pp.queue)-1]; last.kind == tokText {
		last.text += s
		last.size += l
	} else {
		pp.queue = append(pp.queue, &token{kind: tokText, text: s, size: l})
	}
	pp.right += l
	for len(pp.scan) > 0 && pp.right-pp.left > pp.space {
		pp.scan[0].size = infinity
		pp.scan = pp.scan[1:]
		pp.flush()
	}
	return len(s), pp.err
}

// Close resolves conditional newlines still pending at the end of the
// session, drains the queue and marks the session closed. A begin-block token
// left on the scan stack indicates unbalanced Begin/End emission and triggers
// an assertion panic. Close returns the first write error encountered during
// the session, if any.
func (pp *Printer) Close() error {
	if pp.closed {
		return pp.err
	}
	for _, tok := range pp.scan {
		assert(tok.kind == tokNewline, "unclosed logical block")
		tok.size += pp.right
	}
	pp.scan = pp.scan[:0]
	pp.flush()
	assert(len(pp.queue) == 0, "leftover items in output queue")
	assert(len(pp.blocks) == 0, "leftover items on print stack")
	pp.closed = true
	return pp.err
}

// flush outputs queue entries from the front until the first one whose
// line-break decision is still pending.
func (pp *Printer) flush() {
	i, total := 0, 0
	for i < len(pp.queue) {
		q := pp.queue[i]
		if q.size < 0 {
			break
		}
		pp.output(q)
		total += q.size
		i++
	}
	if i > 0 {
		pp.queue = append([]*token{}, pp.queue[i:]...)
		pp.left += total
	}
}

// output commits a single resolved token to the sink.
func (pp *Printer) output(tok *token) {
	switch tok.kind {
	case tokText:
		pp.write(tok.text)
	case tokBegin:
		if tok.text != "" {
			pp.write(tok.text)
		}
		pp.blocks = append(pp.blocks, block{
			prefix:  tok.text,
			perLine: tok.perLine,
			space:   pp.space,
			column:  pp.Column(),
			fits:    tok.size <= pp.space,
		})
	case tokEnd:
		if tok.text != "" {
			pp.write(tok.text)
		}
		if len(pp.blocks) > 0 {
			pp.blocks = pp.blocks[:len(pp.blocks)-1]
		}
	case tokNewline:
		b := block{fits: true} // no open block: only mandatory breaks apply
		if len(pp.blocks) > 0 {
			b = pp.blocks[len(pp.blocks)-1]
		}
		switch tok.brk {
		case Mandatory:
			pp.breakLine(b.column)
		case Linear:
			if !b.fits {
				pp.breakLine(b.column)
			}
		case Fill:
			if !b.fits && tok.size > pp.space {
				pp.breakLine(b.column)
			}
		}
	case tokIndent:
		if len(pp.blocks) == 0 {
			return
		}
		b := &pp.blocks[len(pp.blocks)-1]
		base := b.space
		if tok.relative {
			base = pp.space
		}
		pl := 0
		if b.perLine {
			pl = charpos.StringWidth(b.prefix)
		}
		b.column = pp.margin - (base + pl - tok.offset)
	}
}

// breakLine terminates the current line and indents to the given column.
func (pp *Printer) breakLine(col int) {
	pp.endLine()
	if col > 0 {
		pp.write(strings.Repeat(" ", col))
	}
}

// write sends s to the sink, keeping track of the remaining line space and
// handling embedded newlines.
func (pp *Printer) write(s string) {
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			break
		}
		pp.rawWrite(s[:i])
		pp.endLine()
		s = s[i+1:]
	}
	pp.rawWrite(s)
	pp.space -= charpos.StringWidth(s)
}

func (pp *Printer) endLine() {
	pp.rawWrite("\n")
	if pp.prefix != "" {
		pp.rawWrite(pp.prefix)
	}
	pp.space = pp.margin - charpos.StringWidth(pp.prefix)
}

func (pp *Printer) rawWrite(s string) {
	if s == "" {
		return
	}
	if _, err := io.WriteString(pp.out, s); err != nil && pp.err == nil {
		tracer().Errorf("pretty: cannot write to sink: %v", err)
		pp.err = err
	}
}
