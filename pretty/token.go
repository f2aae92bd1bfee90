package pretty

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// BreakKind selects the behavior of a conditional newline.
type BreakKind int8

const (
	// Linear newlines break whenever their enclosing block does not fit on
	// the current line.
	Linear BreakKind = iota
	// Fill newlines break only if the material up to the next break point
	// would overflow the remaining line space.
	Fill
	// Mandatory newlines always break.
	Mandatory
)

func (k BreakKind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Fill:
		return "fill"
	case Mandatory:
		return "mandatory"
	}
	return "<unknown break kind>"
}

type tokenKind int8

const (
	tokText tokenKind = iota
	tokBegin
	tokEnd
	tokNewline
	tokIndent
)

// infinity is the resolved size of a newline token which is forced to break.
const infinity = 999999

// token is one entry of the output queue. While a begin-block or newline
// token awaits its line-break decision its size is negative, encoding the
// cumulative enqueued width at creation time; resolving adds the then-current
// cumulative width, leaving the width of the material the token governs.
type token struct {
	kind     tokenKind
	size     int
	text     string // text content, block prefix or block suffix
	perLine  bool   // tokBegin: re-emit prefix after every break in the block
	brk      BreakKind
	offset   int  // tokIndent
	relative bool // tokIndent: relative to current column instead of block start
}

// block is the print-stack state of an open logical block.
type block struct {
	prefix  string
	perLine bool
	space   int  // space remaining at block entry
	column  int  // column to indent to on a break
	fits    bool // the whole block fits on the current line
}
