package clformat

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// opcode enumerates the closed set of directive kinds. The interpreter
// switches over opcodes exhaustively; there is no way to extend the set at
// run time.
type opcode int8

const (
	opNone opcode = iota
	opCharacter
	opNewline
	opFreshLine
	opPage
	opTilde
	opRadix
	opDecimal
	opBinary
	opOctal
	opHexadecimal
	opAesthetic
	opStandard
	opWrite
	opCondNewline
	opIndentation
	opTabulate
	opJustification
	opEndJustification
	opGoTo
	opConditional
	opEndConditional
	opIteration
	opEndIteration
	opRecursive
	opCaseConversion
	opEndCaseConversion
	opPlural
	opSeparator
	opEscape
)

// paramKind discriminates directive prefix parameters.
type paramKind int8

const (
	paramAbsent    paramKind = iota // bare comma, use the directive's default
	paramInt                        // integer literal
	paramChar                       // character literal ('x)
	paramArg                        // V: take the next argument as the value
	paramRemaining                  // #: the count of remaining arguments
)

// param is one prefix parameter of a directive. Parameters are positional,
// so "~,,4D" carries two absent parameters before the integer one.
type param struct {
	kind paramKind
	num  int
	ch   rune
}

// modifier legality bits. A directive carrying both flags at once needs
// modBoth; carrying a single flag needs the respective single bit.
const (
	modColon uint8 = 1 << iota
	modAtsign
	modBoth
	modAll = modColon | modAtsign | modBoth
)

// dirSpec is the compile-time description of a directive kind.
type dirSpec struct {
	op         opcode
	modifiers  uint8
	maxParams  int
	closer     opcode // for delimited directives: the terminator kind
	needCol    bool   // needs a column-reporting sink
	needPretty bool   // needs a pretty-printing sink
}

func (spec dirSpec) delimited() bool {
	return spec.closer != opNone
}

// registry maps directive selector characters (uppercase) to their specs.
// The selector lookup is case-insensitive.
var registry = map[rune]dirSpec{
	'C': {op: opCharacter, modifiers: modAll},
	'%': {op: opNewline, maxParams: 1},
	'&': {op: opFreshLine, maxParams: 1, needCol: true},
	'|': {op: opPage, maxParams: 1},
	'~': {op: opTilde, maxParams: 1},
	'R': {op: opRadix, modifiers: modAll, maxParams: 5},
	'D': {op: opDecimal, modifiers: modAll, maxParams: 4},
	'B': {op: opBinary, modifiers: modAll, maxParams: 4},
	'O': {op: opOctal, modifiers: modAll, maxParams: 4},
	'X': {op: opHexadecimal, modifiers: modAll, maxParams: 4},
	'A': {op: opAesthetic, modifiers: modAll, maxParams: 4, needPretty: true},
	'S': {op: opStandard, modifiers: modAll, maxParams: 4, needPretty: true},
	'W': {op: opWrite, modifiers: modAll, needPretty: true},
	'_': {op: opCondNewline, modifiers: modAll, needPretty: true},
	'I': {op: opIndentation, modifiers: modColon, maxParams: 1, needPretty: true},
	'T': {op: opTabulate, modifiers: modAll, maxParams: 2, needCol: true},
	'<': {op: opJustification, modifiers: modAll, closer: opEndJustification},
	'>': {op: opEndJustification, modifiers: modColon},
	'*': {op: opGoTo, modifiers: modAll, maxParams: 1},
	'[': {op: opConditional, modifiers: modAll, maxParams: 1, closer: opEndConditional},
	']': {op: opEndConditional},
	'{': {op: opIteration, modifiers: modAll, maxParams: 1, closer: opEndIteration},
	'}': {op: opEndIteration, modifiers: modColon},
	'?': {op: opRecursive, modifiers: modAtsign, needCol: true, needPretty: true},
	'(': {op: opCaseConversion, modifiers: modAll, closer: opEndCaseConversion},
	')': {op: opEndCaseConversion},
	'P': {op: opPlural, modifiers: modAll},
	';': {op: opSeparator, modifiers: modColon},
	'^': {op: opEscape, modifiers: modColon, maxParams: 3},
}

// item is one element of a compiled directive sequence: either a literal
// text span or a directive node.
type item interface {
	isItem()
}

// literal is a span of text emitted verbatim.
type literal string

func (literal) isItem() {}

// directive is a compiled directive node. For delimited directives the
// clauses, separators and closer are filled in during parsing; for the
// shared justification/logical-block syntax the logical flag discriminates
// the two behaviors once the closer has been seen.
type directive struct {
	op         opcode
	params     []param
	colon      bool
	atsign     bool
	start, end int    // source span within the control string
	control    string // the control string, for diagnostics

	clauses    [][]item
	separators []*directive
	closer     *directive

	// logical-block fields, set when a justification closes with ~:>
	logical bool
	prefix  string
	suffix  string
	body    []item

	needCol    bool
	needPretty bool
}

func (*directive) isItem() {}

// source returns the source text of the directive, including its clauses.
func (d *directive) source() string {
	if d.start < 0 || d.end > len(d.control) || d.start > d.end {
		return ""
	}
	return d.control[d.start:d.end]
}

// semanticErr builds a SemanticError pointing at this directive.
func (d *directive) semanticErr(msg string) *SemanticError {
	return &SemanticError{Directive: d.source(), Msg: msg}
}
