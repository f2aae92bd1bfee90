package clformat

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"reflect"
)

// Arguments is a cursor over a fixed sequence of format arguments:
// essentially a read-only list with a random-access, bi-directional
// iterator. Iteration directives create nested cursors over a single
// (sequence-valued) argument; such a cursor keeps a reference to its outer
// cursor, which escape directives inspect.
//
// An Arguments value is exclusively owned by the formatting call operating
// on it and must not be shared across concurrent calls.
type Arguments struct {
	args  []any
	outer *Arguments
	cur   int
}

// NewArguments creates a cursor over the given arguments, positioned at the
// first one.
func NewArguments(args ...any) *Arguments {
	return &Arguments{args: args}
}

// nested creates a cursor over a sub-sequence, remembering the enclosing
// cursor.
func nested(args []any, outer *Arguments) *Arguments {
	return &Arguments{args: args, outer: outer}
}

// Next returns the current argument and advances the cursor.
func (a *Arguments) Next() (any, error) {
	if a.cur >= len(a.args) {
		return nil, ErrNoMoreArguments
	}
	arg := a.args[a.cur]
	a.cur++
	return arg, nil
}

// Prev retreats the cursor and returns the argument it now points at.
func (a *Arguments) Prev() (any, error) {
	if a.cur == 0 {
		return nil, ErrNoMoreArguments
	}
	a.cur--
	return a.args[a.cur], nil
}

// Peek returns the argument n positions after the current one (n may be
// negative) without moving the cursor.
func (a *Arguments) Peek(n int) (any, error) {
	i := a.cur + n
	if i < 0 || i >= len(a.args) {
		return nil, ErrIndexOutOfBounds
	}
	return a.args[i], nil
}

// Goto repositions the cursor to the absolute index n.
func (a *Arguments) Goto(n int) error {
	if n < 0 || n >= len(a.args) {
		return ErrIndexOutOfBounds
	}
	a.cur = n
	return nil
}

// Remaining returns the number of arguments left to consume.
func (a *Arguments) Remaining() int {
	return len(a.args) - a.cur
}

// Empty reports whether the cursor is exhausted.
func (a *Arguments) Empty() bool {
	return a.cur >= len(a.args)
}

// Len returns the total number of arguments.
func (a *Arguments) Len() int {
	return len(a.args)
}

// Outer returns the enclosing cursor for a nested cursor, or nil.
func (a *Arguments) Outer() *Arguments {
	return a.outer
}

// asList coerces a sequence-valued argument to a []any. Arbitrary slice and
// array types are accepted, element values are boxed as needed.
func asList(v any) ([]any, bool) {
	if list, ok := v.([]any); ok {
		return list, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	list := make([]any, rv.Len())
	for i := range list {
		list[i] = rv.Index(i).Interface()
	}
	return list, true
}
