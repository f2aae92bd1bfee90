package clformat

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
)

// goTo executes ~*: repositioning of the argument cursor. With at-sign the
// cursor seeks to an absolute index, otherwise it skips forward (or, with
// colon, backward) over a number of arguments.
func (st *state) goTo(d *directive, args *Arguments) error {
	if d.atsign {
		n, err := st.intParam(d, 0, args, 0)
		if err != nil {
			return err
		}
		return args.Goto(n)
	}
	n, err := st.intParam(d, 0, args, 1)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if d.colon {
			_, err = args.Prev()
		} else {
			_, err = args.Next()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// conditional executes ~[...~]: clause selection by argument index, by
// truthiness (colon), or conditional consumption (at-sign).
func (st *state) conditional(w io.Writer, d *directive, args *Arguments) (signal, error) {
	switch {
	case d.colon:
		// ~:[ALTERNATIVE~;CONSEQUENT~] selects by truthiness
		arg, err := args.Next()
		if err != nil {
			return sigNone, err
		}
		clause := d.clauses[0]
		if isTrue(arg) {
			clause = d.clauses[1]
		}
		return st.run(w, clause, args)
	case d.atsign:
		// ~@[CONSEQUENT~] peeks: a true argument is left for the clause
		// body to consume, a false one is consumed and discarded
		arg, err := args.Peek(0)
		if err != nil {
			return sigNone, err
		}
		if isTrue(arg) {
			return st.run(w, d.clauses[0], args)
		}
		_, err = args.Next()
		return sigNone, err
	default:
		n, err := st.intParam(d, 0, args, -1)
		if err != nil {
			return sigNone, err
		}
		if len(d.params) == 0 {
			arg, err := args.Next()
			if err != nil {
				return sigNone, err
			}
			i, ok := asInt(arg)
			if !ok {
				return sigNone, d.semanticErr(fmt.Sprintf("integer argument expected, got %T", arg))
			}
			n = i
		}
		if n >= 0 && n < len(d.clauses) {
			return st.run(w, d.clauses[n], args)
		}
		if len(d.separators) > 0 && d.separators[len(d.separators)-1].colon {
			// out-of-range index falls through to the else clause
			return st.run(w, d.clauses[len(d.clauses)-1], args)
		}
		return sigNone, nil
	}
}

// iterate executes ~{...~}: repetition of a body over successive argument
// groups. An empty body is taken from the next argument as a control string.
func (st *state) iterate(w io.Writer, d *directive, args *Arguments) (signal, error) {
	limit, err := st.intParam(d, 0, args, -1)
	if err != nil {
		return sigNone, err
	}
	body := d.body
	if len(body) == 0 {
		arg, err := args.Next()
		if err != nil {
			return sigNone, err
		}
		control, ok := arg.(string)
		if !ok {
			return sigNone, d.semanticErr(fmt.Sprintf("control string argument expected, got %T", arg))
		}
		if body, err = compile(control); err != nil {
			return sigNone, err
		}
	}
	loopArgs := args
	if !d.atsign {
		arg, err := args.Next()
		if err != nil {
			return sigNone, err
		}
		list, ok := asList(arg)
		if !ok {
			return sigNone, d.semanticErr(fmt.Sprintf("sequence argument expected, got %T", arg))
		}
		loopArgs = nested(list, args)
	}
	// a colon-flagged closer forces at least one repetition
	for i := 0; !loopArgs.Empty() || (i == 0 && d.closer.colon); i++ {
		if i == limit {
			break
		}
		bodyArgs := loopArgs
		if d.colon {
			arg, err := loopArgs.Next()
			if err != nil {
				return sigNone, err
			}
			list, ok := asList(arg)
			if !ok {
				return sigNone, d.semanticErr(fmt.Sprintf("sequence argument expected, got %T", arg))
			}
			bodyArgs = nested(list, loopArgs)
		}
		sig, err := st.run(w, body, bodyArgs)
		if err != nil {
			return sigNone, err
		}
		if sig == sigUpUp {
			break
		}
		if sig == sigUp && !d.colon {
			break
		}
		// in a sublist iteration sigUp only ends the current sublist
	}
	return sigNone, nil
}

// recurse executes ~?: the next argument is a control string, formatted
// immediately against either the enclosing cursor (at-sign) or a nested
// cursor over the argument after that.
func (st *state) recurse(w io.Writer, d *directive, args *Arguments) (signal, error) {
	arg, err := args.Next()
	if err != nil {
		return sigNone, err
	}
	control, ok := arg.(string)
	if !ok {
		return sigNone, d.semanticErr(fmt.Sprintf("control string argument expected, got %T", arg))
	}
	items, err := compile(control)
	if err != nil {
		return sigNone, err
	}
	sub := args
	if !d.atsign {
		arg, err := args.Next()
		if err != nil {
			return sigNone, err
		}
		list, ok := asList(arg)
		if !ok {
			return sigNone, d.semanticErr(fmt.Sprintf("sequence argument expected, got %T", arg))
		}
		sub = nested(list, args)
	}
	return st.run(w, items, sub)
}

// escape executes ~^: early termination of the enclosing repetition. With
// parameters the termination condition is a test over one to three values;
// without, the relevant cursor being exhausted.
func (st *state) escape(d *directive, args *Arguments) (signal, error) {
	sig := sigUp
	if d.colon {
		sig = sigUpUp
	}
	if len(d.params) == 0 {
		cursor := args
		if d.colon {
			if cursor = args.Outer(); cursor == nil {
				return sigNone, d.semanticErr("~:^ outside of a nested argument scope")
			}
		}
		if cursor.Empty() {
			return sig, nil
		}
		return sigNone, nil
	}
	v1, ok1, err := st.paramValue(d, 0, args)
	if err != nil {
		return sigNone, err
	}
	v2, ok2, err := st.paramValue(d, 1, args)
	if err != nil {
		return sigNone, err
	}
	v3, ok3, err := st.paramValue(d, 2, args)
	if err != nil {
		return sigNone, err
	}
	p1, _ := asInt(v1)
	p2, _ := asInt(v2)
	p3, _ := asInt(v3)
	// every applicable test may stop the iteration
	stop := (ok3 && p1 <= p2 && p2 <= p3) ||
		(ok2 && p1 == p2) ||
		(ok1 && p1 == 0)
	if stop {
		return sig, nil
	}
	return sigNone, nil
}
