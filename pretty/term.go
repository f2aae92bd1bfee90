package pretty

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"golang.org/x/term"
)

// MarginFromTerminal is a simple helper for choosing a right margin. It
// checks wether stdout is a terminal, and if so it derives the margin from
// the terminal's width, leaving a bit of slack on wide terminals. Otherwise
// DefaultMargin is returned.
func MarginFromTerminal() int {
	margin := DefaultMargin
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err == nil {
			if w > 65 {
				margin = w - 10
			} else if w > 30 {
				margin = w - 5
			} else if w > 10 {
				margin = w
			} else {
				margin = 10
			}
		}
	}
	tracer().P("format", "pretty").Infof("setting right margin to %d en", margin)
	return margin
}
