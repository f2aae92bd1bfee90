package clformat

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/clformat/pretty"
)

// Config collects the printer variables which influence how directives
// render their arguments. Configurations are plain values, threaded through
// the interpreter call chain: directives which temporarily override a
// setting (~W, ~A, ~S, the radix directives) operate on a copy, so the
// previous state is restored on every exit path without further ado.
type Config struct {
	Escape bool // render strings and runes as quoted literals (~S style)
	Pretty bool // structured rendering of sequence/map arguments
	Base   int  // radix for rendering integer arguments, 10 if zero
	Margin int  // right margin for pretty-printing
	Depth  int  // logical-block nesting limit, 0 = unlimited
	Length int  // per-block element limit, 0 = unlimited
}

// Default returns the configuration used by Format and String: escaped
// scalar rendering, structured rendering enabled, decimal base, the default
// pretty-printing margin and no truncation limits.
func Default() Config {
	return Config{
		Escape: true,
		Pretty: true,
		Base:   10,
		Margin: pretty.DefaultMargin,
	}
}

func (cfg Config) base() int {
	if cfg.Base == 0 {
		return 10
	}
	return cfg.Base
}
