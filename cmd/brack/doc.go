/*
Command brack converts bracket literals read from standard input.

Every non-empty input line is scanned as a literal of the chosen element kind,
converted into the chosen structure and printed again in literal syntax:

	echo "[1,2,3,4,5]" | brack -as tree -order preorder
	[1, 2, 4, 5, 3]

	echo "[[1,2,3],[4,5,6],[7,8,9]]" | brack -as matrix -rotate
	[[7, 4, 1], [8, 5, 2], [9, 6, 3]]

If standard input is a terminal, brack starts an interactive session instead.
Lines starting with ':' change settings there, e.g. ":as tree", ":kind text",
":order postorder", ":shape on"; ":quit" or <ctrl>D ends the session.

Flags:

	-kind    int | float | text                       (default int)
	-as      seq | matrix | chain | dchain | tree     (default seq)
	-order   inorder | preorder | postorder | levelorder
	-sparse  trees may contain null entries
	-rotate  rotate a square matrix by 90° clockwise
	-shape   draw trees on the terminal
	-trace   Debug | Info | Error, overrides configured trace levels

Configuration is read from a NestedText file, if present, e.g.
~/.config/brack/config.nt:

	sparse-trees: true
	tracelevel:
	    brack.literal: Debug

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'brack.cmd'
func tracer() tracing.Trace {
	return tracing.Select("brack.cmd")
}
