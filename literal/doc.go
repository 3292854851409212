/*
Package literal scans bracket literals into typed Go slices.

A one-dimensional literal looks like

	[1, -2, 3.5]
	[apple, banana split, cherry]

and a two-dimensional literal (matrix) joins rows with the boundary "],[":

	[[1,2],[3,4],[5,6]]

Scanning is lenient. Commas, brackets and whitespace separate tokens; outer brackets
may be present or already stripped, doubled commas are skipped. For numeric element
kinds, a token which does not convert to the target type ("x", "12a", "1.5" for
integers) is dropped from the result and reported as a Diagnostic. Text tokens
extend up to the next ',' or ']' and are trimmed of surrounding whitespace.

Element kinds are selected with a Codec. Codecs for int64, float64 and string are
pre-defined:

	ints, diags := literal.Parse("[1, x, 3]", literal.Ints)   // [1 3], one diagnostic
	m, _, err := literal.ParseMatrix("[[a,b],[c]]", literal.Texts)

Numeric literals are tokenized by a DFA generated with lexmachine; text literals are
tokenized by a small rune-category reader.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package literal

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'brack.literal'.
func tracer() tracing.Trace {
	return tracing.Select("brack.literal")
}
