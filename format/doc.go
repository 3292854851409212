/*
Package format prints slices, matrices, chains and trees as bracket literals.

Output uses the syntax accepted by package literal, elements separated by ", ":

	[1, 2, 3]
	[[1, 2], [3, 4]]

Integers are printed in base 10, floats in the shortest form which converts back to
the same float64, texts verbatim. Printing and scanning therefore round-trip for
well-formed sequences and matrices (texts must not contain ',', ']' or surrounding
whitespace).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package format
