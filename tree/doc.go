/*
Package tree builds binary trees from slices and traverses them.

Build creates the level-order-complete binary tree for a slice: the element at
index 0 is the root, the children of index i are at indices 2i+1 and 2i+2, and
nodes are filled in breadth-first without gaps. BuildSparse does the same for
slices with absent entries, as used for LeetCode-style tree literals like
[1,null,2,3].

Traversals (in-order, pre-order, post-order and level-order) return the
elements of a tree as a slice. They are implemented with an explicit work
stack or queue, so the depth of a tree is not limited by the goroutine stack.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'brack.tree'.
func tracer() tracing.Trace {
	return tracing.Select("brack.tree")
}
