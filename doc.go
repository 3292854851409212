/*
Package brack converts bracket literals into Go data structures and back.

Brack strives to be a small and dependable helper for programming exercises,
where input arrives as text like

	[1, 2, 3]
	[[1,2],[3,4],[5,6]]

and has to be turned into slices, linked lists or binary trees. Package structure is
as follows:

■ literal: Package literal scans one- and two-dimensional bracket literals into
typed slices. Malformed numeric tokens are dropped and reported as diagnostics.

■ chain: Package chain builds singly and doubly linked lists from slices.

■ tree: Package tree builds level-order-complete binary trees from slices and
traverses them in-order, pre-order, post-order or level-order.

■ format: Package format prints all of the above in the literal syntax accepted by
package literal.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package brack
