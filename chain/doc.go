/*
Package chain builds linked lists from slices.

A singly linked chain is identified by its head node, a doubly linked chain as well.
The empty chain is nil. In a doubly linked chain, Next links own the nodes of the
chain, whereas Prev links are back references only: they are the exact inverse of
the Next links and never form a second path of ownership.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chain
