package chain

// DoubleNode is a node of a doubly linked chain. Prev is a back reference to
// the predecessor and is nil for the head.
type DoubleNode[T any] struct {
	Val  T
	Next *DoubleNode[T]
	Prev *DoubleNode[T]
}

// DoubleFromSlice builds a doubly linked chain holding the elements of s in order.
// It returns the head of the chain, or nil for an empty slice.
func DoubleFromSlice[T any](s []T) *DoubleNode[T] {
	var head, tail *DoubleNode[T]
	for _, v := range s {
		n := &DoubleNode[T]{Val: v}
		if head == nil {
			head = n
		} else {
			tail.Next = n
			n.Prev = tail
		}
		tail = n
	}
	return head
}

// Len returns the number of nodes from n to the end of the chain.
func (n *DoubleNode[T]) Len() int {
	l := 0
	for ; n != nil; n = n.Next {
		l++
	}
	return l
}

// Tail follows the Next links from n to the last node of the chain.
func (n *DoubleNode[T]) Tail() *DoubleNode[T] {
	if n == nil {
		return nil
	}
	for n.Next != nil {
		n = n.Next
	}
	return n
}

// Values collects the elements from n to the end of the chain.
func (n *DoubleNode[T]) Values() []T {
	values := make([]T, 0, n.Len())
	for ; n != nil; n = n.Next {
		values = append(values, n.Val)
	}
	return values
}

// Backward collects the elements from the tail of the chain back to n, following
// Prev links.
func (n *DoubleNode[T]) Backward() []T {
	values := make([]T, 0, n.Len())
	for m := n.Tail(); m != nil; m = m.Prev {
		values = append(values, m.Val)
		if m == n {
			break
		}
	}
	return values
}
