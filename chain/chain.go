package chain

// Node is a node of a singly linked chain.
type Node[T any] struct {
	Val  T
	Next *Node[T]
}

// FromSlice builds a singly linked chain holding the elements of s in order.
// It returns the head of the chain, or nil for an empty slice.
func FromSlice[T any](s []T) *Node[T] {
	var head, tail *Node[T]
	for _, v := range s {
		n := &Node[T]{Val: v}
		if head == nil {
			head = n
		} else {
			tail.Next = n
		}
		tail = n
	}
	return head
}

// Len returns the number of nodes from n to the end of the chain.
func (n *Node[T]) Len() int {
	l := 0
	for ; n != nil; n = n.Next {
		l++
	}
	return l
}

// Values collects the elements from n to the end of the chain.
func (n *Node[T]) Values() []T {
	values := make([]T, 0, n.Len())
	for ; n != nil; n = n.Next {
		values = append(values, n.Val)
	}
	return values
}
