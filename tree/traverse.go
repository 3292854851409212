package tree

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Order is a kind of tree traversal.
type Order int

// Traversal orders
const (
	OrderIn    Order = iota // left subtree, node, right subtree
	OrderPre                // node, left subtree, right subtree
	OrderPost               // left subtree, right subtree, node
	OrderLevel              // breadth-first, the inverse of Build
)

var orderNames = [...]string{"inorder", "preorder", "postorder", "levelorder"}

func (o Order) String() string {
	if o < OrderIn || o > OrderLevel {
		return fmt.Sprintf("Order(%d)", int(o))
	}
	return orderNames[o]
}

// ErrUnknownOrder is returned by ParseOrder for unknown traversal names.
var ErrUnknownOrder = errors.New("unknown traversal order")

// ParseOrder returns the traversal order for one of "inorder", "preorder",
// "postorder" or "levelorder".
func ParseOrder(s string) (Order, error) {
	for i, name := range orderNames {
		if s == name {
			return Order(i), nil
		}
	}
	return OrderIn, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// Traverse returns the elements of a tree in the given order.
// Unknown orders are treated as in-order.
func Traverse[T any](root *Node[T], order Order) []T {
	switch order {
	case OrderPre:
		return PreOrder(root)
	case OrderPost:
		return PostOrder(root)
	case OrderLevel:
		return LevelOrder(root)
	}
	return InOrder(root)
}

// InOrder returns the elements of a tree visiting the left subtree, then the
// node, then the right subtree.
func InOrder[T any](root *Node[T]) []T {
	values := []T{}
	stack := arraystack.New()
	n := root
	for n != nil || !stack.Empty() {
		for ; n != nil; n = n.Left {
			stack.Push(n)
		}
		item, _ := stack.Pop()
		n = item.(*Node[T])
		values = append(values, n.Val)
		n = n.Right
	}
	return values
}

// PreOrder returns the elements of a tree visiting the node, then the left
// subtree, then the right subtree.
func PreOrder[T any](root *Node[T]) []T {
	values := []T{}
	if root == nil {
		return values
	}
	stack := arraystack.New()
	stack.Push(root)
	for !stack.Empty() {
		item, _ := stack.Pop()
		n := item.(*Node[T])
		values = append(values, n.Val)
		if n.Right != nil {
			stack.Push(n.Right)
		}
		if n.Left != nil {
			stack.Push(n.Left)
		}
	}
	return values
}

// PostOrder returns the elements of a tree visiting the left subtree, then the
// right subtree, then the node.
func PostOrder[T any](root *Node[T]) []T {
	values := []T{}
	if root == nil {
		return values
	}
	// collect node-right-left, which is post-order reversed
	stack := arraystack.New()
	stack.Push(root)
	for !stack.Empty() {
		item, _ := stack.Pop()
		n := item.(*Node[T])
		values = append(values, n.Val)
		if n.Left != nil {
			stack.Push(n.Left)
		}
		if n.Right != nil {
			stack.Push(n.Right)
		}
	}
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
	return values
}

// LevelOrder returns the elements of a tree breadth-first, left to right.
// For trees created by Build it recovers the input slice.
func LevelOrder[T any](root *Node[T]) []T {
	values := []T{}
	if root == nil {
		return values
	}
	queue := linkedlistqueue.New()
	queue.Enqueue(root)
	for !queue.Empty() {
		item, _ := queue.Dequeue()
		n := item.(*Node[T])
		values = append(values, n.Val)
		if n.Left != nil {
			queue.Enqueue(n.Left)
		}
		if n.Right != nil {
			queue.Enqueue(n.Right)
		}
	}
	return values
}
