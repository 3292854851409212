package tree

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// Node is a node of a binary tree. The empty tree is nil.
type Node[T any] struct {
	Val   T
	Left  *Node[T]
	Right *Node[T]
}

// Build creates the level-order-complete binary tree holding the elements of s.
// The breadth-first order of the resulting tree equals the order of s.
// An empty slice results in an empty (nil) tree.
func Build[T any](s []T) *Node[T] {
	if len(s) == 0 {
		return nil
	}
	root := &Node[T]{Val: s[0]}
	queue := linkedlistqueue.New() // nodes waiting for children
	queue.Enqueue(root)
	i := 1
	for i < len(s) {
		item, _ := queue.Dequeue()
		node := item.(*Node[T])
		node.Left = &Node[T]{Val: s[i]}
		queue.Enqueue(node.Left)
		i++
		if i < len(s) {
			node.Right = &Node[T]{Val: s[i]}
			queue.Enqueue(node.Right)
			i++
		}
	}
	tracer().Debugf("built tree of %d nodes", len(s))
	return root
}

// BuildSparse creates a binary tree from slots in breadth-first order, where nil
// slots denote absent children. An absent child occupies its slot, but does not
// receive children of its own, i.e. slots are consumed by present nodes only:
//
//	[1, nil, 2, 3]  =>   1
//	                      \
//	                       2
//	                      /
//	                     3
//
// A nil first slot or an empty slice result in an empty tree.
func BuildSparse[T any](slots []*T) *Node[T] {
	if len(slots) == 0 || slots[0] == nil {
		return nil
	}
	root := &Node[T]{Val: *slots[0]}
	queue := linkedlistqueue.New()
	queue.Enqueue(root)
	i := 1
	for !queue.Empty() && i < len(slots) {
		item, _ := queue.Dequeue()
		node := item.(*Node[T])
		if slots[i] != nil {
			node.Left = &Node[T]{Val: *slots[i]}
			queue.Enqueue(node.Left)
		}
		i++
		if i < len(slots) && slots[i] != nil {
			node.Right = &Node[T]{Val: *slots[i]}
			queue.Enqueue(node.Right)
		}
		i++
	}
	return root
}

// Size returns the number of nodes of a tree.
func Size[T any](root *Node[T]) int {
	return len(LevelOrder(root))
}

// Height returns the number of levels of a tree; the empty tree has height 0.
func Height[T any](root *Node[T]) int {
	if root == nil {
		return 0
	}
	height := 0
	level := []*Node[T]{root}
	for len(level) > 0 {
		height++
		var next []*Node[T]
		for _, n := range level {
			if n.Left != nil {
				next = append(next, n.Left)
			}
			if n.Right != nil {
				next = append(next, n.Right)
			}
		}
		level = next
	}
	return height
}
