package format

import (
	"github.com/npillmayer/brack"
	"github.com/npillmayer/brack/tree"
	"github.com/pterm/pterm"
)

// absent is printed for a missing child of a node which has one child only.
const absent = "·"

// Shape converts a tree into a pterm tree, suitable for display on a terminal.
func Shape[T brack.Element](root *tree.Node[T]) pterm.TreeNode {
	ll := leveled(root, pterm.LeveledList{}, 0)
	return pterm.NewTreeFromLeveledList(ll)
}

// PrintShape renders the structure of a tree to the terminal.
func PrintShape[T brack.Element](root *tree.Node[T]) error {
	return pterm.DefaultTree.WithRoot(Shape(root)).Render()
}

// leveled appends a pre-order walk of node to ll, one item per node.
func leveled[T brack.Element](node *tree.Node[T], ll pterm.LeveledList, level int) pterm.LeveledList {
	if node == nil {
		return append(ll, pterm.LeveledListItem{Level: level, Text: absent})
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: Element(node.Val)})
	if node.Left == nil && node.Right == nil {
		return ll
	}
	ll = leveled(node.Left, ll, level+1)
	return leveled(node.Right, ll, level+1)
}
