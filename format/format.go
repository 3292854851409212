package format

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/npillmayer/brack"
	"github.com/npillmayer/brack/chain"
	"github.com/npillmayer/brack/tree"
)

const separator = ", "

// Element prints a single element.
func Element[T brack.Element](v T) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.String:
		return rv.String()
	}
	return fmt.Sprint(v)
}

// Sequence prints a slice as [e1, e2, …].
func Sequence[T brack.Element](s []T) string {
	var b strings.Builder
	writeSequence(&b, s)
	return b.String()
}

// Matrix prints rows as [[…], […], …]. A matrix without rows prints as [].
func Matrix[T brack.Element](m [][]T) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, row := range m {
		if i > 0 {
			b.WriteString(separator)
		}
		writeSequence(&b, row)
	}
	b.WriteByte(']')
	return b.String()
}

// Chain prints a singly linked chain from head to tail.
func Chain[T brack.Element](head *chain.Node[T]) string {
	return Sequence(head.Values())
}

// DoubleChain prints a doubly linked chain following its Next links.
func DoubleChain[T brack.Element](head *chain.DoubleNode[T]) string {
	return Sequence(head.Values())
}

// Tree prints the elements of a tree in the given traversal order.
func Tree[T brack.Element](root *tree.Node[T], order tree.Order) string {
	return Sequence(tree.Traverse(root, order))
}

func writeSequence[T brack.Element](b *strings.Builder, s []T) {
	b.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(Element(v))
	}
	b.WriteByte(']')
}
