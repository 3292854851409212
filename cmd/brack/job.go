package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/brack"
	"github.com/npillmayer/brack/chain"
	"github.com/npillmayer/brack/format"
	"github.com/npillmayer/brack/literal"
	"github.com/npillmayer/brack/tree"
)

// Structures a literal may be converted to.
var structures = []string{"seq", "matrix", "chain", "dchain", "tree"}

// job holds the settings for converting input lines.
type job struct {
	kind   brack.Kind
	as     string
	order  tree.Order
	sparse bool // tree literals may contain null entries
	rotate bool // rotate matrices
	shape  bool // draw trees
	errh   func(error)
}

// newJob creates a job from command line settings. Sparse trees default to
// the configuration.
func newJob(kind, as, order string) (*job, error) {
	j := &job{sparse: sparseDefault()}
	for _, set := range []func() error{
		func() error { return j.setKind(kind) },
		func() error { return j.setStructure(as) },
		func() error { return j.setOrder(order) },
	} {
		if err := set(); err != nil {
			return nil, err
		}
	}
	return j, nil
}

func (j *job) setKind(s string) error {
	kind, err := brack.KindFromString(s)
	if err != nil {
		return err
	}
	j.kind = kind
	return nil
}

func (j *job) setStructure(s string) error {
	for _, st := range structures {
		if s == st {
			j.as = s
			return nil
		}
	}
	return fmt.Errorf("unknown structure %q, expected one of %s", s, strings.Join(structures, "|"))
}

func (j *job) setOrder(s string) error {
	order, err := tree.ParseOrder(s)
	if err != nil {
		return err
	}
	j.order = order
	return nil
}

// run converts one line of input and returns its printed form.
func (j *job) run(line string) (string, error) {
	switch j.kind {
	case brack.Int:
		return convert(j, literal.Ints, line)
	case brack.Float:
		return convert(j, literal.Floats, line)
	case brack.Text:
		return convert(j, literal.Texts, line)
	}
	return "", fmt.Errorf("no element kind set")
}

var errNotSquare = errors.New("matrix is not square")

func convert[T brack.Element](j *job, codec literal.Codec[T], line string) (string, error) {
	scanner := literal.NewScanner(codec)
	scanner.SetErrorHandler(j.errh)
	if j.as == "matrix" {
		m, _, err := scanner.Matrix(line)
		if err != nil {
			return "", err
		}
		if j.rotate {
			if err := rotate(m); err != nil {
				return "", err
			}
		}
		return format.Matrix(m), nil
	}
	if j.as == "tree" && j.sparse {
		slots, _ := scanner.Slots(line)
		return printTree(j, tree.BuildSparse(slots))
	}
	seq, _ := scanner.Sequence(line)
	switch j.as {
	case "chain":
		return format.Chain(chain.FromSlice(seq)), nil
	case "dchain":
		return format.DoubleChain(chain.DoubleFromSlice(seq)), nil
	case "tree":
		return printTree(j, tree.Build(seq))
	}
	return format.Sequence(seq), nil
}

func printTree[T brack.Element](j *job, root *tree.Node[T]) (string, error) {
	if j.shape {
		if err := format.PrintShape(root); err != nil {
			return "", err
		}
	}
	return format.Tree(root, j.order), nil
}
