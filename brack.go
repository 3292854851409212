package brack

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// --- Element kinds ---------------------------------------------------------

// Kind is the category of the elements of a literal. Scanners need to know it
// in advance, as numbers and texts are tokenized differently.
type Kind int

// Element kinds supported by package literal.
const (
	NoKind Kind = iota
	Int         // 64-bit signed integers
	Float       // 64-bit floating point numbers
	Text        // trimmed free text
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Text:
		return "text"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsNumeric is true for Int and Float.
func (k Kind) IsNumeric() bool {
	return k == Int || k == Float
}

// KindFromString returns the kind for a name, as used on command lines:
// "int", "float" or "text" (and a couple of synonyms).
func KindFromString(s string) (Kind, error) {
	switch s {
	case "int", "integer", "i":
		return Int, nil
	case "float", "double", "f":
		return Float, nil
	case "text", "string", "s":
		return Text, nil
	}
	return NoKind, fmt.Errorf("unknown element kind: %q", s)
}

// Number is a type constraint for numeric elements.
type Number interface {
	constraints.Integer | constraints.Float
}

// Element is a type constraint for the scalar values a literal may hold.
type Element interface {
	Number | ~string
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing the position of a token within a literal.
// A span denotes a start position and the position just behind the end, both
// as byte offsets.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// IsNull is true for the zero span, which denotes an unknown position.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Shift moves a span by offset. Used when a literal is scanned in pieces, as
// the rows of a matrix are.
func (s Span) Shift(offset uint64) Span {
	return Span{s[0] + offset, s[1] + offset}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
