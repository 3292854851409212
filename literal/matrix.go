package literal

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/npillmayer/brack"
)

// rowBoundary separates the rows of a matrix literal. Whitespace around the
// comma is tolerated, as package format prints rows separated by ", ".
var rowBoundary = regexp.MustCompile(`\]\s*,\s*\[`)

// rowText is a row substring together with its byte offset in the literal.
type rowText struct {
	text   string
	offset uint64
}

// Matrix scans a two-dimensional literal of the form [[…],[…],…].
//
// Exactly one pair of outer brackets is stripped, the remaining content is split
// at every row boundary "],[" and each row is scanned with Sequence. Rows need not
// be of equal length. Malformed tokens in rows are handled as with Sequence.
//
// If the outer brackets are missing or the literal is too short, Matrix returns
// an empty matrix and an error wrapping ErrMalformedLiteral.
func (s *Scanner[T]) Matrix(text string) ([][]T, []Diagnostic, error) {
	content, offset, err := matrixContent(text)
	if err != nil {
		tracer().Debugf("matrix literal rejected: %v", err)
		return nil, nil, err
	}
	rows := splitRows(content, offset)
	matrix := make([][]T, 0, len(rows))
	var diags []Diagnostic
	for _, row := range rows {
		seq, d := s.sequence(row.text, row.offset)
		matrix = append(matrix, seq)
		diags = append(diags, d...)
	}
	return matrix, diags, nil
}

// matrixContent strips the outer brackets and surrounding whitespace off a
// matrix literal. It returns the content and its byte offset within text.
func matrixContent(text string) (string, uint64, error) {
	lead := len(text) - len(strings.TrimLeftFunc(text, unicode.IsSpace))
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 2 {
		return "", 0, fmt.Errorf("%w: literal %q too short for a matrix", ErrMalformedLiteral, trimmed)
	}
	if trimmed[0] != '[' {
		return "", 0, fmt.Errorf("%w: missing opening bracket", ErrMalformedLiteral)
	}
	if trimmed[len(trimmed)-1] != ']' {
		return "", 0, fmt.Errorf("%w: missing closing bracket", ErrMalformedLiteral)
	}
	if err := checkOuterBrackets(trimmed); err != nil {
		return "", 0, err
	}
	inner := trimmed[1 : len(trimmed)-1]
	innerLead := len(inner) - len(strings.TrimLeftFunc(inner, unicode.IsSpace))
	return strings.TrimSpace(inner), uint64(lead + 1 + innerLead), nil
}

// checkOuterBrackets requires the first and the last byte of text to be a
// matching pair of brackets. The nesting depth may not drop below 1 before the
// last byte, and must be 0 after it. Otherwise "[[1,2],[3,4]" would pass as a
// matrix, as its last byte closes an inner row.
func checkOuterBrackets(text string) error {
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '[':
			depth++
		case ']':
			depth--
		}
		if depth < 0 {
			return fmt.Errorf("%w: unbalanced closing bracket at %d", ErrMalformedLiteral, i)
		}
		if depth == 0 && i < len(text)-1 {
			return fmt.Errorf("%w: outer brackets closed at %d, before end of literal", ErrMalformedLiteral, i)
		}
	}
	if depth > 0 {
		return fmt.Errorf("%w: %d unclosed bracket(s)", ErrMalformedLiteral, depth)
	}
	return nil
}

// splitRows splits matrix content at row boundaries. The first row is the prefix
// before the first boundary, the last row the suffix after the last one; an empty
// suffix does not count as a row.
func splitRows(content string, offset uint64) []rowText {
	var rows []rowText
	start := 0
	for _, loc := range rowBoundary.FindAllStringIndex(content, -1) {
		rows = append(rows, rowText{
			text:   content[start:loc[0]],
			offset: offset + uint64(start),
		})
		start = loc[1]
	}
	if start < len(content) {
		rows = append(rows, rowText{
			text:   content[start:],
			offset: offset + uint64(start),
		})
	}
	return rows
}

// --- Package level functions -----------------------------------------------

// ParseMatrix scans a two-dimensional literal into rows of elements converted by
// codec. See Scanner.Matrix.
func ParseMatrix[T brack.Element](text string, codec Codec[T]) ([][]T, []Diagnostic, error) {
	return NewScanner(codec).Matrix(text)
}

// ParseIntMatrix scans a matrix literal of integers. Diagnostics are traced.
func ParseIntMatrix(text string) ([][]int64, error) {
	m, _, err := ParseMatrix(text, Ints)
	return m, err
}

// ParseFloatMatrix scans a matrix literal of floating point numbers.
// Diagnostics are traced.
func ParseFloatMatrix(text string) ([][]float64, error) {
	m, _, err := ParseMatrix(text, Floats)
	return m, err
}

// ParseTextMatrix scans a matrix literal of strings.
func ParseTextMatrix(text string) ([][]string, error) {
	m, _, err := ParseMatrix(text, Texts)
	return m, err
}
