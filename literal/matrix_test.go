package literal

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringsReader(s string) *strings.Reader {
	return strings.NewReader(s)
}

func TestIntMatrix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brack.literal")
	defer teardown()
	//
	for i, test := range []struct {
		input  string
		matrix [][]int64
	}{
		{input: "[[1,2],[3,4],[5,6]]", matrix: [][]int64{{1, 2}, {3, 4}, {5, 6}}},
		{input: "[[1, 2, 3],[4, 5, 6],[7, 8, 9]]", matrix: [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}},
		{input: "[[1, 2], [3, 4]]", matrix: [][]int64{{1, 2}, {3, 4}}},
		{input: "  [[1,2],[3]]\n", matrix: [][]int64{{1, 2}, {3}}},
		{input: "[[7,8,9]]", matrix: [][]int64{{7, 8, 9}}},
		{input: "[[]]", matrix: [][]int64{{}}},
		{input: "[]", matrix: [][]int64{}},
		{input: "[[1],[],[2]]", matrix: [][]int64{{1}, {}, {2}}},
		{input: "[1,2]", matrix: [][]int64{{1, 2}}},
	} {
		m, diags, err := ParseMatrix(test.input, Ints)
		require.NoError(t, err, "test #%d: %q", i, test.input)
		assert.Empty(t, diags)
		assert.Equal(t, test.matrix, m, "test #%d: %q", i, test.input)
	}
}

func TestMatrixOfFloatsAndTexts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brack.literal")
	defer teardown()
	//
	fm, err := ParseFloatMatrix("[[1.1, 2.2, 3.3],[4.4, 5.5, 6.6]]")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1.1, 2.2, 3.3}, {4.4, 5.5, 6.6}}, fm)
	sm, err := ParseTextMatrix("[[apple, banana, cherry],[dog, cat, elephant]]")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"apple", "banana", "cherry"}, {"dog", "cat", "elephant"}}, sm)
}

func TestMatrixDiagnostics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brack.literal")
	defer teardown()
	//
	input := "[[1,2],[x,4]]"
	m, diags, err := ParseMatrix(input, Ints)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{1, 2}, {4}}, m)
	require.Len(t, diags, 1)
	span := diags[0].Span
	assert.Equal(t, "x", input[span.From():span.To()])
}

func TestMalformedMatrix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brack.literal")
	defer teardown()
	//
	for _, input := range []string{
		"", "[", "  x ",
		"[[1,2],[3,4]", // missing outer closing bracket
		"1,2],[3,4]]",  // missing outer opening bracket
		"[1,2],[3,4]]",
		"[[1,2],[3]",
		"[[1,2]],[[3]]",
		"[[1,2]]]",
	} {
		m, diags, err := ParseMatrix(input, Ints)
		assert.Empty(t, m, "input %q", input)
		assert.Empty(t, diags, "input %q", input)
		assert.True(t, errors.Is(err, ErrMalformedLiteral), "input %q should be malformed", input)
	}
}

func TestCheckOuterBrackets(t *testing.T) {
	for i, test := range []struct {
		input string
		ok    bool
	}{
		{"[]", true},
		{"[1,2]", true},
		{"[[1,2]]", true},
		{"[[1,2],[3,4]]", true},
		{"[[1,2],[3,4]", false},
		{"[1,2],[3,4]]", false},
		{"[]]", false},
		{"[[]", false},
	} {
		err := checkOuterBrackets(test.input)
		if test.ok {
			assert.NoError(t, err, "test #%d: %q", i, test.input)
		} else {
			assert.ErrorIs(t, err, ErrMalformedLiteral, "test #%d: %q", i, test.input)
		}
	}
}

func TestSplitRows(t *testing.T) {
	rows := splitRows("[1,2],[3,4],[5", 10)
	require.Len(t, rows, 3)
	assert.Equal(t, "[1,2", rows[0].text)
	assert.Equal(t, "3,4", rows[1].text)
	assert.Equal(t, "5", rows[2].text)
	assert.Equal(t, uint64(10), rows[0].offset)
	assert.Equal(t, uint64(17), rows[1].offset)
	//
	assert.Empty(t, splitRows("", 0))
	assert.Len(t, splitRows("[1],[", 0), 1)
}
