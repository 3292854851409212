package literal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/npillmayer/brack"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timtadh/lexmachine/machines"
)

func TestIntSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brack.literal")
	defer teardown()
	//
	for i, test := range []struct {
		input string
		seq   []int64
	}{
		{input: "[1, 2, 3]", seq: []int64{1, 2, 3}},
		{input: "[1,2,3]", seq: []int64{1, 2, 3}},
		{input: "1, 2, 3", seq: []int64{1, 2, 3}},
		{input: "[ -7 ,  0,42 ]", seq: []int64{-7, 0, 42}},
		{input: "[1,,2]", seq: []int64{1, 2}},
		{input: "[3, 1, 3]", seq: []int64{3, 1, 3}},
		{input: "[]", seq: []int64{}},
		{input: "", seq: []int64{}},
		{input: "[[1,2", seq: []int64{1, 2}},
		{input: "3,4]", seq: []int64{3, 4}},
		{input: "[1,\v2,\f3]", seq: []int64{1, 2, 3}},
		{input: "[1,\u00a02]", seq: []int64{1, 2}},
		{input: "[1\u0085,2\u2003]", seq: []int64{1, 2}},
	} {
		seq, diags := Parse(test.input, Ints)
		assert.Equal(t, test.seq, seq, "test #%d: %q", i, test.input)
		assert.Empty(t, diags, "test #%d: %q", i, test.input)
	}
}

func TestMalformedTokensAreDropped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brack.literal")
	defer teardown()
	//
	for i, test := range []struct {
		input   string
		seq     []int64
		dropped []string
	}{
		{input: "[1, x, 3]", seq: []int64{1, 3}, dropped: []string{"x"}},
		{input: "[12a, 5]", seq: []int64{5}, dropped: []string{"12a"}},
		{input: "[1.5, 2]", seq: []int64{2}, dropped: []string{"1.5"}},
		{input: "[1.2.3, -, 4]", seq: []int64{4}, dropped: []string{"1.2.3", "-"}},
		{input: "[99999999999999999999]", seq: []int64{}, dropped: []string{"99999999999999999999"}},
		{input: "[null, 1]", seq: []int64{1}, dropped: []string{"null"}},
	} {
		var handled int
		scanner := NewScanner(Ints)
		scanner.SetErrorHandler(func(error) { handled++ })
		seq, diags := scanner.Sequence(test.input)
		assert.Equal(t, test.seq, seq, "test #%d: %q", i, test.input)
		require.Len(t, diags, len(test.dropped), "test #%d: %q", i, test.input)
		for j, d := range diags {
			assert.Equal(t, test.dropped[j], d.Lexeme)
			assert.True(t, errors.Is(d, ErrMalformedToken), "diagnostic should wrap ErrMalformedToken")
		}
		assert.Equal(t, len(test.dropped), handled, "error handler calls for test #%d", i)
	}
}

func TestDiagnosticSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brack.literal")
	defer teardown()
	//
	input := "[1, x, 3]"
	_, diags := Parse(input, Ints)
	require.Len(t, diags, 1)
	span := diags[0].Span
	assert.Equal(t, brack.Span{4, 5}, span)
	assert.Equal(t, "x", input[span.From():span.To()])
}

func TestSpanAfterUnicodeSpace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brack.literal")
	defer teardown()
	//
	input := "[\u00a0x, 1]"
	_, diags := Parse(input, Ints)
	require.Len(t, diags, 1)
	span := diags[0].Span
	assert.Equal(t, "x", input[span.From():span.To()])
}

func TestUnconsumedInput(t *testing.T) {
	ui := &machines.UnconsumedInput{StartTC: 3, FailTC: 5, Text: []byte("[1,\x00\x01]")}
	d := unconsumed(ui)
	assert.Equal(t, "\x00\x01", d.Lexeme)
	assert.Equal(t, brack.Span{3, 5}, d.Span)
	assert.ErrorIs(t, d, ErrMalformedToken)
	//
	ui = &machines.UnconsumedInput{StartTC: 3, FailTC: 3, Text: []byte("[1,")}
	d = unconsumed(ui)
	assert.Equal(t, "", d.Lexeme)
	assert.Equal(t, brack.Span{3, 3}, d.Span)
}

func TestCompileFailureIsTraced(t *testing.T) {
	syntaxTracer := gtrace.SyntaxTracer
	defer func() { gtrace.SyntaxTracer = syntaxTracer }()
	var messages bytes.Buffer
	gtrace.SyntaxTracer = gologadapter.New()
	gtrace.SyntaxTracer.SetOutput(&messages)
	//
	lexer, err := compileLexer(nil) // no patterns
	assert.Nil(t, lexer)
	assert.Error(t, err)
	assert.Contains(t, messages.String(), "error compiling DFA")
	//
	lexer, err = compileLexer(numericPatterns)
	require.NoError(t, err)
	assert.NotNil(t, lexer)
}

func TestDiagnosticMessage(t *testing.T) {
	d := Diagnostic{Lexeme: "x", Span: brack.Span{4, 5}, Err: ErrMalformedToken}
	assert.Equal(t, "malformed token at (4…5)", d.Error())
	d.Span = brack.Span{}
	assert.Equal(t, "malformed token", d.Error())
}

func TestFloatSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brack.literal")
	defer teardown()
	//
	for i, test := range []struct {
		input string
		seq   []float64
	}{
		{input: "[1.1, 2.2, 3.3]", seq: []float64{1.1, 2.2, 3.3}},
		{input: "[-0.5, .5, 7, 8.]", seq: []float64{-0.5, 0.5, 7, 8}},
		{input: "[1, abc, 2]", seq: []float64{1, 2}},
	} {
		seq, _ := Parse(test.input, Floats)
		assert.Equal(t, test.seq, seq, "test #%d: %q", i, test.input)
	}
}

func TestTextSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brack.literal")
	defer teardown()
	//
	for i, test := range []struct {
		input string
		seq   []string
	}{
		{input: "[apple, banana, cherry]", seq: []string{"apple", "banana", "cherry"}},
		{input: "[ banana split ,  ice cream]", seq: []string{"banana split", "ice cream"}},
		{input: "apple,banana", seq: []string{"apple", "banana"}},
		{input: "[a,,b, ,c]", seq: []string{"a", "b", "c"}},
		{input: "[[dog, cat", seq: []string{"dog", "cat"}},
		{input: "[a[1], b]", seq: []string{"a[1", "b"}},
		{input: "[12a, -3]", seq: []string{"12a", "-3"}},
		{input: "[Grüße, 世界]", seq: []string{"Grüße", "世界"}},
		{input: "[]", seq: []string{}},
	} {
		seq, diags := Parse(test.input, Texts)
		assert.Equal(t, test.seq, seq, "test #%d: %q", i, test.input)
		assert.Empty(t, diags)
	}
}

func TestTextSpans(t *testing.T) {
	input := "[ Grüße , x y ]"
	tokens, err := textTokens(input)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	for _, tok := range tokens {
		assert.Equal(t, tok.lexeme, input[tok.span.From():tok.span.To()])
	}
}

func TestSlots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brack.literal")
	defer teardown()
	//
	slots, diags := ParseSlots("[1, null, 3, None, x]", Ints)
	require.Len(t, diags, 1)
	assert.Equal(t, "x", diags[0].Lexeme)
	require.Len(t, slots, 4)
	assert.Nil(t, slots[1])
	assert.Nil(t, slots[3])
	assert.Equal(t, int64(1), *slots[0])
	assert.Equal(t, int64(3), *slots[2])
	//
	texts, _ := ParseSlots("[a, nil, c]", Texts)
	require.Len(t, texts, 3)
	assert.Nil(t, texts[1])
	assert.Equal(t, "c", *texts[2])
}

func TestConvenienceFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brack.literal")
	defer teardown()
	//
	assert.Equal(t, []int64{1, 3}, ParseInts("[1, x, 3]"))
	assert.Equal(t, []int64{}, ParseInts("[]"))
	assert.Equal(t, []float64{2.5}, ParseFloats("[2.5]"))
	assert.Equal(t, []string{"a", "b"}, ParseTexts("[a, b]"))
}

func TestRunReader(t *testing.T) {
	for i, test := range []struct {
		input string
		cat   catCode
		text  string
	}{
		{input: "abc ,", cat: catText, text: "abc"},
		{input: "   x", cat: catSpace, text: "   "},
		{input: "[[1", cat: catOpen, text: "[["},
		{input: ",,", cat: catDelim, text: ","},
		{input: "]]", cat: catDelim, text: "]"},
	} {
		rr := newRunReader(stringsReader(test.input))
		r, err := rr.Next(textCategories)
		require.NoError(t, err)
		if r.cat != test.cat || r.text != test.text {
			t.Errorf("test %d failed: expected %d|%q, have %d|%q", i+1, test.cat, test.text, r.cat, r.text)
		}
	}
}
