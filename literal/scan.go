package literal

import (
	"github.com/npillmayer/brack"
)

// Scanner converts literals into slices of T. A Scanner has no state apart from
// its codec and error handler and may be re-used for any number of literals.
type Scanner[T brack.Element] struct {
	codec Codec[T]
	Error func(error) // called once for every dropped token
}

// NewScanner creates a scanner for elements converted by codec. The default
// error handler traces diagnostics with level 'Error'.
func NewScanner[T brack.Element](codec Codec[T]) *Scanner[T] {
	return &Scanner[T]{
		codec: codec,
		Error: logError,
	}
}

// SetErrorHandler sets an error handler for the scanner. A nil handler
// re-installs the default one.
func (s *Scanner[T]) SetErrorHandler(h func(error)) {
	if h == nil {
		s.Error = logError
		return
	}
	s.Error = h
}

// Kind returns the element kind of the scanner's codec.
func (s *Scanner[T]) Kind() brack.Kind {
	return s.codec.Kind
}

// Sequence scans a one-dimensional literal. Malformed tokens are dropped; they
// are returned as diagnostics and passed to the error handler. The resulting
// slice is never nil.
func (s *Scanner[T]) Sequence(text string) ([]T, []Diagnostic) {
	return s.sequence(text, 0)
}

// Slots scans a one-dimensional literal like Sequence, but tokens null, None
// and nil result in nil entries instead of being dropped.
func (s *Scanner[T]) Slots(text string) ([]*T, []Diagnostic) {
	tokens, diags := s.tokens(text, 0)
	slots := make([]*T, 0, len(tokens))
	for _, tok := range tokens {
		if tok.typ == tokNull {
			slots = append(slots, nil)
			continue
		}
		if v, ok := s.convert(tok, &diags); ok {
			slots = append(slots, &v)
		}
	}
	return slots, diags
}

func (s *Scanner[T]) sequence(text string, offset uint64) ([]T, []Diagnostic) {
	tokens, diags := s.tokens(text, offset)
	seq := make([]T, 0, len(tokens))
	for _, tok := range tokens {
		if v, ok := s.convert(tok, &diags); ok {
			seq = append(seq, v)
		}
	}
	return seq, diags
}

// tokens splits text with the tokenizer matching the codec's kind. Spans are
// shifted by offset.
func (s *Scanner[T]) tokens(text string, offset uint64) ([]token, []Diagnostic) {
	var tokens []token
	var diags []Diagnostic
	var err error
	if s.codec.Kind.IsNumeric() {
		tokens, diags, err = numericTokens(text)
	} else {
		tokens, err = textTokens(text)
	}
	for i := range diags {
		diags[i].Span = diags[i].Span.Shift(offset)
		s.Error(diags[i])
	}
	if err != nil {
		// partial token lists are still usable
		d := Diagnostic{Span: brack.Span{offset, offset + uint64(len(text))}, Err: err}
		s.Error(d)
		diags = append(diags, d)
	}
	for i := range tokens {
		tokens[i].span = tokens[i].span.Shift(offset)
	}
	return tokens, diags
}

func (s *Scanner[T]) convert(tok token, diags *[]Diagnostic) (v T, ok bool) {
	if s.codec.Kind.IsNumeric() && tok.typ != tokNum {
		s.drop(tok, nil, diags)
		return v, false
	}
	v, err := s.codec.Convert(tok.lexeme)
	if err != nil {
		s.drop(tok, err, diags)
		return v, false
	}
	return v, true
}

func (s *Scanner[T]) drop(tok token, cause error, diags *[]Diagnostic) {
	d := Diagnostic{
		Lexeme: tok.lexeme,
		Span:   tok.span,
		Err:    malformed(tok.lexeme, s.codec.Kind, cause),
	}
	s.Error(d)
	*diags = append(*diags, d)
}

// --- Package level functions -----------------------------------------------

// Parse scans a one-dimensional literal into a slice of elements converted by
// codec. Malformed tokens are dropped and returned as diagnostics.
func Parse[T brack.Element](text string, codec Codec[T]) ([]T, []Diagnostic) {
	return NewScanner(codec).Sequence(text)
}

// ParseSlots scans a one-dimensional literal which may contain null entries.
func ParseSlots[T brack.Element](text string, codec Codec[T]) ([]*T, []Diagnostic) {
	return NewScanner(codec).Slots(text)
}

// ParseInts scans a literal of integers. Diagnostics are traced.
func ParseInts(text string) []int64 {
	seq, _ := Parse(text, Ints)
	return seq
}

// ParseFloats scans a literal of floating point numbers. Diagnostics are traced.
func ParseFloats(text string) []float64 {
	seq, _ := Parse(text, Floats)
	return seq
}

// ParseTexts scans a literal of strings.
func ParseTexts(text string) []string {
	seq, _ := Parse(text, Texts)
	return seq
}
