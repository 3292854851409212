package literal

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/brack"
)

// --- Category codes --------------------------------------------------------

type catCode int16

const (
	catText  catCode = iota // anything else
	catSpace                // unicode.IsSpace
	catOpen                 // [
	catDelim                // , ]
)

// runeCategorizer assigns a category to a rune. Loners are not allowed to form
// runs of more than one rune.
type runeCategorizer func(r rune) (cat catCode, isLoner bool)

// textCategories is the categorizer for text literals.
func textCategories(r rune) (catCode, bool) {
	switch {
	case r == ',' || r == ']':
		return catDelim, true
	case r == '[':
		return catOpen, false
	case unicode.IsSpace(r):
		return catSpace, false
	}
	return catText, false
}

// run is a sequence of runes of equal category.
type run struct {
	cat  catCode
	text string
	span brack.Span
}

// --- Category run reader ---------------------------------------------------

type runReader struct {
	reader  io.RuneReader
	isEOF   bool
	next    rune
	nextLen int  // byte length of next
	hasNext bool // next holds a lookahead rune
	pos     uint64
	writer  strings.Builder
}

func newRunReader(r io.RuneReader) *runReader {
	return &runReader{reader: r}
}

// Next reads a maximal run of runes of the same category. It returns io.EOF
// after the last run.
func (rr *runReader) Next(rc runeCategorizer) (run, error) {
	r, err := rr.lookahead()
	if err != nil {
		if err == io.EOF {
			return run{}, io.EOF
		}
		return run{}, fmt.Errorf("cannot read literal (%w)", err)
	}
	rr.writer.Reset()
	start := rr.pos
	cat, isLoner := rc(r)
	rr.match(r)
	for !isLoner {
		if r, err = rr.lookahead(); err != nil {
			break // EOF or error will be reported with the next call
		}
		if cc, _ := rc(r); cc != cat {
			break
		}
		rr.match(r)
	}
	return run{cat: cat, text: rr.writer.String(), span: brack.Span{start, rr.pos}}, nil
}

func (rr *runReader) lookahead() (r rune, err error) {
	if rr.isEOF {
		return utf8.RuneError, io.EOF
	}
	if rr.hasNext {
		return rr.next, nil
	}
	var sz int
	r, sz, err = rr.reader.ReadRune()
	if err == io.EOF {
		rr.isEOF = true
		return utf8.RuneError, io.EOF
	} else if err != nil {
		return 0, err
	}
	rr.next, rr.nextLen, rr.hasNext = r, sz, true
	return r, nil
}

func (rr *runReader) match(r rune) {
	rr.writer.WriteRune(r)
	rr.pos += uint64(rr.nextLen)
	rr.hasNext = false
}

// --- Text tokens -----------------------------------------------------------

// textTokens splits a text literal into tokens. A token extends up to the next
// ',' or ']'. Opening brackets at the start of a token are skipped, surrounding
// whitespace is dropped, empty tokens are skipped.
func textTokens(text string) ([]token, error) {
	rr := newRunReader(strings.NewReader(text))
	var tokens []token
	var b strings.Builder
	var span brack.Span
	var spaces string // pending whitespace inside a token
	flush := func() {
		if b.Len() > 0 {
			lexeme := b.String()
			typ := tokWord
			if isNullWord(lexeme) {
				typ = tokNull
			}
			tokens = append(tokens, token{typ: typ, lexeme: lexeme, span: span})
		}
		b.Reset()
		spaces = ""
	}
	for {
		r, err := rr.Next(textCategories)
		if err == io.EOF {
			break
		} else if err != nil {
			return tokens, err
		}
		switch r.cat {
		case catDelim:
			flush()
		case catSpace:
			if b.Len() > 0 {
				spaces += r.text
			}
		case catOpen:
			if b.Len() == 0 {
				continue
			}
			fallthrough
		default:
			if b.Len() == 0 {
				span[0] = r.span.From()
			}
			b.WriteString(spaces)
			b.WriteString(r.text)
			spaces = ""
			span[1] = r.span.To()
		}
	}
	flush()
	return tokens, nil
}
