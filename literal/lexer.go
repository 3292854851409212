package literal

import (
	"fmt"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/brack"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// --- Tokens ----------------------------------------------------------------

type tokType int

const (
	tokNum  tokType = iota + 1 // optional '-', digits and at most one '.'
	tokNull                    // null, None, nil
	tokWord                    // anything else between separators
)

type token struct {
	typ    tokType
	lexeme string
	span   brack.Span
}

// --- lexmachine DFA for numeric literals ------------------------------------

// Patterns are tried longest match first, ties go to the pattern added first.
// As tokWord matches every run of non-separators, a number glued to other
// characters ("12a") is a word and will be reported as malformed.
const (
	separatorPattern = `( |\t|\n|\r|\,|\[|\])+`
	numberPattern    = `\-?([0-9]+(\.[0-9]*)?|\.[0-9]+)`
	nullPattern      = `null|None|nil`
	wordPattern      = `[^ \t\n\r\,\[\]]+`
)

// lexPattern binds a regular expression to a lexmachine action.
type lexPattern struct {
	regex  string
	action lexmachine.Action
}

var numericPatterns = []lexPattern{
	{separatorPattern, skip},
	{numberPattern, makeToken(tokNum)},
	{nullPattern, makeToken(tokNull)},
	{wordPattern, makeToken(tokWord)},
}

var numLexer struct {
	once  sync.Once
	lexer *lexmachine.Lexer
	err   error
}

// numericLexer compiles the DFA on first use. The compiled lexer is read-only
// afterwards and shared between all scanners.
func numericLexer() (*lexmachine.Lexer, error) {
	numLexer.once.Do(func() {
		numLexer.lexer, numLexer.err = compileLexer(numericPatterns)
	})
	return numLexer.lexer, numLexer.err
}

// compileLexer creates a DFA lexer for patterns. Failures are reported to the
// global syntax tracer.
func compileLexer(patterns []lexPattern) (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()
	for _, p := range patterns {
		lexer.Add([]byte(p.regex), p.action)
	}
	if err := lexer.Compile(); err != nil {
		gtrace.SyntaxTracer.Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return lexer, nil
}

// numericTokens splits a literal into number candidates. Input the DFA cannot
// match (which should not occur, as the patterns cover every byte) is skipped
// and reported as a diagnostic.
func numericTokens(text string) ([]token, []Diagnostic, error) {
	lexer, err := numericLexer()
	if err != nil {
		return nil, nil, err
	}
	input := blankSpaces(text)
	scan, err := lexer.Scanner(input)
	if err != nil {
		return nil, nil, err
	}
	var tokens []token
	var diags []Diagnostic
	tok, err, eof := scan.Next()
	for !eof {
		for err != nil {
			ui, is := err.(*machines.UnconsumedInput)
			if !is {
				return tokens, diags, err
			}
			diags = append(diags, unconsumed(ui))
			scan.TC = max(ui.FailTC, ui.StartTC+1)
			tok, err, eof = scan.Next()
		}
		if eof {
			break
		}
		t := tok.(*lexmachine.Token)
		tracer().Debugf("token %d = %q @ %d", t.Type, t.Lexeme, t.TC)
		tokens = append(tokens, token{
			typ:    tokType(t.Type),
			lexeme: string(t.Lexeme),
			span:   brack.Span{uint64(t.TC), uint64(t.TC + len(t.Lexeme))},
		})
		tok, err, eof = scan.Next()
	}
	return tokens, diags, nil
}

// unconsumed converts a lexer error into a diagnostic for the unmatched input.
func unconsumed(ui *machines.UnconsumedInput) Diagnostic {
	from := min(ui.StartTC, len(ui.Text))
	to := min(max(ui.StartTC+1, ui.FailTC), len(ui.Text))
	lexeme := string(ui.Text[from:to])
	return Diagnostic{
		Lexeme: lexeme,
		Span:   brack.Span{uint64(from), uint64(to)},
		Err:    fmt.Errorf("%w: cannot match %q", ErrMalformedToken, lexeme),
	}
}

// blankSpaces replaces every Unicode space by as many ASCII blanks as the
// space occupies bytes. The DFA then has to know ASCII separators only, and
// token positions stay valid for the original text.
func blankSpaces(text string) []byte {
	input := []byte(text)
	for i, r := range text {
		if r < utf8.RuneSelf && r != '\v' && r != '\f' {
			continue
		}
		if unicode.IsSpace(r) {
			for j := i; j < i+utf8.RuneLen(r); j++ {
				input[j] = ' '
			}
		}
	}
	return input
}

// skip is a pre-defined action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a lexmachine token.
func makeToken(typ tokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}
