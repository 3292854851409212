package literal

import (
	"errors"
	"fmt"

	"github.com/npillmayer/brack"
)

// ErrMalformedToken is wrapped by diagnostics for tokens which have been
// dropped from a literal.
var ErrMalformedToken = errors.New("malformed token")

// ErrMalformedLiteral is wrapped by errors for matrix literals with missing or
// misplaced outer brackets.
var ErrMalformedLiteral = errors.New("malformed literal")

// Diagnostic reports a token which has been dropped while scanning a literal.
// Diagnostics do not stop scanning; they are collected alongside the partial result.
type Diagnostic struct {
	Lexeme string     // the offending token, as it appeared in the literal
	Span   brack.Span // byte positions of the token within the literal
	Err    error      // wraps ErrMalformedToken
}

func (d Diagnostic) Error() string {
	if d.Span.IsNull() {
		return d.Err.Error()
	}
	return fmt.Sprintf("%s at %s", d.Err.Error(), d.Span)
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

func malformed(lexeme string, kind brack.Kind, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %q is not a valid %s", ErrMalformedToken, lexeme, kind)
	}
	return fmt.Errorf("%w: %q is not a valid %s (%v)", ErrMalformedToken, lexeme, kind, cause)
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("literal: %v", e)
}
