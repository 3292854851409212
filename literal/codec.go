package literal

import (
	"strconv"

	"github.com/npillmayer/brack"
)

// Codec converts tokens of a literal into elements of type T. Kind selects the
// tokenization: numeric kinds scan numbers, brack.Text scans free text.
type Codec[T brack.Element] struct {
	Kind    brack.Kind
	Convert func(lexeme string) (T, error)
}

// Ints converts tokens to 64-bit signed integers.
var Ints = Codec[int64]{
	Kind: brack.Int,
	Convert: func(lexeme string) (int64, error) {
		return strconv.ParseInt(lexeme, 10, 64)
	},
}

// Floats converts tokens to 64-bit floating point numbers.
var Floats = Codec[float64]{
	Kind: brack.Float,
	Convert: func(lexeme string) (float64, error) {
		return strconv.ParseFloat(lexeme, 64)
	},
}

// Texts keeps tokens as (trimmed) strings.
var Texts = Codec[string]{
	Kind: brack.Text,
	Convert: func(lexeme string) (string, error) {
		return lexeme, nil
	},
}

// nullWords are the lexemes denoting an absent slot, see ParseSlots.
var nullWords = []string{"null", "None", "nil"}

func isNullWord(lexeme string) bool {
	for _, w := range nullWords {
		if lexeme == w {
			return true
		}
	}
	return false
}
