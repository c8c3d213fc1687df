package tokenizer

import (
	"fmt"
	"unicode/utf8"
)

// CharTokenizer maps each character to its Unicode code point. Invalid
// UTF-8 in the input encodes as utf8.RuneError, like Go's own range loop.
type CharTokenizer struct{}

func NewCharTokenizer() *CharTokenizer {
	return &CharTokenizer{}
}

// Encode converts a string to one token per rune.
func (t *CharTokenizer) Encode(text string) []int {
	tokens := make([]int, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		tokens = append(tokens, int(r))
	}
	return tokens
}

// Decode converts code points back to a string. IDs that are not valid
// Unicode scalar values (negative, surrogates, above MaxRune) fail with
// ErrUnknownToken.
func (t *CharTokenizer) Decode(tokens []int) (string, error) {
	runes := make([]rune, len(tokens))
	for i, tok := range tokens {
		if tok < 0 || tok > utf8.MaxRune || !utf8.ValidRune(rune(tok)) {
			return "", fmt.Errorf("tokenizer: token %d is not a code point: %w", tok, ErrUnknownToken)
		}
		runes[i] = rune(tok)
	}
	return string(runes), nil
}
