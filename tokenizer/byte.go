package tokenizer

import "fmt"

// ByteTokenizer is the simplest possible tokenizer: each byte is a token.
// Vocab size = 256. No subword merging.
type ByteTokenizer struct{}

func NewByteTokenizer() *ByteTokenizer {
	return &ByteTokenizer{}
}

// Encode converts a string to one token per UTF-8 byte.
func (t *ByteTokenizer) Encode(text string) []int {
	raw := textBytes(text)
	tokens := make([]int, len(raw))
	for i, b := range raw {
		tokens[i] = int(b)
	}
	return tokens
}

// Decode converts byte tokens back to a string. IDs outside 0-255 fail
// with ErrUnknownToken; byte sequences that do not form valid UTF-8 fail
// with ErrInvalidUTF8.
func (t *ByteTokenizer) Decode(tokens []int) (string, error) {
	raw := make([]byte, len(tokens))
	for i, tok := range tokens {
		if tok < 0 || tok > 255 {
			return "", fmt.Errorf("tokenizer: token %d out of byte range: %w", tok, ErrUnknownToken)
		}
		raw[i] = byte(tok)
	}
	return bytesText(raw)
}

// VocabSize returns the vocabulary size, always 256.
func (t *ByteTokenizer) VocabSize() int {
	return numBytes
}
