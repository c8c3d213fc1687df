// Package tokenizer implements text tokenization at three levels:
// per-character (CharTokenizer), per-byte (ByteTokenizer), and byte-level
// BPE with a learned merge vocabulary (BPETokenizer, trained by TrainBPE).
package tokenizer

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Tokenizer is the common interface for all tokenizers.
// CharTokenizer, ByteTokenizer and BPETokenizer implement this.
type Tokenizer interface {
	Encode(text string) []int
	Decode(tokens []int) (string, error)
}

var (
	// ErrInvalidUTF8 is returned by Decode when the reassembled byte
	// sequence is not valid UTF-8 (e.g. a truncated token stream that
	// splits a multi-byte rune).
	ErrInvalidUTF8 = errors.New("invalid UTF-8")

	// ErrUnknownToken is returned by Decode when a token ID is not in
	// the vocabulary: a token from a different tokenizer, or a
	// corrupted stream.
	ErrUnknownToken = errors.New("unknown token")
)

// textBytes converts text to its raw UTF-8 byte sequence.
func textBytes(text string) []byte {
	return []byte(text)
}

// bytesText converts raw bytes back to text, rejecting malformed UTF-8.
func bytesText(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("tokenizer: decoded bytes: %w", ErrInvalidUTF8)
	}
	return string(b), nil
}
