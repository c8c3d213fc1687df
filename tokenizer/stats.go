package tokenizer

// CompressionRatio reports bytes of text per token: len(text in bytes)
// divided by len(tokens). Returns 0 for an empty token sequence.
func CompressionRatio(text string, tokens []int) float64 {
	if len(tokens) == 0 {
		return 0
	}
	return float64(len(textBytes(text))) / float64(len(tokens))
}
