package tokenizer

import "fmt"

// Token ID layout:
//
//	0-255:  raw bytes (UTF-8 byte values)
//	256+:   BPE merged tokens, in the order they were learned
//
// Byte-level output (0-255) is always a valid subset of BPE output, so
// any byte sequence is encodable and decoding is lossless.
const (
	numBytes     = 256
	firstMergeID = 256
)

// Params is the immutable result of BPE training: the vocabulary and the
// ordered merge rules. The rule at merges[i] mints token firstMergeID+i.
// Params is never mutated after TrainBPE returns, so one value may back
// any number of BPETokenizers and concurrent Encode/Decode calls.
type Params struct {
	vocab  map[int][]byte // id -> byte sequence this token expands to
	merges []Pair         // ordered merge rules (index = priority)
}

// Vocab returns the byte expansion for a token ID.
func (p *Params) Vocab(id int) ([]byte, bool) {
	b, ok := p.vocab[id]
	return b, ok
}

// VocabSize returns the total vocabulary size (bytes + merges).
func (p *Params) VocabSize() int {
	return len(p.vocab)
}

// NumMerges returns the number of learned merge rules.
func (p *Params) NumMerges() int {
	return len(p.merges)
}

// Merges returns a copy of the merge rules in the order they were
// learned. Rule i produced token firstMergeID+i.
func (p *Params) Merges() []Pair {
	out := make([]Pair, len(p.merges))
	copy(out, p.merges)
	return out
}

// newParams seeds the 256 single-byte tokens.
func newParams() *Params {
	p := &Params{
		vocab: make(map[int][]byte, 512),
	}
	for i := 0; i < numBytes; i++ {
		p.vocab[i] = []byte{byte(i)}
	}
	return p
}

// TrainBPE learns numMerges merge rules from the corpus.
//
// The corpus is converted to byte tokens, then repeatedly the most
// frequent adjacent pair is merged into a fresh token. When several pairs
// share the maximum count, the one first encountered scanning the
// sequence left to right wins, which keeps training deterministic for a
// given corpus. Training stops early once the working sequence has fewer
// than two tokens; an empty corpus yields the bare 256-token vocabulary.
func TrainBPE(corpus string, numMerges int) *Params {
	p := newParams()

	raw := textBytes(corpus)
	ids := make([]int, len(raw))
	for i, b := range raw {
		ids[i] = int(b)
	}

	for m := 0; m < numMerges && len(ids) >= 2; m++ {
		counts, order := countPairs(ids)
		if len(counts) == 0 {
			break
		}
		best, _ := mostFrequent(counts, order)

		newID := firstMergeID + len(p.merges)
		p.vocab[newID] = concatBytes(p.vocab[best.A], p.vocab[best.B])
		p.merges = append(p.merges, best)

		ids = mergePair(ids, best, newID)
	}

	return p
}

// BPETokenizer encodes and decodes text with a learned merge vocabulary.
// It borrows its Params and holds no other state.
type BPETokenizer struct {
	params *Params
}

// NewBPETokenizer creates a tokenizer over previously trained params.
func NewBPETokenizer(params *Params) *BPETokenizer {
	return &BPETokenizer{params: params}
}

// Encode converts text to BPE token IDs.
//
// The text starts as one token per byte, then every merge rule is applied
// in training order. Order matters: later rules were learned against a
// corpus that already had the earlier rules applied, so replaying them
// out of order can produce a different, non-canonical segmentation.
func (t *BPETokenizer) Encode(text string) []int {
	raw := textBytes(text)
	if len(raw) == 0 {
		return nil
	}

	ids := make([]int, len(raw))
	for i, b := range raw {
		ids[i] = int(b)
	}

	for i, merge := range t.params.merges {
		ids = mergePair(ids, merge, firstMergeID+i)
	}

	return ids
}

// Decode converts token IDs back to text. It fails with ErrUnknownToken
// for an ID the tokenizer was never trained with, and with ErrInvalidUTF8
// when the concatenated expansions do not form valid UTF-8.
func (t *BPETokenizer) Decode(tokens []int) (string, error) {
	var buf []byte
	for _, id := range tokens {
		b, ok := t.params.vocab[id]
		if !ok {
			return "", fmt.Errorf("tokenizer: token %d: %w", id, ErrUnknownToken)
		}
		buf = append(buf, b...)
	}
	return bytesText(buf)
}

// TokenBytes returns the raw byte expansion for a token ID.
func (t *BPETokenizer) TokenBytes(id int) ([]byte, bool) {
	return t.params.Vocab(id)
}

// VocabSize returns the total vocabulary size.
func (t *BPETokenizer) VocabSize() int {
	return t.params.VocabSize()
}

// NumMerges returns the number of learned merge rules.
func (t *BPETokenizer) NumMerges() int {
	return t.params.NumMerges()
}
