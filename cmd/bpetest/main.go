package main

import (
	"fmt"
	"os"
	"time"

	"github.com/aasthavar/cs336/tokenizer"
)

func main() {
	fmt.Println("=== BPE Tokenizer Demo ===")

	// --- Load corpus ---
	corpus := fallbackCorpus()
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Printf("Corpus file not found: %v\nUsing fallback...\n", err)
		} else {
			corpus = string(data)
		}
	}
	fmt.Printf("Corpus: %d bytes\n\n", len(corpus))

	// --- Training ---
	fmt.Println("--- Training (100 merges) ---")
	start := time.Now()
	params := tokenizer.TrainBPE(corpus, 100)
	tok := tokenizer.NewBPETokenizer(params)
	fmt.Printf("Vocab: %d  Merges: %d  Time: %v\n\n",
		tok.VocabSize(), tok.NumMerges(), time.Since(start))

	// --- Multilingual roundtrip ---
	fmt.Println("--- Roundtrip ---")
	tests := []struct {
		lang, text string
	}{
		{"EN", "Artificial intelligence is transforming every industry"},
		{"EN", "Matrix multiplication must be cache-friendly"},
		{"RU", "Искусственный интеллект меняет мир"},
		{"RU", "Нейронные сети способны обрабатывать тексты"},
		{"AZ", "Süni intellekt hər bir sənayeni dəyişdirir"},
		{"TR", "Yapay zeka her sektörü dönüştürüyor"},
		{"MX", "Go + нейросети + süni intellekt = gələcək"},
		{"--", ""},
		{"--", "a"},
	}

	allOK := true
	for _, tc := range tests {
		toks := tok.Encode(tc.text)
		dec, err := tok.Decode(toks)
		ok := err == nil && dec == tc.text
		if !ok {
			allOK = false
		}
		fmt.Printf("  %s [%2s] %-45s → %3d tok (%.1fx)\n",
			mark(ok), tc.lang, trunc(tc.text, 42), len(toks),
			tokenizer.CompressionRatio(tc.text, toks))
	}
	fmt.Printf("  Result: %s\n\n", passOrFail(allOK))

	// --- Token details ---
	fmt.Println("--- Token Details ---")
	for _, s := range []string{"neural network", "нейронная сеть", "sinir ağları"} {
		toks := tok.Encode(s)
		fmt.Printf("  %q → %d tok: ", s, len(toks))
		for i, id := range toks {
			if i > 0 {
				fmt.Print(" | ")
			}
			if b, ok := tok.TokenBytes(id); ok {
				fmt.Printf("%q", string(b))
			}
		}
		fmt.Println()
	}
	fmt.Println()

	// --- Baselines vs BPE on the full corpus ---
	fmt.Println("--- Compression ---")
	byteTok := tokenizer.NewByteTokenizer()
	charTok := tokenizer.NewCharTokenizer()
	report := []struct {
		name string
		t    tokenizer.Tokenizer
	}{
		{"char", charTok},
		{"byte", byteTok},
		{"bpe ", tok},
	}
	for _, r := range report {
		toks := r.t.Encode(corpus)
		fmt.Printf("  [%s] %6d bytes → %6d tokens (%.2f bytes/tok)\n",
			r.name, len(corpus), len(toks), tokenizer.CompressionRatio(corpus, toks))
	}
	fmt.Println()

	// --- Larger vocab ---
	fmt.Println("--- 200 Merges ---")
	start = time.Now()
	tok2 := tokenizer.NewBPETokenizer(tokenizer.TrainBPE(corpus, 200))
	full := tok2.Encode(corpus)
	dec, err := tok2.Decode(full)
	fmt.Printf("  Time: %v\n", time.Since(start))
	fmt.Printf("  %d bytes → %d tokens (%.2fx) roundtrip=%s\n\n",
		len(corpus), len(full), tokenizer.CompressionRatio(corpus, full),
		mark(err == nil && dec == corpus))

	fmt.Println("=== Done ===")
}

// --- Helpers ---

func fallbackCorpus() string {
	return `Artificial intelligence transforms industries worldwide.
Искусственный интеллект меняет мир быстрее чем любая технология.
Süni intellekt hər bir sənayeni dəyişdirir və yeni imkanlar yaradır.
Yapay zeka her sektörü dönüştürüyor ve yeni fırsatlar yaratıyor.
Machine learning, нейронные сети, maşın öyrənmə, makine öğrenimi.
Neural networks learn by gradient descent through backpropagation.
Градиентный спуск основной метод оптимизации нейронных сетей.
Gradyan iniş sinir ağlarının temel optimizasyon yöntemidir.`
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func passOrFail(ok bool) string {
	if ok {
		return "ALL PASSED ✓"
	}
	return "SOME FAILED ✗"
}

func trunc(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
