package tokenizer

// Pair is two adjacent tokens considered as a unit for merging.
type Pair struct {
	A, B int
}

// countPairs counts every adjacent pair in ids. It returns the counts and
// the pairs in first-occurrence order (the order each pair was first seen
// scanning left to right). Selection iterates that order, never the map,
// so results are reproducible. Sequences of length 0 or 1 yield no pairs.
func countPairs(ids []int) (map[Pair]int, []Pair) {
	counts := make(map[Pair]int)
	order := make([]Pair, 0, 64)
	for i := 0; i < len(ids)-1; i++ {
		p := Pair{ids[i], ids[i+1]}
		if counts[p] == 0 {
			order = append(order, p)
		}
		counts[p]++
	}
	return counts, order
}

// mostFrequent picks the pair with the highest count. Ties go to the pair
// that appeared first in the counting scan.
func mostFrequent(counts map[Pair]int, order []Pair) (Pair, int) {
	var best Pair
	bestCount := 0
	for _, p := range order {
		if counts[p] > bestCount {
			best = p
			bestCount = counts[p]
		}
	}
	return best, bestCount
}

// mergePair scans ids left to right and replaces every non-overlapping
// occurrence of p with newID. A run like x,x,x with pair (x,x) merges
// leftmost-first into m,x. Returns the original slice untouched if the
// pair is not present (zero allocation).
func mergePair(ids []int, p Pair, newID int) []int {
	found := false
	for i := 0; i < len(ids)-1; i++ {
		if ids[i] == p.A && ids[i+1] == p.B {
			found = true
			break
		}
	}
	if !found {
		return ids
	}

	out := make([]int, 0, len(ids))
	i := 0
	for i < len(ids) {
		if i+1 < len(ids) && ids[i] == p.A && ids[i+1] == p.B {
			out = append(out, newID)
			i += 2
		} else {
			out = append(out, ids[i])
			i++
		}
	}
	return out
}

// concatBytes concatenates two byte slices into a new slice.
func concatBytes(a, b []byte) []byte {
	c := make([]byte, len(a)+len(b))
	copy(c, a)
	copy(c[len(a):], b)
	return c
}
