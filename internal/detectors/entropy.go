package detectors

import "math"

// DefaultThreshold is the entropy, in bits per character, a generic literal
// must reach to be reported.
const DefaultThreshold = 3.5

// Entropy returns the Shannon entropy of s in bits per character, computed
// over the rune frequency distribution of s.
func Entropy(s string) float64 {
	if s == "" {
		return 0
	}
	count := map[rune]int{}
	n := 0
	for _, r := range s {
		count[r]++
		n++
	}
	H := 0.0
	total := float64(n)
	for _, c := range count {
		p := float64(c) / total
		H += -p * math.Log2(p)
	}
	return H
}
