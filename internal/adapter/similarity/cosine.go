package similarity

import (
	"math"
	"sort"
)

// Frequencies counts occurrences of each token.
func Frequencies(tokens []string) map[string]int {
	freq := make(map[string]int, len(tokens))
	for _, t := range tokens {
		freq[t]++
	}
	return freq
}

// Vocabulary returns the sorted union of the keys of both frequency maps.
func Vocabulary(freqA, freqB map[string]int) []string {
	vocab := make([]string, 0, len(freqA)+len(freqB))
	for word := range freqA {
		vocab = append(vocab, word)
	}
	for word := range freqB {
		if _, seen := freqA[word]; !seen {
			vocab = append(vocab, word)
		}
	}
	sort.Strings(vocab)
	return vocab
}

// vectorize lays freq out over vocab, 0 for absent words.
func vectorize(freq map[string]int, vocab []string) []float64 {
	vec := make([]float64, len(vocab))
	for i, word := range vocab {
		vec[i] = float64(freq[word])
	}
	return vec
}

// Cosine computes the cosine of the angle between the term-frequency
// vectors of a and b, clamped to [0,1] and rounded to four decimal places.
// Two zero vectors score 1.0; exactly one zero vector scores 0.0.
func Cosine(a, b []string) float64 {
	freqA := Frequencies(a)
	freqB := Frequencies(b)
	vocab := Vocabulary(freqA, freqB)

	vecA := vectorize(freqA, vocab)
	vecB := vectorize(freqB, vocab)

	var dot, sumA, sumB float64
	for i := range vocab {
		dot += vecA[i] * vecB[i]
		sumA += vecA[i] * vecA[i]
		sumB += vecB[i] * vecB[i]
	}
	normA := math.Sqrt(sumA)
	normB := math.Sqrt(sumB)

	if normA == 0 && normB == 0 {
		return 1.0
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}

	return Round(clamp(dot/(normA*normB)), internalPrecision)
}

func clamp(v float64) float64 {
	return math.Min(math.Max(v, 0.0), 1.0)
}
