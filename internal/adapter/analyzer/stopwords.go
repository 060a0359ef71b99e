package analyzer

import "sort"

// stopwords is read-only after package initialization.
var stopwords = buildStopwords()

func buildStopwords() map[string]struct{} {
	stops := []string{
		// Chinese function words.
		"的", "是", "在", "我", "要", "去", "今天", "晚上",
		"和", "及", "与", "了", "就", "也", "很", "非常",
		// Counterparts for space-delimited text.
		"the", "is", "at", "in", "i", "want", "go", "today",
		"tonight", "and", "with", "of", "also", "just", "very",
	}
	m := make(map[string]struct{}, len(stops))
	for _, s := range stops {
		m[s] = struct{}{}
	}
	return m
}

// IsStopword reports whether word is excluded from token sequences.
// Matching is exact.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}

// Stopwords returns a sorted copy of the stopword set.
func Stopwords() []string {
	out := make([]string, 0, len(stopwords))
	for w := range stopwords {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
