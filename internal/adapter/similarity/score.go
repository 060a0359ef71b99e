package similarity

import (
	"strconv"

	"plagcheck/internal/domain"
)

const (
	internalPrecision = 4
	outputPrecision   = 2
)

// Score averages Jaccard and cosine similarity of two token sequences.
// The result lies in [0,1] and is rounded to four decimal places.
func Score(a, b []string) float64 {
	return Compute(a, b).Score
}

// Compute returns both metrics and their average.
func Compute(a, b []string) domain.Similarity {
	jaccard := Jaccard(a, b)
	cosine := Cosine(a, b)
	return domain.Similarity{
		Jaccard: jaccard,
		Cosine:  cosine,
		Score:   Round((jaccard+cosine)/2, internalPrecision),
	}
}

// Round rounds x to the given number of decimal places using the shortest
// correctly rounded decimal form, so ties resolve on the exact binary value
// (0.125 -> 0.12, 0.005 -> 0.01).
func Round(x float64, places int) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return v
}

// Format renders a score with two decimal places.
func Format(score float64) string {
	return strconv.FormatFloat(score, 'f', outputPrecision, 64)
}
