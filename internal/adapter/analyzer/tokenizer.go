package analyzer

import (
	"strings"

	"plagcheck/internal/port"
)

// Tokenizer normalizes text, segments it and drops stopwords.
type Tokenizer struct {
	segmenter port.Segmenter
}

// NewTokenizer creates a new Tokenizer over the given backend.
func NewTokenizer(segmenter port.Segmenter) *Tokenizer {
	return &Tokenizer{segmenter: segmenter}
}

// Backend returns the segmenter name.
func (t *Tokenizer) Backend() string {
	return t.segmenter.Name()
}

// Tokenize returns the ordered token sequence of text. Empty or
// punctuation-only input yields an empty, non-nil slice.
func (t *Tokenizer) Tokenize(text string) []string {
	cleaned := Clean(text)
	if cleaned == "" {
		return []string{}
	}

	words := t.segmenter.Segment(cleaned)
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if strings.TrimSpace(word) == "" {
			continue
		}
		if IsStopword(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}
