package analyzer

import (
	"fmt"
	"strings"

	"github.com/go-ego/gse"
	"github.com/reiver/go-porterstemmer"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"plagcheck/config"
	"plagcheck/internal/port"
)

// NewSegmenter builds the backend named in cfg.
func NewSegmenter(cfg config.TokenizerConfig) (port.Segmenter, error) {
	switch cfg.Backend {
	case config.BackendDict, "":
		return NewDictSegmenter()
	case config.BackendWhitespace:
		return NewWhitespaceSegmenter(cfg.Stemming), nil
	default:
		return nil, fmt.Errorf("unsupported tokenizer backend: %s", cfg.Backend)
	}
}

// DictSegmenter performs dictionary-based word segmentation in precise
// mode: the best non-overlapping path through the word graph, with HMM
// recognition for out-of-vocabulary words.
type DictSegmenter struct {
	seg gse.Segmenter
}

// NewDictSegmenter loads the embedded dictionary.
func NewDictSegmenter() (*DictSegmenter, error) {
	d := &DictSegmenter{}
	if err := d.seg.LoadDictEmbed(); err != nil {
		return nil, fmt.Errorf("load embedded dictionary: %w", err)
	}
	return d, nil
}

// Segment splits text into words.
func (d *DictSegmenter) Segment(text string) []string {
	return d.seg.Cut(text, true)
}

// Name returns "dict".
func (d *DictSegmenter) Name() string {
	return config.BackendDict
}

// WhitespaceSegmenter splits on Unicode whitespace and lowercases each word.
type WhitespaceSegmenter struct {
	stem bool
}

// NewWhitespaceSegmenter creates a whitespace splitter, optionally applying
// Porter stemming to each word.
func NewWhitespaceSegmenter(stemming bool) *WhitespaceSegmenter {
	return &WhitespaceSegmenter{stem: stemming}
}

// Segment splits text into lowercase words.
func (s *WhitespaceSegmenter) Segment(text string) []string {
	fields := strings.Fields(text)
	// Casers are stateful; one per call.
	lower := cases.Lower(language.Und)

	words := make([]string, 0, len(fields))
	for _, field := range fields {
		word := lower.String(field)
		if s.stem {
			word = stem(word)
		}
		words = append(words, word)
	}
	return words
}

// Name returns "whitespace".
func (s *WhitespaceSegmenter) Name() string {
	return config.BackendWhitespace
}

func stem(word string) string {
	if stemmed := porterstemmer.StemString(word); stemmed != "" {
		return stemmed
	}
	return word
}
