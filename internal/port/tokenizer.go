package port

// Segmenter splits cleaned text into raw word tokens.
type Segmenter interface {
	Segment(text string) []string

	// Name identifies the backend in reports.
	Name() string
}

// Tokenizer turns raw document text into a filtered token sequence.
type Tokenizer interface {
	Tokenize(text string) []string
}
