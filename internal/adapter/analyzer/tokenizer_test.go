package analyzer

import (
	"reflect"
	"strings"
	"testing"
)

// splitSegmenter splits on single spaces without any normalization.
type splitSegmenter struct{}

func (splitSegmenter) Segment(text string) []string { return strings.Split(text, " ") }
func (splitSegmenter) Name() string                 { return "split" }

func TestTokenizer_Tokenize(t *testing.T) {
	tok := NewTokenizer(NewWhitespaceSegmenter(false))

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty",
			input: "",
			want:  []string{},
		},
		{
			name:  "punctuation only",
			input: "!?，。（）",
			want:  []string{},
		},
		{
			name:  "stop words only",
			input: "the and very today",
			want:  []string{},
		},
		{
			name:  "basic tokens",
			input: "Detect copied paragraphs quickly",
			want:  []string{"detect", "copied", "paragraphs", "quickly"},
		},
		{
			name:  "ascii punctuation stripped",
			input: "fix: the session-expiry bug!",
			want:  []string{"fix", "sessionexpiry", "bug"},
		},
		{
			name:  "full-width punctuation stripped",
			input: "论文，查重。“工具”",
			want:  []string{"论文查重工具"},
		},
		{
			name:  "duplicates preserved in order",
			input: "copy paste copy",
			want:  []string{"copy", "paste", "copy"},
		},
		{
			name:  "chinese stopwords removed",
			input: "我 今天 写 论文 了",
			want:  []string{"写", "论文"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q)\n  got  %v\n  want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizer_EmptyInputNonNil(t *testing.T) {
	tok := NewTokenizer(NewWhitespaceSegmenter(false))

	tokens := tok.Tokenize("")
	if tokens == nil {
		t.Fatal("expected empty non-nil slice")
	}
	if len(tokens) != 0 {
		t.Errorf("expected 0 tokens for empty input, got %d", len(tokens))
	}
}

func TestTokenizer_NeverEmitsBlankOrStopwords(t *testing.T) {
	// splitSegmenter keeps empty fields, so the filter has to drop them.
	tok := NewTokenizer(splitSegmenter{})

	inputs := []string{
		"a  b   c",
		"的 是  在 the is",
		"  leading and trailing  ",
		"tab\tseparated words　ideographic",
		"，， 。。 word",
	}

	for _, input := range inputs {
		for _, token := range tok.Tokenize(input) {
			if strings.TrimSpace(token) == "" {
				t.Errorf("Tokenize(%q) emitted blank token %q", input, token)
			}
			if IsStopword(token) {
				t.Errorf("Tokenize(%q) emitted stopword %q", input, token)
			}
		}
	}
}

func TestTokenizer_Deterministic(t *testing.T) {
	tok := NewTokenizer(NewWhitespaceSegmenter(true))
	text := "Running dogs are running; the dogs ran."

	first := tok.Tokenize(text)
	for i := 0; i < 5; i++ {
		if got := tok.Tokenize(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: got %v, want %v", i, got, first)
		}
	}
}

func TestTokenizer_Backend(t *testing.T) {
	tok := NewTokenizer(NewWhitespaceSegmenter(false))
	if tok.Backend() != "whitespace" {
		t.Errorf("expected whitespace backend, got %s", tok.Backend())
	}
}

func TestWhitespaceSegmenter_Stemming(t *testing.T) {
	seg := NewWhitespaceSegmenter(true)

	words := seg.Segment("running dogs")
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %v", words)
	}
	if words[0] != "run" {
		t.Errorf("expected 'running' to be stemmed to 'run', got %q", words[0])
	}
	if words[1] != "dog" {
		t.Errorf("expected 'dogs' to be stemmed to 'dog', got %q", words[1])
	}
}

func TestWhitespaceSegmenter_Lowercase(t *testing.T) {
	seg := NewWhitespaceSegmenter(false)

	words := seg.Segment("Hello WORLD Ünïcode")
	want := []string{"hello", "world", "ünïcode"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("got %v, want %v", words, want)
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"  hello, world!  ", "hello world"},
		{"《论文》【摘要】", "论文摘要"},
		{"(a+b)*c", "abc"},
		// Decomposed e + combining acute becomes the composed form.
		{"cafe\u0301", "caf\u00e9"},
	}

	for _, tt := range tests {
		if got := Clean(tt.input); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStopwords(t *testing.T) {
	for _, w := range []string{"的", "非常", "今天", "the", "very"} {
		if !IsStopword(w) {
			t.Errorf("expected %q to be a stopword", w)
		}
	}
	for _, w := range []string{"论文", "The", "plagiarism", ""} {
		if IsStopword(w) {
			t.Errorf("expected %q not to be a stopword", w)
		}
	}

	list := Stopwords()
	list[0] = "mutated"
	if IsStopword("mutated") {
		t.Error("Stopwords() must return a copy")
	}
}

func TestDictSegmenter(t *testing.T) {
	if testing.Short() {
		t.Skip("dictionary load is slow")
	}
	seg, err := NewDictSegmenter()
	if err != nil {
		t.Fatalf("NewDictSegmenter: %v", err)
	}

	text := "我来到北京清华大学"
	words := seg.Segment(text)
	if len(words) < 2 {
		t.Fatalf("expected the sentence to be split into words, got %v", words)
	}
	if strings.Join(words, "") != text {
		t.Errorf("precise mode must not overlap or drop text: %v", words)
	}

	tok := NewTokenizer(seg)
	for _, token := range tok.Tokenize("我今天来到北京，很开心。") {
		if IsStopword(token) || strings.TrimSpace(token) == "" {
			t.Errorf("unexpected token %q", token)
		}
	}
}

func BenchmarkTokenize(b *testing.B) {
	tok := NewTokenizer(NewWhitespaceSegmenter(false))
	text := strings.Repeat("Students copied the essay, changed a few words and submitted it again. ", 200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tok.Tokenize(text)
	}
}
