package analyzer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	cjkPunctuation   = "，。、；：？！（）【】《》“”‘’"
)

var punctuation = buildRuneSet(asciiPunctuation + cjkPunctuation)

func buildRuneSet(chars string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return set
}

// IsPunctuation reports whether r is stripped during normalization.
func IsPunctuation(r rune) bool {
	_, ok := punctuation[r]
	return ok
}

// Clean NFC-normalizes text, removes punctuation and trims surrounding
// whitespace.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	text = norm.NFC.String(text)
	stripped := strings.Map(func(r rune) rune {
		if IsPunctuation(r) {
			return -1
		}
		return r
	}, text)
	return strings.TrimSpace(stripped)
}
