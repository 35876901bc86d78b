package search

import (
	"strings"
	"unicode"
)

// Normalize prepares text for matching: locale-invariant lowercasing, every
// character that is not a letter, digit or whitespace replaced with a space,
// whitespace runs collapsed, leading/trailing whitespace trimmed. Unicode
// letters (Cyrillic included) are letters, not punctuation. Total and
// idempotent; empty input yields empty output.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize normalizes text and splits it into query tokens.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}
