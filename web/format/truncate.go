package format

import (
	"strings"
	"unicode/utf8"

	"github.com/jdkato/prose/v2"
	"go.uber.org/zap"
)

// truncateAtSentenceBoundary cuts text to at most limit runes, preferring the
// last complete sentence that fits. Falls back to a plain rune cut when
// sentence segmentation fails or the first sentence is already too long.
func truncateAtSentenceBoundary(text string, limit int, logger *zap.Logger) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= limit {
		return text
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		logger.Warn("Sentence detection failed, truncating at character boundary", zap.Error(err))
		return cutRunes(text, limit)
	}

	var b strings.Builder
	kept := ""
	for i, sent := range doc.Sentences() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sent.Text)
		if utf8.RuneCountInString(b.String()) > limit {
			break
		}
		kept = b.String()
	}
	if kept == "" {
		return cutRunes(text, limit)
	}
	return kept
}

func cutRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit]))
}
