// Package security filters user input before it reaches the retrieval
// pipeline or the oracle.
package security

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"qa-mentor/config"
	apperrors "qa-mentor/errors"

	"go.uber.org/zap"
)

// Prompt-injection markers, Russian and English. Matched against the
// sanitized input; a hit rejects the whole message.
var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore\s+(all\s+)?(previous|prior|above)\s+(instructions|prompts?)`),
	regexp.MustCompile(`(?i)disregard\s+(all\s+)?(previous|prior)\s+instructions`),
	regexp.MustCompile(`(?i)system\s*prompt`),
	regexp.MustCompile(`(?i)you\s+are\s+now\s+`),
	regexp.MustCompile(`(?i)act\s+as\s+(a\s+)?(?:jailbreak|dan)`),
	regexp.MustCompile(`(?i)забудь\s+(все\s+|всё\s+)?(предыдущие\s+)?инструкции`),
	regexp.MustCompile(`(?i)игнорируй\s+(все\s+)?(предыдущие\s+)?(инструкции|указания)`),
	regexp.MustCompile(`(?i)новые?\s+инструкци[яи]`),
	regexp.MustCompile(`(?i)системный\s+промпт`),
}

// Characters with no place in a plain-text question. Stripped, not rejected:
// pasted text often carries stray brackets.
var suspiciousChars = regexp.MustCompile("[<>{}\\[\\]\\\\|`]")

var markdownEscaper = strings.NewReplacer(
	"*", "\\*",
	"_", "\\_",
	"`", "\\`",
	"[", "\\[",
	"]", "\\]",
	"(", "\\(",
	")", "\\)",
)

// Filter validates and cleans user input according to the configured limits.
type Filter struct {
	cfg    *config.Config
	logger *zap.Logger
}

func NewFilter(cfg *config.Config, logger *zap.Logger) *Filter {
	return &Filter{cfg: cfg, logger: logger}
}

// SanitizeQuery cleans a chat message, bounded by MAX_QUERY_LENGTH.
func (f *Filter) SanitizeQuery(input string) (string, error) {
	return f.sanitize(input, f.cfg.MaxQueryLength)
}

// SanitizeSearch cleans an explicit search string, bounded by
// MAX_SEARCH_LENGTH.
func (f *Filter) SanitizeSearch(input string) (string, error) {
	return f.sanitize(input, f.cfg.MaxSearchLength)
}

func (f *Filter) sanitize(input string, maxLen int) (string, error) {
	cleaned := strings.ReplaceAll(input, "\x00", "")
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	if cleaned == "" {
		return "", apperrors.WrapError(apperrors.ErrInvalidInput, "Пустое сообщение. Напишите вопрос.")
	}
	if maxLen > 0 && utf8.RuneCountInString(cleaned) > maxLen {
		return "", apperrors.WrapErrorf(apperrors.ErrInvalidInput,
			"Сообщение слишком длинное (максимум %d символов).", maxLen)
	}

	if !f.cfg.EnableInputSanitization {
		return cleaned, nil
	}

	if f.cfg.EnableInjectionDetection {
		for _, pattern := range injectionPatterns {
			if pattern.MatchString(cleaned) {
				f.logger.Warn("Injection attempt blocked", zap.String("pattern", pattern.String()))
				return "", apperrors.WrapError(apperrors.ErrInvalidInput,
					"Сообщение содержит недопустимые конструкции.")
			}
		}
	}

	if run, r := longestRun(cleaned); run > 10 {
		f.logger.Warn("Suspicious repeated input blocked",
			zap.String("rune", string(r)), zap.Int("run", run))
		return "", apperrors.WrapError(apperrors.ErrInvalidInput,
			"Сообщение выглядит как спам.")
	}

	cleaned = suspiciousChars.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "", apperrors.WrapError(apperrors.ErrInvalidInput, "Пустое сообщение. Напишите вопрос.")
	}
	return cleaned, nil
}

// longestRun returns the longest run of a single repeated rune. Go's regexp
// has no backreferences, so the repeated-character check is a scan.
func longestRun(s string) (int, rune) {
	var (
		best, cur int
		bestRune  rune
		prev      rune = -1
	)
	for _, r := range s {
		if r == prev {
			cur++
		} else {
			cur = 1
			prev = r
		}
		if cur > best {
			best = cur
			bestRune = r
		}
	}
	return best, bestRune
}

// EscapeMarkdown neutralizes markdown control characters in text echoed back
// to the user.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
