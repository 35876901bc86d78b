package search

import (
	"strings"

	"qa-mentor/knowledge"
)

// Phrase and token match weights. Tuned together with the relevance
// thresholds in config; changing one side changes ranking outcomes.
const (
	fullPhraseInQuestion   = 20.0
	threeTokensInQuestion  = 15.0
	twoTokensInQuestion    = 12.0
	fullPhraseInAnswer     = 10.0
	threeTokensInAnswer    = 7.0
	twoTokensInAnswer      = 5.0
	tokenInQuestion        = 5.0
	tokenInKeywords        = 8.0
	tokenInAnswer          = 2.0
	tokenInTopicName       = 3.0
	allTokensInQuestion    = 10.0
)

// Scorer computes a relevance score for one entry against a query. Scores are
// cumulative and unbounded; longer, more specific queries are rewarded, never
// penalized.
type Scorer struct {
	expander    *Expander
	useSynonyms bool
}

func NewScorer(expander *Expander, useSynonyms bool) *Scorer {
	return &Scorer{expander: expander, useSynonyms: useSynonyms}
}

// Score evaluates an entry against the query tokens in their original order.
// Synonym expansion applies only to per-token checks; phrase reconstruction
// and the completeness bonus use the original tokens.
func (s *Scorer) Score(queryTokens []string, entry *knowledge.Entry, topicName string) float64 {
	if len(queryTokens) == 0 {
		return 0
	}

	questionText := Normalize(entry.Question)
	answerText := Normalize(entry.Answer)
	topicText := Normalize(topicName)
	keywords := make(map[string]struct{}, len(entry.Keywords))
	for _, kw := range entry.Keywords {
		keywords[Normalize(kw)] = struct{}{}
	}

	fullPhrase := strings.Join(queryTokens, " ")
	var firstTwo, firstThree string
	if len(queryTokens) >= 2 {
		firstTwo = strings.Join(queryTokens[:2], " ")
	}
	if len(queryTokens) >= 3 {
		firstThree = strings.Join(queryTokens[:3], " ")
	}

	score := 0.0

	// Phrase match in the question text, highest tier wins.
	switch {
	case strings.Contains(questionText, fullPhrase):
		score += fullPhraseInQuestion
	case firstThree != "" && strings.Contains(questionText, firstThree):
		score += threeTokensInQuestion
	case firstTwo != "" && strings.Contains(questionText, firstTwo):
		score += twoTokensInQuestion
	}

	// Same tiering for the answer text, independent of the question clause.
	switch {
	case strings.Contains(answerText, fullPhrase):
		score += fullPhraseInAnswer
	case firstThree != "" && strings.Contains(answerText, firstThree):
		score += threeTokensInAnswer
	case firstTwo != "" && strings.Contains(answerText, firstTwo):
		score += twoTokensInAnswer
	}

	// Per-token checks over the expanded token set. All four checks are
	// independent and every token is evaluated.
	var tokenSet map[string]struct{}
	if s.useSynonyms && s.expander != nil {
		tokenSet = s.expander.Expand(queryTokens)
	} else {
		tokenSet = make(map[string]struct{}, len(queryTokens))
		for _, tok := range queryTokens {
			tokenSet[tok] = struct{}{}
		}
	}
	for tok := range tokenSet {
		if strings.Contains(questionText, tok) {
			score += tokenInQuestion
		}
		if _, ok := keywords[tok]; ok {
			score += tokenInKeywords
		}
		if strings.Contains(answerText, tok) {
			score += tokenInAnswer
		}
		if strings.Contains(topicText, tok) {
			score += tokenInTopicName
		}
	}

	// Completeness bonus: every original token appears in the question text.
	complete := true
	for _, tok := range queryTokens {
		if !strings.Contains(questionText, tok) {
			complete = false
			break
		}
	}
	if complete {
		score += allTokensInQuestion
	}

	return score
}
