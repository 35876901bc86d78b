package search

import (
	"context"
	"testing"

	"qa-mentor/config"
	apperrors "qa-mentor/errors"
	"qa-mentor/knowledge"

	"go.uber.org/zap"
)

type fakeOracle struct {
	answer      string
	answerErr   error
	verdict     Verdict
	answerCalls int
	verifyCalls int
}

func (f *fakeOracle) Answer(ctx context.Context, query string) (string, error) {
	f.answerCalls++
	return f.answer, f.answerErr
}

func (f *fakeOracle) VerifyRelevance(ctx context.Context, query, question, answer string) Verdict {
	f.verifyCalls++
	return f.verdict
}

func testIndex(t *testing.T) *knowledge.Index {
	t.Helper()
	topics := []*knowledge.Topic{
		{
			ID:   "basics",
			Name: "Basics",
			Entries: []knowledge.Entry{
				{
					Question: "what is regression testing",
					Answer:   "regression testing re-runs old checks",
					Keywords: []string{"regression"},
				},
				{
					Question: "what is smoke testing",
					Answer:   "smoke testing is a quick sanity pass",
					Keywords: []string{"smoke"},
				},
			},
		},
		{
			ID:   "extras",
			Name: "Extras",
			Entries: []knowledge.Entry{
				{Question: "shared alpha", Answer: "unrelated body"},
				{Question: "shared beta", Answer: "unrelated body"},
			},
		},
	}
	ix, err := knowledge.NewIndex(topics, []string{"basics", "extras"})
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}
	return ix
}

func testConfig() *config.Config {
	return &config.Config{
		MinRelevanceScore:       5.0,
		HighRelevanceScore:      8.0,
		MaxResults:              3,
		UseSynonyms:             true,
		UseOracleRelevanceCheck: true,
		OracleFallbackEnabled:   true,
	}
}

func newTestPipeline(t *testing.T, cfg *config.Config, oracle Oracle) *Pipeline {
	t.Helper()
	logger := zap.NewNop()
	scorer := NewScorer(NewExpander(map[string][]string{}), cfg.UseSynonyms)
	return NewPipeline(cfg, testIndex(t), scorer, oracle, logger)
}

func TestRetrieveRejectsShortQueries(t *testing.T) {
	// The oracle is configured and willing: only the reject gate stands
	// between it and the query.
	oracle := &fakeOracle{answer: "plausible oracle text"}
	p := newTestPipeline(t, testConfig(), oracle)

	for _, q := range []string{"", "a", "  a  ", "\t"} {
		d := p.Retrieve(context.Background(), q)
		if d.Kind != DecisionNotFound {
			t.Errorf("Retrieve(%q).Kind = %v, want NotFound", q, d.Kind)
		}
		if d.Answer != "" {
			t.Errorf("Retrieve(%q) carried an answer: %q", q, d.Answer)
		}
	}
	if oracle.answerCalls != 0 || oracle.verifyCalls != 0 {
		t.Errorf("rejected input must not reach the oracle: answer=%d verify=%d",
			oracle.answerCalls, oracle.verifyCalls)
	}
}

func TestRetrieveRejectsPunctuationOnlyQueries(t *testing.T) {
	oracle := &fakeOracle{answer: "plausible oracle text"}
	p := newTestPipeline(t, testConfig(), oracle)

	// Long enough to pass the length gate, but normalizes to nothing.
	if d := p.Retrieve(context.Background(), "?!...---"); d.Kind != DecisionNotFound {
		t.Errorf("Retrieve() = %v, want NotFound", d.Kind)
	}
	if oracle.answerCalls != 0 {
		t.Error("punctuation-only query must not reach the oracle")
	}
}

func TestRetrieveHighConfidenceSkipsOracle(t *testing.T) {
	oracle := &fakeOracle{verdict: VerdictNotRelevant}
	p := newTestPipeline(t, testConfig(), oracle)

	d := p.Retrieve(context.Background(), "what is regression testing")
	if d.Kind != DecisionCurated {
		t.Fatalf("Retrieve().Kind = %v, want Curated", d.Kind)
	}
	if !d.Verified {
		t.Error("high-confidence match must be treated as verified")
	}
	if d.Entry.Question != "what is regression testing" {
		t.Errorf("top entry = %q", d.Entry.Question)
	}
	if oracle.answerCalls != 0 || oracle.verifyCalls != 0 {
		t.Errorf("high confidence must skip the oracle: answer=%d verify=%d",
			oracle.answerCalls, oracle.verifyCalls)
	}
}

func TestRetrieveHighThresholdBoundary(t *testing.T) {
	cfg := testConfig()
	oracle := &fakeOracle{verdict: VerdictRelevant}
	p := newTestPipeline(t, cfg, oracle)

	topScore := p.Search("what is smoke testing")[0].Score

	// A top candidate at exactly the high threshold short-circuits
	// verification.
	cfg.HighRelevanceScore = topScore
	p.Retrieve(context.Background(), "what is smoke testing")
	if oracle.verifyCalls != 0 {
		t.Errorf("score == high threshold: verify calls = %d, want 0", oracle.verifyCalls)
	}

	// Just above the score it drops into the verification tier.
	cfg.HighRelevanceScore = topScore + 0.001
	d := p.Retrieve(context.Background(), "what is smoke testing")
	if oracle.verifyCalls != 1 {
		t.Errorf("score < high threshold: verify calls = %d, want 1", oracle.verifyCalls)
	}
	if d.Kind != DecisionCurated || !d.Verified {
		t.Errorf("oracle-confirmed candidate: got kind=%v verified=%v", d.Kind, d.Verified)
	}
}

func TestRetrieveVerificationOutcomes(t *testing.T) {
	tests := []struct {
		name         string
		verdict      Verdict
		answerErr    error
		wantKind     DecisionKind
		wantVerified bool
		wantAnswers  int
	}{
		{
			name:         "relevant_shows_curated",
			verdict:      VerdictRelevant,
			wantKind:     DecisionCurated,
			wantVerified: true,
			wantAnswers:  0,
		},
		{
			name:        "not_relevant_falls_back_to_generated",
			verdict:     VerdictNotRelevant,
			wantKind:    DecisionGenerated,
			wantAnswers: 1,
		},
		{
			name:         "not_relevant_degrades_to_unverified_curated",
			verdict:      VerdictNotRelevant,
			answerErr:    apperrors.ErrOracleUnavailable,
			wantKind:     DecisionCurated,
			wantVerified: false,
			wantAnswers:  1,
		},
		{
			name:        "unavailable_falls_back_to_generated",
			verdict:     VerdictUnavailable,
			wantKind:    DecisionGenerated,
			wantAnswers: 1,
		},
		{
			name:         "unavailable_degrades_to_unverified_curated",
			verdict:      VerdictUnavailable,
			answerErr:    apperrors.ErrOracleUnavailable,
			wantKind:     DecisionCurated,
			wantVerified: false,
			wantAnswers:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			oracle := &fakeOracle{
				verdict:   tt.verdict,
				answer:    "generated answer",
				answerErr: tt.answerErr,
			}
			p := newTestPipeline(t, cfg, oracle)
			// Push the top candidate into the ambiguous tier.
			cfg.HighRelevanceScore = p.Search("what is smoke testing")[0].Score + 1

			d := p.Retrieve(context.Background(), "what is smoke testing")
			if d.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", d.Kind, tt.wantKind)
			}
			if d.Kind == DecisionCurated && d.Verified != tt.wantVerified {
				t.Errorf("Verified = %v, want %v", d.Verified, tt.wantVerified)
			}
			if d.Kind == DecisionGenerated && d.Answer != "generated answer" {
				t.Errorf("Answer = %q", d.Answer)
			}
			if oracle.verifyCalls != 1 {
				t.Errorf("verify calls = %d, want 1", oracle.verifyCalls)
			}
			if oracle.answerCalls != tt.wantAnswers {
				t.Errorf("answer calls = %d, want %d", oracle.answerCalls, tt.wantAnswers)
			}
		})
	}
}

func TestRetrieveVerificationDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.UseOracleRelevanceCheck = false
	oracle := &fakeOracle{verdict: VerdictNotRelevant}
	p := newTestPipeline(t, cfg, oracle)
	cfg.HighRelevanceScore = p.Search("what is smoke testing")[0].Score + 1

	d := p.Retrieve(context.Background(), "what is smoke testing")
	if d.Kind != DecisionCurated || !d.Verified {
		t.Errorf("got kind=%v verified=%v, want pre-verified curated", d.Kind, d.Verified)
	}
	if oracle.verifyCalls != 0 || oracle.answerCalls != 0 {
		t.Error("disabled verification must not call the oracle")
	}
}

func TestRetrieveNoMatchFallsBackToOracle(t *testing.T) {
	oracle := &fakeOracle{answer: "oracle knows"}
	p := newTestPipeline(t, testConfig(), oracle)

	d := p.Retrieve(context.Background(), "completely unknown subject")
	if d.Kind != DecisionGenerated || d.Answer != "oracle knows" {
		t.Errorf("got kind=%v answer=%q, want generated oracle answer", d.Kind, d.Answer)
	}
	if oracle.verifyCalls != 0 {
		t.Error("nothing to verify when the kept set is empty")
	}
}

func TestRetrieveNoMatchNoOracle(t *testing.T) {
	oracle := &fakeOracle{answerErr: apperrors.ErrOracleUnavailable}
	p := newTestPipeline(t, testConfig(), oracle)

	if d := p.Retrieve(context.Background(), "completely unknown subject"); d.Kind != DecisionNotFound {
		t.Errorf("Kind = %v, want NotFound", d.Kind)
	}

	// A nil oracle behaves the same.
	p = newTestPipeline(t, testConfig(), nil)
	if d := p.Retrieve(context.Background(), "completely unknown subject"); d.Kind != DecisionNotFound {
		t.Errorf("nil oracle: Kind = %v, want NotFound", d.Kind)
	}
}

func TestSearchMinThresholdBoundary(t *testing.T) {
	cfg := testConfig()
	p := newTestPipeline(t, cfg, nil)

	results := p.Search("quick sanity pass")
	if len(results) != 1 {
		t.Fatalf("Search() returned %d results, want 1", len(results))
	}
	score := results[0].Score

	cfg.MinRelevanceScore = score
	if got := p.Search("quick sanity pass"); len(got) != 1 {
		t.Errorf("entry scoring exactly the threshold must be kept, got %d results", len(got))
	}

	cfg.MinRelevanceScore = score + 0.001
	if got := p.Search("quick sanity pass"); len(got) != 0 {
		t.Errorf("entry scoring below the threshold must be excluded, got %d results", len(got))
	}
}

func TestSearchRankingStableAcrossInvocations(t *testing.T) {
	p := newTestPipeline(t, testConfig(), nil)

	first := p.Search("shared")
	second := p.Search("shared")
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("Search() lengths = %d, %d, want 2, 2", len(first), len(second))
	}
	for i := range first {
		if first[i].Entry != second[i].Entry {
			t.Errorf("ordering differs between invocations at position %d", i)
		}
	}

	// Equal scores: index order decides, so "shared alpha" precedes
	// "shared beta".
	if first[0].Score != first[1].Score {
		t.Fatalf("fixture scores diverged: %v vs %v", first[0].Score, first[1].Score)
	}
	if first[0].Entry.Question != "shared alpha" {
		t.Errorf("tie broken against index order: top = %q", first[0].Entry.Question)
	}
}

func TestSearchMaxResults(t *testing.T) {
	cfg := testConfig()
	cfg.MaxResults = 1
	p := newTestPipeline(t, cfg, nil)

	if got := p.Search("shared"); len(got) != 1 {
		t.Errorf("Search() returned %d results, want MaxResults=1", len(got))
	}
}
