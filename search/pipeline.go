package search

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"qa-mentor/config"
	apperrors "qa-mentor/errors"
	"qa-mentor/knowledge"

	"go.uber.org/zap"
)

var errOracleNotConfigured = apperrors.WrapError(apperrors.ErrOracleUnavailable, "oracle not configured")

// Verdict is the three-state outcome of an oracle relevance check. Modeled as
// a tagged value rather than a nullable bool so the unavailable branch is
// compile-time checked.
type Verdict int

const (
	VerdictUnavailable Verdict = iota
	VerdictRelevant
	VerdictNotRelevant
)

func (v Verdict) String() string {
	switch v {
	case VerdictRelevant:
		return "relevant"
	case VerdictNotRelevant:
		return "not_relevant"
	default:
		return "unavailable"
	}
}

// Oracle is the external text service the pipeline consults when curated
// confidence is insufficient. Both calls are blocking network operations;
// implementations must bound them with a timeout and report failure rather
// than hang.
type Oracle interface {
	// Answer generates a free-form answer to the raw query. A non-nil error
	// means the oracle is unavailable or declined.
	Answer(ctx context.Context, query string) (string, error)

	// VerifyRelevance judges whether a curated candidate answers the query.
	VerifyRelevance(ctx context.Context, query, question, answer string) Verdict
}

// DecisionKind enumerates the pipeline outcomes.
type DecisionKind int

const (
	// DecisionNotFound means neither the index nor the oracle produced an
	// answer. Covers rejected input as well; rejection is not an error.
	DecisionNotFound DecisionKind = iota

	// DecisionCurated means a knowledge base entry should be shown.
	DecisionCurated

	// DecisionGenerated means the oracle's generative answer should be shown.
	DecisionGenerated
)

// Decision is the pipeline's result. Exactly one of the variants applies:
// Topic/Entry are set for DecisionCurated, Answer for DecisionGenerated.
type Decision struct {
	Kind     DecisionKind
	Topic    *knowledge.Topic
	Entry    *knowledge.Entry
	Answer   string
	Score    float64
	Verified bool
}

// ScoredResult is a transient ranking value, produced fresh per query.
type ScoredResult struct {
	Score float64
	Topic *knowledge.Topic
	Entry *knowledge.Entry
}

// Pipeline orchestrates normalize → expand → score → rank → tiered decision
// over the knowledge index, consulting the oracle for ambiguous-confidence
// matches. Stateless per call; safe for concurrent use.
type Pipeline struct {
	cfg    *config.Config
	index  *knowledge.Index
	scorer *Scorer
	oracle Oracle
	logger *zap.Logger
}

// NewPipeline wires the pipeline. The oracle may be nil, in which case every
// oracle-dependent tier degrades as if the oracle were unavailable.
func NewPipeline(cfg *config.Config, index *knowledge.Index, scorer *Scorer, oracle Oracle, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		index:  index,
		scorer: scorer,
		oracle: oracle,
		logger: logger,
	}
}

// Search runs the retrieval stage only: normalize, score every entry, keep
// those at or above the minimum relevance threshold, rank them descending
// with index order breaking ties, and cap the result at MaxResults.
func (p *Pipeline) Search(rawQuery string) []ScoredResult {
	trimmed := strings.TrimSpace(rawQuery)
	if utf8.RuneCountInString(trimmed) < 2 {
		return nil
	}

	queryTokens := Tokenize(trimmed)
	if len(queryTokens) == 0 {
		return nil
	}

	var results []ScoredResult
	for _, ref := range p.index.Entries() {
		score := p.scorer.Score(queryTokens, ref.Entry, ref.Topic.Name)
		if score >= p.cfg.MinRelevanceScore {
			results = append(results, ScoredResult{Score: score, Topic: ref.Topic, Entry: ref.Entry})
		}
	}

	// Stable sort keeps the index's natural iteration order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if p.cfg.MaxResults > 0 && len(results) > p.cfg.MaxResults {
		results = results[:p.cfg.MaxResults]
	}
	return results
}

// Retrieve runs the full tiered decision. Oracle failure is never fatal: every
// path degrades in the order generative fallback → curated top match →
// not found, and always terminates in one of the three decision variants.
func (p *Pipeline) Retrieve(ctx context.Context, rawQuery string) Decision {
	// Rejected input is NotFound outright. Only a scoreable query with an
	// empty kept set may fall through to the generative fallback below.
	trimmed := strings.TrimSpace(rawQuery)
	if utf8.RuneCountInString(trimmed) < 2 || len(Tokenize(trimmed)) == 0 {
		return Decision{Kind: DecisionNotFound}
	}

	results := p.Search(rawQuery)

	if len(results) == 0 {
		if answer, err := p.askOracle(ctx, rawQuery); err == nil {
			return Decision{Kind: DecisionGenerated, Answer: answer}
		}
		return Decision{Kind: DecisionNotFound}
	}

	top := results[0]

	// High confidence: show the curated answer without paying for a
	// verification call.
	if top.Score >= p.cfg.HighRelevanceScore {
		return curated(top, true)
	}

	if !p.cfg.UseOracleRelevanceCheck {
		// Verification disabled: any kept candidate counts as pre-verified.
		return curated(top, true)
	}

	verdict := p.verifyRelevance(ctx, rawQuery, top)
	if verdict == VerdictRelevant {
		return curated(top, true)
	}

	// Not verified (oracle said no, or could not answer): prefer a generative
	// answer, but an unverified curated answer still beats nothing.
	if answer, err := p.askOracle(ctx, rawQuery); err == nil {
		return Decision{Kind: DecisionGenerated, Answer: answer}
	}
	if verdict == VerdictUnavailable {
		p.logger.Warn("Oracle unavailable, showing unverified curated answer",
			zap.Float64("score", top.Score))
	}
	return curated(top, false)
}

func curated(r ScoredResult, verified bool) Decision {
	return Decision{
		Kind:     DecisionCurated,
		Topic:    r.Topic,
		Entry:    r.Entry,
		Score:    r.Score,
		Verified: verified,
	}
}

// askOracle attempts the generative fallback. A single attempt per decision
// point; no retries, degrade instead.
func (p *Pipeline) askOracle(ctx context.Context, query string) (string, error) {
	if p.oracle == nil {
		return "", errOracleNotConfigured
	}
	answer, err := p.oracle.Answer(ctx, query)
	if err != nil {
		p.logger.Warn("Oracle fallback failed", zap.Error(err))
		return "", err
	}
	return answer, nil
}

func (p *Pipeline) verifyRelevance(ctx context.Context, query string, r ScoredResult) Verdict {
	if p.oracle == nil {
		return VerdictUnavailable
	}
	verdict := p.oracle.VerifyRelevance(ctx, query, r.Entry.Question, r.Entry.Answer)
	p.logger.Debug("Oracle relevance check",
		zap.String("verdict", verdict.String()),
		zap.Float64("score", r.Score),
		zap.String("candidate", r.Entry.Question))
	return verdict
}
