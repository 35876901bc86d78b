// Package oracle implements the external text service the retrieval pipeline
// consults: generative fallback answers and relevance verification, over an
// OpenAI-compatible chat-completions API.
package oracle

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"qa-mentor/config"
	apperrors "qa-mentor/errors"
	"qa-mentor/prompts"
	"qa-mentor/search"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Client talks to the oracle service. Calls are bounded by the configured
// request timeout and never retried: the pipeline degrades on failure rather
// than paying for a second attempt.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     *zap.Logger
	answers    *lru.Cache
}

// New builds a client. The answer cache bounds repeated fallback cost for
// identical queries; it holds oracle text only, never relevance verdicts.
func New(cfg *config.Config, logger *zap.Logger) *Client {
	size := cfg.AnswerCacheSize
	if size <= 0 {
		size = 256
	}
	cache, err := lru.New(size)
	if err != nil {
		// Only possible with a non-positive size, which is normalized above.
		logger.Warn("Answer cache disabled", zap.Error(err))
		cache = nil
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.OracleRequestTimeout},
		logger:     logger,
		answers:    cache,
	}
}

// Enabled reports whether the client has a host to talk to.
func (c *Client) Enabled() bool {
	return strings.TrimSpace(c.cfg.OracleHost) != ""
}

// Answer requests a generative answer for the query. Returns
// ErrOracleUnavailable (wrapped) on any transport, status or decode failure.
func (c *Client) Answer(ctx context.Context, query string) (string, error) {
	if !c.Enabled() || !c.cfg.OracleFallbackEnabled {
		return "", apperrors.WrapError(apperrors.ErrOracleUnavailable, "generative fallback disabled")
	}

	key := cacheKey(query)
	if c.answers != nil {
		if cached, ok := c.answers.Get(key); ok {
			return cached.(string), nil
		}
	}

	temperature := c.cfg.OracleTemperature
	answer, err := c.complete(ctx, prompts.AssistantSystemPrompt, query, c.cfg.OracleMaxTokens, &temperature)
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", apperrors.WrapError(apperrors.ErrOracleUnavailable, "oracle returned an empty answer")
	}

	if c.answers != nil {
		c.answers.Add(key, answer)
	}
	return answer, nil
}

// VerifyRelevance asks the oracle whether the candidate answers the query.
// Any failure, including an unparseable reply, maps to VerdictUnavailable so
// the pipeline takes its degrade path.
func (c *Client) VerifyRelevance(ctx context.Context, query, question, answer string) search.Verdict {
	if !c.Enabled() {
		return search.VerdictUnavailable
	}

	// Deterministic verification: zero temperature, tiny completion.
	temperature := 0.0
	reply, err := c.complete(ctx, prompts.RelevanceSystemPrompt,
		prompts.RelevancePayload(query, question, answer), 8, &temperature)
	if err != nil {
		c.logger.Warn("Relevance check failed", zap.Error(err))
		return search.VerdictUnavailable
	}

	verdict := parseVerdict(reply)
	if verdict == search.VerdictUnavailable {
		c.logger.Warn("Unparseable relevance reply", zap.String("reply", reply))
	}
	return verdict
}

func parseVerdict(reply string) search.Verdict {
	reply = strings.ToLower(strings.TrimSpace(reply))
	reply = strings.Trim(reply, `"'.,!`)
	switch {
	case strings.HasPrefix(reply, "да") || strings.HasPrefix(reply, "yes"):
		return search.VerdictRelevant
	case strings.HasPrefix(reply, "нет") || strings.HasPrefix(reply, "no"):
		return search.VerdictNotRelevant
	default:
		return search.VerdictUnavailable
	}
}

// complete performs one chat-completion call. A single attempt: the tiered
// decision treats any failure as "unavailable" and moves on.
func (c *Client) complete(ctx context.Context, system, user string, maxTokens int, temperature *float64) (string, error) {
	reqBody := chatRequest{
		Model: c.cfg.OracleModel,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/chat/completions", strings.TrimRight(c.cfg.OracleHost, "/"))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.OracleAPIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.OracleAPIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.WrapError(apperrors.ErrOracleUnavailable, err.Error())
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.WrapError(apperrors.ErrOracleUnavailable, "read chat response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", apperrors.WrapErrorf(apperrors.ErrOracleUnavailable,
			"oracle status %s: %s", resp.Status, strings.TrimSpace(string(bodyBytes)))
	}

	var cr chatResponse
	if err := json.Unmarshal(bodyBytes, &cr); err != nil {
		return "", apperrors.WrapError(apperrors.ErrOracleUnavailable, "decode chat response")
	}
	if len(cr.Choices) == 0 {
		return "", apperrors.WrapError(apperrors.ErrOracleUnavailable, "no response choices")
	}
	return cr.Choices[0].Message.Content, nil
}

func cacheKey(query string) string {
	sum := sha256.Sum256([]byte(search.Normalize(query)))
	return hex.EncodeToString(sum[:])
}
