package handlers

import (
	"net/http"

	apperrors "qa-mentor/errors"

	"github.com/gin-gonic/gin"
)

type SearchResult struct {
	TopicID  string  `json:"topic_id"`
	Topic    string  `json:"topic"`
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Score    float64 `json:"score"`
}

// Search exposes the ranking stage directly: scored knowledge base matches
// for a query, without the oracle tiers.
func (h *ChatHandler) Search(c *gin.Context) {
	query, err := h.filter.SanitizeSearch(c.Query("q"))
	if err != nil {
		if apperrors.IsInvalidInput(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.Message(err)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	scored := h.pipeline.Search(query)
	results := make([]SearchResult, 0, len(scored))
	for _, r := range scored {
		results = append(results, SearchResult{
			TopicID:  r.Topic.ID,
			Topic:    r.Topic.Name,
			Question: r.Entry.Question,
			Answer:   r.Entry.Answer,
			Score:    r.Score,
		})
	}
	c.JSON(http.StatusOK, gin.H{"query": query, "results": results})
}
