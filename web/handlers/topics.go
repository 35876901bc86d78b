package handlers

import (
	"net/http"

	"qa-mentor/knowledge"

	"github.com/gin-gonic/gin"
)

type TopicSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Questions   int    `json:"questions"`
}

type TopicsHandler struct {
	index *knowledge.Index
}

func NewTopicsHandler(index *knowledge.Index) *TopicsHandler {
	return &TopicsHandler{index: index}
}

// List returns the course topics in order.
func (h *TopicsHandler) List(c *gin.Context) {
	summaries := make([]TopicSummary, 0, h.index.TopicCount())
	for _, id := range h.index.TopicOrder() {
		topic, _ := h.index.Topic(id)
		summaries = append(summaries, TopicSummary{
			ID:          topic.ID,
			Name:        topic.Name,
			Description: topic.Description,
			Questions:   len(topic.Entries),
		})
	}
	c.JSON(http.StatusOK, gin.H{"topics": summaries})
}
