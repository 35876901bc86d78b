package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NavigateRequest struct {
	Action string `json:"action" form:"action"`
}

// Navigate applies an explicit navigation action (button presses, as opposed
// to conversational shortcuts) and returns the landing lesson.
func (h *ChatHandler) Navigate(c *gin.Context) {
	var req NavigateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	sessionID := c.MustGet("sessionID").(uuid.UUID).String()
	sess := h.store.GetOrCreate(sessionID)

	switch req.Action {
	case "next":
		h.respondNavigated(c, sessionID, sess, h.machine.Advance)
	case "back":
		h.respondNavigated(c, sessionID, sess, h.machine.Retreat)
	case "next_question":
		h.respondNavigated(c, sessionID, sess, h.machine.NextQuestion)
	case "prev_question":
		h.respondNavigated(c, sessionID, sess, h.machine.PrevQuestion)
	case "next_topic":
		h.respondNavigated(c, sessionID, sess, h.machine.NextTopic)
	case "prev_topic":
		h.respondNavigated(c, sessionID, sess, h.machine.PrevTopic)
	case "home":
		home := h.machine.Home()
		h.store.Put(sessionID, home)
		h.respondLesson(c, home)
	case "current", "":
		h.respondLesson(c, sess)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown action"})
	}
}
