package handlers

import (
	"errors"
	"net/http"

	apperrors "qa-mentor/errors"
	"qa-mentor/search"
	"qa-mentor/security"
	"qa-mentor/session"
	"qa-mentor/web/format"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Conversational shortcuts, matched against the normalized message. They
// drive the session machine without touching the retrieval pipeline.
var (
	continueWords = wordSet("дальше", "далее", "продолжить", "продолжим", "вперед", "вперёд", "next")
	backWords     = wordSet("назад", "вернуться", "back")
	homeWords     = wordSet("домой", "меню", "сначала", "в начало")
	greetingWords = wordSet("привет", "здравствуй", "здравствуйте", "начать", "старт", "start", "hi", "hello")
	thanksWords   = wordSet("спасибо", "благодарю", "спс", "thanks")
	helpWords     = wordSet("помощь", "справка", "команды", "help")
)

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

type ChatRequest struct {
	Message string `json:"message" form:"message"`
}

type ChatResponse struct {
	Message format.Message  `json:"message"`
	Source  string          `json:"source"`
	Session session.Session `json:"session"`
}

type ChatHandler struct {
	pipeline *search.Pipeline
	store    *session.Store
	machine  *session.Machine
	filter   *security.Filter
	renderer *format.Renderer
	logger   *zap.Logger
}

func NewChatHandler(
	pipeline *search.Pipeline,
	store *session.Store,
	machine *session.Machine,
	filter *security.Filter,
	renderer *format.Renderer,
	logger *zap.Logger,
) *ChatHandler {
	return &ChatHandler{
		pipeline: pipeline,
		store:    store,
		machine:  machine,
		filter:   filter,
		renderer: renderer,
		logger:   logger,
	}
}

// Send handles a chat message: navigation shortcuts move the session, any
// other text goes through sanitization and the retrieval pipeline.
func (h *ChatHandler) Send(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	sessionID := c.MustGet("sessionID").(uuid.UUID).String()
	sess := h.store.GetOrCreate(sessionID)

	cleaned, err := h.filter.SanitizeQuery(req.Message)
	if err != nil {
		if apperrors.IsInvalidInput(err) {
			sess, _ = h.machine.Resolve(sess)
			c.JSON(http.StatusBadRequest, ChatResponse{
				Message: h.renderer.InvalidInput(apperrors.Message(err)),
				Source:  "rejected",
				Session: sess,
			})
			return
		}
		h.logger.Error("Sanitization failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	normalized := search.Normalize(cleaned)
	switch {
	case continueWords[normalized]:
		h.respondNavigated(c, sessionID, sess, h.machine.Advance)
		return
	case backWords[normalized]:
		h.respondNavigated(c, sessionID, sess, h.machine.Retreat)
		return
	case homeWords[normalized]:
		home := h.machine.Home()
		h.store.Put(sessionID, home)
		h.respondLesson(c, home)
		return
	case greetingWords[normalized]:
		sess, view := h.machine.Resolve(sess)
		c.JSON(http.StatusOK, ChatResponse{Message: h.renderer.Greeting(view), Source: "hint", Session: sess})
		return
	case thanksWords[normalized]:
		sess, view := h.machine.Resolve(sess)
		c.JSON(http.StatusOK, ChatResponse{Message: h.renderer.Thanks(view), Source: "hint", Session: sess})
		return
	case helpWords[normalized]:
		sess, view := h.machine.Resolve(sess)
		c.JSON(http.StatusOK, ChatResponse{Message: h.renderer.Help(view), Source: "hint", Session: sess})
		return
	}

	decision := h.pipeline.Retrieve(c.Request.Context(), cleaned)
	sess, _ = h.machine.Resolve(sess)

	var resp ChatResponse
	resp.Session = sess
	switch decision.Kind {
	case search.DecisionCurated:
		resp.Message = h.renderer.Curated(decision.Topic, decision.Entry, decision.Verified)
		resp.Source = "curated"
	case search.DecisionGenerated:
		resp.Message = h.renderer.Generated(decision.Answer)
		resp.Source = "generated"
	default:
		resp.Message = h.renderer.NotFound()
		resp.Source = "not_found"
	}
	c.JSON(http.StatusOK, resp)
}

// respondNavigated applies a navigation step and renders the landing lesson,
// or the boundary hint when the course edge is reached.
func (h *ChatHandler) respondNavigated(c *gin.Context, sessionID string, sess session.Session, step func(session.Session) (session.Session, error)) {
	next, err := step(sess)
	if err != nil {
		sess, view := h.machine.Resolve(sess)
		var msg format.Message
		switch {
		case errors.Is(err, session.ErrAtStart):
			msg = h.renderer.AtStart(view)
		case errors.Is(err, session.ErrCourseComplete):
			msg = h.renderer.CourseComplete(view)
		case errors.Is(err, session.ErrFirstQuestion):
			msg = h.renderer.FirstQuestion(view)
		case errors.Is(err, session.ErrLastQuestion):
			msg = h.renderer.LastQuestion(view)
		default:
			h.logger.Error("Navigation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
			return
		}
		c.JSON(http.StatusOK, ChatResponse{Message: msg, Source: "hint", Session: sess})
		return
	}

	h.store.Put(sessionID, next)
	h.respondLesson(c, next)
}

func (h *ChatHandler) respondLesson(c *gin.Context, sess session.Session) {
	sess, view := h.machine.Resolve(sess)
	c.JSON(http.StatusOK, ChatResponse{
		Message: h.renderer.Lesson(view),
		Source:  "lesson",
		Session: sess,
	})
}
