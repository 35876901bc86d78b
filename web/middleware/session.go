package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionCookieName = "qa_mentor_session"
const CookieMaxAge = 30 * 24 * 60 * 60 // 30 days

// Session assigns each client a stable session ID via cookie. Sessions live
// in process memory, so a missing or malformed cookie simply starts a fresh
// one instead of failing the request.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(SessionCookieName); err == nil {
			if sessionID, err := uuid.Parse(cookie); err == nil {
				c.Set("sessionID", sessionID)
				c.Next()
				return
			}
		}

		sessionID := uuid.New()
		c.SetCookie(SessionCookieName, sessionID.String(), CookieMaxAge, "/", "", false, true)
		c.Set("sessionID", sessionID)
		c.Next()
	}
}
