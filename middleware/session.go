package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	cookiePrefix    = "shop_"
	CookieSessionID = cookiePrefix + "session-id"
	cookieMaxAge    = 60 * 60 * 48

	// ContextSessionID is the gin context key the session id is stored under.
	ContextSessionID = "session_id"
)

// SessionMiddleware assigns each visitor a session id cookie. The cart
// snapshot and checkout single-flight are keyed by this id.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(CookieSessionID)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(CookieSessionID, sessionID, cookieMaxAge, "/", "", false, true)
		}
		c.Set(ContextSessionID, sessionID)
		c.Next()
	}
}

// SessionID returns the session id assigned by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}
