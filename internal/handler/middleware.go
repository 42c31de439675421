package handler

import (
	"net/http"
	"strings"

	"theme-park-ticketing/internal/session"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// Auth resolves the bearer token into a session and aborts with 401 when the
// token is missing or unknown.
func Auth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing bearer token"})
			return
		}
		sess, ok := sessions.Get(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}
		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

func RequireRole(role session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c).Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session injected by Auth. Only valid on routes
// behind it.
func CurrentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionContextKey).(*session.Session)
}
