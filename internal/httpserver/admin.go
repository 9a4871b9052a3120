package httpserver

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// adminAuth guards the admin routes with a static bearer token. An empty
// configured token disables the admin surface entirely.
func adminAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			respondError(c, http.StatusServiceUnavailable, "admin access not configured")
			c.Abort()
			return
		}
		const prefix = "Bearer "
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, prefix) {
			respondError(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}
		got := strings.TrimPrefix(auth, prefix)
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			respondError(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}
