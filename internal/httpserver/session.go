package httpserver

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionHeader = "X-Session-ID"
	userHeader    = "X-User-ID"
)

// sessionID returns the caller's cart session, minting one for first-time
// visitors. The session is always echoed back so the client can hold on to it.
func sessionID(c *gin.Context) string {
	sid := strings.TrimSpace(c.GetHeader(sessionHeader))
	if sid == "" {
		sid = uuid.NewString()
	}
	c.Header(sessionHeader, sid)
	return sid
}

// currentUserID reads the signed-in user, nil for guests.
func currentUserID(c *gin.Context) *string {
	uid := strings.TrimSpace(c.GetHeader(userHeader))
	if uid == "" {
		return nil
	}
	return &uid
}
