package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	// userIDKey stores the authenticated user's ID in the request context.
	userIDKey = contextKey("userID")
	// clientIPKey stores the request origin IP, recorded on audit entries.
	clientIPKey = contextKey("clientIP")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and whether it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok
}

// GetClientIPFromCtx retrieves the request origin IP from the context.
// Returns nil when no IP was captured.
func GetClientIPFromCtx(ctx context.Context) *string {
	ip, ok := ctx.Value(clientIPKey).(string)
	if !ok || ip == "" {
		return nil
	}
	return &ip
}

// WithClientIP stores the request origin IP into the context.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}
