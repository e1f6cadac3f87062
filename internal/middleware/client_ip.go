package middleware

import "github.com/gin-gonic/gin"

// ClientIPMiddleware records the request origin IP into the request context
// so audit entries written further down the stack can pick it up.
func ClientIPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := WithClientIP(c.Request.Context(), c.ClientIP())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
