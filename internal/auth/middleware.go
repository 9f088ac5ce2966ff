package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const contextKeyUsername = "username"

// UsernameFromContext returns the username set by RequireToken. Empty if not set.
func UsernameFromContext(c *gin.Context) string {
	v, ok := c.Get(contextKeyUsername)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// RequireToken returns a middleware that resolves the Authorization bearer
// token to a username and stores it in context. A missing token answers 401
// and a token that fails verification answers 403, both without a body.
func RequireToken(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2); len(parts) == 2 {
			token = parts[1]
		}
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		username, err := UsernameFromToken(token, secret)
		if err != nil {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Set(contextKeyUsername, username)
		c.Next()
	}
}
