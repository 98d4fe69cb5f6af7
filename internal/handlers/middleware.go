package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	msgAuthHeaderRequired = "Please provide authorization header"
	msgTokenRequired      = "Please provide a token"
	msgInvalidToken       = "Invalid token"
)

// contextEmailKey is where the middleware stores the verified email
// claim. No handler consumes it today; authorization is binary.
const contextEmailKey = "userEmail"

// authorize admits a request only when it carries a verifiable bearer
// token. The scheme word is not checked; the token is whatever follows
// the first whitespace in the header value.
func (h *Handler) authorize(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": msgAuthHeaderRequired,
		})
		return
	}

	parts := strings.Fields(header)
	if len(parts) < 2 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": msgTokenRequired,
		})
		return
	}

	email, err := h.services.ParseToken(parts[1])
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_token_rejected", "err", err)
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": msgInvalidToken,
		})
		return
	}

	c.Set(contextEmailKey, email)
	c.Next()
}
