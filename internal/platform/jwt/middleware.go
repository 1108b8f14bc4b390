package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key holding the authenticated user's ID.
const ContextUserID = "userID"

// AuthRequired returns a gin middleware that validates bearer tokens
// and restricts access to authenticated users only. The signing secret
// is injected from configuration rather than read from the environment,
// so a missing secret fails loudly at a single place.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		if secret == "" {
			// Server misconfiguration (SECRET_KEY not set)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "server misconfigured"})
			return
		}

		userID, err := ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "could not validate credentials"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}
