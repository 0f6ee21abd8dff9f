package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole rejects requests whose authenticated role does not match.
// Must run after JWTAuthMiddleware.
func RequireRole(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if role != required {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			return
		}
		c.Next()
	}
}
