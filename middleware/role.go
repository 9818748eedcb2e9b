package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole rejects callers whose role is not listed. It must run after
// JWTAuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := Role(c)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Access denied for role " + role,
		})
	}
}
