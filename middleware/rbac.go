package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Authorize rejects the request with 403 unless the authenticated role is in
// the allowed set. Must run after AuthMiddleware.
func Authorize(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("user_role")
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthenticated"})
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "you do not have permission to perform this action"})
	}
}
