package middleware

import (
	"net/http" // HTTP status codes

	"beneficiary_registry/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
)

// AdminOnlyMiddleware rejects requests whose token did not carry the admin
// role. Only meaningful behind TokenAuthMiddleware.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role") // Get role from context
		// Check if role exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Check if the role is admin
		if role != domain.RoleAdmin {
			// If not admin, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		// If admin, proceed to the next handler
		c.Next()
	}
}
