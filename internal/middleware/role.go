package middleware

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// RequireRole gates a route to the given roles. It reads the role the JWT
// middleware attached to the context; roles are immutable after registration
// so the claim is never stale and no database read is needed.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxUserRole) // Get role from context
		// JWT middleware must have run first
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		// Check the attached role against the allow-list
		for _, allowed := range roles {
			if role == allowed {
				c.Next() // Role permitted, proceed
				return
			}
		}
		// Authenticated but not permitted for this route
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient role"})
	}
}
