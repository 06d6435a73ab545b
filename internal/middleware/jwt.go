package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"blockauth/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// Context keys set by JWTAuthMiddleware for downstream handlers
const (
	CtxUserID    = "userID"    // Authenticated user's ID
	CtxUserEmail = "userEmail" // Authenticated user's email
	CtxUserRole  = "userRole"  // Authenticated user's role
)

// JWTAuthMiddleware validates bearer tokens and attaches the caller's
// identity and role to the request context
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			// Bad signature and expiry both land here, undifferentiated
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}
		c.Set(CtxUserID, claims.UserID)   // Store user ID in context
		c.Set(CtxUserEmail, claims.Email) // Store email in context
		c.Set(CtxUserRole, claims.Role)   // Store role in context
		c.Next()                          // Proceed to the next handler
	}
}
