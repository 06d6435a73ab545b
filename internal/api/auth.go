package api

import (
	"net/http" // HTTP status codes

	"blockauth/internal/config" // Configuration
	"blockauth/internal/domain" // Importing domain models
	"blockauth/internal/store"  // Store abstraction
	"blockauth/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// RegisterRequest is the body for user registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`     // Display name must be provided
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
	Role     string `json:"role" binding:"required"`     // Role must be provided
}

// LoginRequest is the body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	Token string `json:"token"` // JWT bearer token
	Role  string `json:"role"`  // Role, so the frontend can route to the right panel
}

// RegisterHandler creates a new user account
func RegisterHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// Missing fields land here
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email, password and role are required"})
			return
		}
		// Validate password length
		if len(req.Password) < 6 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 6 characters"})
			return
		}
		// Validate role against the fixed enum
		if !domain.ValidRole(req.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
			return
		}
		// Hash the password
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
			return
		}
		user := domain.User{
			Name:     req.Name,     // Display name
			Email:    req.Email,    // Stored as given, case-sensitive
			Password: string(hash), // Bcrypt hash
			Role:     req.Role,     // Fixed at registration
		}
		// The store's unique index on email decides conflicts
		if err := st.CreateUser(&user); err != nil {
			if err == store.ErrEmailTaken {
				c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"email": req.Email,   // Attempted email
				"error": err.Error(), // Error message
			}).Error("User registration failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,   // New user ID
			"role":    user.Role, // Registered role
		}).Info("User registered")
		// Return the created user; the password field is never serialized
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": user})
	}
}

// LoginHandler authenticates a user and returns a JWT token. Unknown email
// and wrong password produce the identical response so account existence
// cannot be probed.
func LoginHandler(st store.Store, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
			return
		}
		user, err := st.UserByEmail(req.Email) // Fetch user by email
		if err != nil {
			// No user with that email; same message as a wrong password
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(user, cfg.JWTSecret, cfg.TokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
			return
		}
		// Return the token and role
		c.JSON(http.StatusOK, AuthResponse{Token: token, Role: user.Role})
	}
}
