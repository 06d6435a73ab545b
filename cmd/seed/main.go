package main

import (
	"blockauth/internal/config" // Custom package for configuration
	"blockauth/internal/domain" // Domain models
	"blockauth/internal/store"  // Store abstraction

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// Demo accounts, one per role. Passwords are for local use only.
var seedUsers = []struct {
	Name     string // Display name
	Email    string // Email address
	Password string // Plaintext, hashed before insert
	Role     string // Role
}{
	{"Alice Customer", "customer1@example.com", "password123", domain.RoleCustomer},
	{"Bob Retailer", "retailer1@example.com", "password123", domain.RoleRetailer},
	{"Carol Manufacturer", "manufacturer1@example.com", "password123", domain.RoleManufacturer},
}

// Main entry point for seeding demo users
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Connect the MySQL-backed store
	st, err := store.NewGormStore(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	for _, seed := range seedUsers {
		// Hash the demo password the same way registration does
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			logrus.Fatalf("failed to hash password: %v", err)
		}
		user := domain.User{
			Name:     seed.Name,    // Display name
			Email:    seed.Email,   // Email address
			Password: string(hash), // Bcrypt hash
			Role:     seed.Role,    // Role
		}
		if err := st.CreateUser(&user); err != nil {
			// Existing seed users are left alone on re-runs
			if err == store.ErrEmailTaken {
				logrus.WithField("email", seed.Email).Info("Seed user already exists, skipping")
				continue
			}
			logrus.Fatalf("failed to seed user %s: %v", seed.Email, err)
		}
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,    // New user ID
			"email":   user.Email, // Seeded email
			"role":    user.Role,  // Seeded role
		}).Info("Seed user created")
	}
}
