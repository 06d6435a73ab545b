package domain

import "time"

// Roles a user can register with. Fixed at registration, never updated.
const (
	RoleCustomer     = "customer"     // Verifies products, no write access
	RoleRetailer     = "retailer"     // Records sales
	RoleManufacturer = "manufacturer" // Registers products
)

// ValidRole reports whether role is one of the three supported roles
func ValidRole(role string) bool {
	return role == RoleCustomer || role == RoleRetailer || role == RoleManufacturer
}

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`         // Primary key
	Name      string    `gorm:"not null" json:"name"`         // Display name
	Email     string    `gorm:"unique;not null" json:"email"` // Unique email, case-sensitive as stored
	Password  string    `gorm:"not null" json:"-"`            // Bcrypt hash, never serialized
	Role      string    `gorm:"not null" json:"role"`         // customer, retailer or manufacturer
	CreatedAt time.Time `json:"created_at"`                   // Timestamp of registration
}

// PublicUser is the projection of a user exposed when resolving
// manufacturer and retailer references. Never includes the password hash.
type PublicUser struct {
	Name  string `json:"name"`  // Display name
	Email string `json:"email"` // Email address
}

// Public returns the user's public fields
func (u User) Public() PublicUser {
	return PublicUser{Name: u.Name, Email: u.Email}
}
