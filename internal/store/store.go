package store

import (
	"errors" // Sentinel error definitions

	"blockauth/internal/domain" // Importing domain models
)

// Sentinel errors returned by Store implementations. Handlers map these to
// HTTP status codes (404 and 409).
var (
	ErrNotFound    = errors.New("record not found")             // Referenced entity absent
	ErrEmailTaken  = errors.New("email already registered")     // User email uniqueness violation
	ErrSerialTaken = errors.New("serial number already exists") // Product serial uniqueness violation
)

// Store defines persistence operations for users, products and sales.
// The API layer depends on this interface only, so the same handlers run
// against MySQL in production and the in-memory double in tests.
type Store interface {
	// users
	CreateUser(u *domain.User) error                // ErrEmailTaken on duplicate email
	UserByEmail(email string) (*domain.User, error) // ErrNotFound when absent
	UserByID(id uint) (*domain.User, error)         // ErrNotFound when absent

	// products
	CreateProduct(p *domain.Product) error        // ErrSerialTaken on duplicate serial
	ProductByID(id uint) (*domain.Product, error) // Manufacturer resolved; ErrNotFound when absent

	// sales
	CreateSale(s *domain.Sale) error                      // ErrNotFound when the product is absent
	SalesByProduct(productID uint) ([]domain.Sale, error) // Retailer resolved, date descending; empty slice is valid
}
