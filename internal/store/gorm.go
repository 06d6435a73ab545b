package store

import (
	"errors" // Error matching

	"blockauth/internal/domain" // Importing domain models

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// GormStore implements Store using GORM over MySQL. Uniqueness of emails and
// serial numbers rests on the unique indexes in the schema: the insert itself
// is the atomic check, not a preceding SELECT, so concurrent registrations
// cannot both succeed.
type GormStore struct {
	db *gorm.DB // Underlying GORM handle
}

// NewGormStore opens a MySQL connection for the store. TranslateError makes
// GORM surface duplicate-key violations as gorm.ErrDuplicatedKey so they can
// be mapped to the conflict sentinels.
func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err // Connection failure
	}
	return &GormStore{db: db}, nil
}

// NewGormStoreWithDB wraps an already-open GORM handle
func NewGormStoreWithDB(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// CreateUser inserts a new user; the unique index on email decides conflicts
func (s *GormStore) CreateUser(u *domain.User) error {
	if err := s.db.Create(u).Error; err != nil {
		// Duplicate email violates the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err // Other database error
	}
	return nil
}

// UserByEmail looks up a user by exact email
func (s *GormStore) UserByEmail(email string) (*domain.User, error) {
	var user domain.User // User struct to hold data
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound // No user with that email
		}
		return nil, err // Other database error
	}
	return &user, nil
}

// UserByID returns a user by primary key
func (s *GormStore) UserByID(id uint) (*domain.User, error) {
	var user domain.User // User struct to hold data
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound // No user with that ID
		}
		return nil, err // Other database error
	}
	return &user, nil
}

// CreateProduct inserts a new product; the unique index on serial_number
// decides conflicts
func (s *GormStore) CreateProduct(p *domain.Product) error {
	if err := s.db.Create(p).Error; err != nil {
		// Duplicate serial violates the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSerialTaken
		}
		return err // Other database error
	}
	return nil
}

// ProductByID returns a product with its manufacturer resolved
func (s *GormStore) ProductByID(id uint) (*domain.Product, error) {
	var product domain.Product // Product struct to hold data
	if err := s.db.Preload("Manufacturer").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound // No product with that ID
		}
		return nil, err // Other database error
	}
	return &product, nil
}

// CreateSale inserts a new sale record. The product reference is validated
// against the products table first; a miss is ErrNotFound, not a conflict.
func (s *GormStore) CreateSale(sale *domain.Sale) error {
	// Ensure the referenced product exists before inserting
	var count int64
	if err := s.db.Model(&domain.Product{}).Where("id = ?", sale.ProductID).Count(&count).Error; err != nil {
		return err // Database error during the existence check
	}
	if count == 0 {
		return ErrNotFound // Referenced product is absent
	}
	return s.db.Create(sale).Error // Insert the sale
}

// SalesByProduct returns all sales for a product, most recent first, with
// the recording retailer resolved. An empty result is not an error.
func (s *GormStore) SalesByProduct(productID uint) ([]domain.Sale, error) {
	sales := []domain.Sale{} // Empty slice, not nil, so JSON renders []
	err := s.db.Preload("Retailer").
		Where("product_id = ?", productID).
		Order("date desc, id desc"). // id breaks ties between equal timestamps
		Find(&sales).Error
	if err != nil {
		return nil, err // Database error
	}
	return sales, nil
}
