package store

import (
	"sort" // Sorting sales by date
	"sync" // Mutex for concurrent access

	"blockauth/internal/domain" // Importing domain models
)

// MemoryStore is an in-process Store used by tests and local runs without a
// database. The mutex serializes every check-then-insert, so it gives the
// same uniqueness guarantees the MySQL unique indexes give GormStore.
type MemoryStore struct {
	mu       sync.RWMutex            // Guards all maps and counters
	users    map[uint]domain.User    // Users by ID
	emails   map[string]uint         // Email -> user ID
	products map[uint]domain.Product // Products by ID
	serials  map[string]uint         // Serial number -> product ID
	sales    map[uint]domain.Sale    // Sales by ID
	nextUser uint                    // Next user ID
	nextProd uint                    // Next product ID
	nextSale uint                    // Next sale ID
}

// NewMemoryStore initializes an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[uint]domain.User),
		emails:   make(map[string]uint),
		products: make(map[uint]domain.Product),
		serials:  make(map[string]uint),
		sales:    make(map[uint]domain.Sale),
	}
}

// CreateUser registers a user, assigning the next ID
func (m *MemoryStore) CreateUser(u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Email uniqueness check and insert happen under the same lock
	if _, exists := m.emails[u.Email]; exists {
		return ErrEmailTaken
	}
	m.nextUser++
	u.ID = m.nextUser
	m.users[u.ID] = *u
	m.emails[u.Email] = u.ID
	return nil
}

// UserByEmail looks up a user by exact email
func (m *MemoryStore) UserByEmail(email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.emails[email]
	if !ok {
		return nil, ErrNotFound
	}
	user := m.users[id]
	return &user, nil
}

// UserByID returns a user by ID
func (m *MemoryStore) UserByID(id uint) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// CreateProduct registers a product, assigning the next ID
func (m *MemoryStore) CreateProduct(p *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Serial uniqueness check and insert happen under the same lock
	if _, exists := m.serials[p.SerialNumber]; exists {
		return ErrSerialTaken
	}
	m.nextProd++
	p.ID = m.nextProd
	// Resolve the manufacturer so reads match GormStore's preload
	if owner, ok := m.users[p.ManufacturerID]; ok {
		p.Manufacturer = owner
	}
	m.products[p.ID] = *p
	m.serials[p.SerialNumber] = p.ID
	return nil
}

// ProductByID returns a product with its manufacturer resolved
func (m *MemoryStore) ProductByID(id uint) (*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	product, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

// CreateSale records a sale after verifying the product exists
func (m *MemoryStore) CreateSale(s *domain.Sale) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[s.ProductID]; !ok {
		return ErrNotFound // Referenced product is absent
	}
	m.nextSale++
	s.ID = m.nextSale
	// Resolve the retailer so reads match GormStore's preload
	if retailer, ok := m.users[s.RetailerID]; ok {
		s.Retailer = retailer
	}
	m.sales[s.ID] = *s
	return nil
}

// SalesByProduct returns sales for a product, most recent first
func (m *MemoryStore) SalesByProduct(productID uint) ([]domain.Sale, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := []domain.Sale{} // Empty slice, not nil, so JSON renders []
	for _, sale := range m.sales {
		if sale.ProductID == productID {
			result = append(result, sale)
		}
	}
	// Date descending, ID as tiebreak for equal timestamps
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date.Equal(result[j].Date) {
			return result[i].ID > result[j].ID
		}
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}
