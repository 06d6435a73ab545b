package domain

import "time"

// Product Model
type Product struct {
	ID             uint      `gorm:"primaryKey" json:"id"`                 // Primary key, system-assigned
	Name           string    `gorm:"not null" json:"name"`                 // Product name
	SerialNumber   string    `gorm:"unique;not null" json:"serial_number"` // Unique human-assigned serial
	ManufacturerID uint      `gorm:"not null;index" json:"-"`              // Foreign key to the owning manufacturer
	Manufacturer   User      `json:"-"`                                    // Owning manufacturer, resolved on reads
	LedgerHash     string    `json:"ledger_hash"`                          // Decorative 0x hash, not a real chain entry
	CreatedAt      time.Time `json:"created_at"`                           // Timestamp of registration
}
