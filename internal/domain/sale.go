package domain

import "time"

// Sale Model
type Sale struct {
	ID         uint      `gorm:"primaryKey" json:"id"`             // Primary key
	ProductID  uint      `gorm:"not null;index" json:"product_id"` // Foreign key to the sold product
	Product    Product   `json:"-"`                                // Referenced product
	RetailerID uint      `gorm:"not null" json:"-"`                // Foreign key to the recording retailer
	Retailer   User      `json:"-"`                                // Recording retailer, resolved on reads
	Customer   string    `gorm:"not null" json:"customer"`         // Free-text buyer name or email
	Date       time.Time `gorm:"not null" json:"date"`             // Sale date, defaults to record creation time
	LedgerHash string    `json:"ledger_hash"`                      // Decorative 0x hash, not a real chain entry
	CreatedAt  time.Time `json:"created_at"`                       // Timestamp of insertion
}
