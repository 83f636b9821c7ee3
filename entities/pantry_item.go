package entities

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	PantryStatusActive   = "active"
	PantryStatusLowStock = "low_stock"
	PantryStatusExpired  = "expired"
	PantryStatusConsumed = "consumed"
	PantryStatusWasted   = "wasted"

	StockLevelFull     = "full"
	StockLevelMedium   = "medium"
	StockLevelLow      = "low"
	StockLevelCritical = "critical"

	// Quantity at or below which an item counts as needing restock.
	// Shared by the low-stock query filter and the generator so the two
	// definitions cannot drift.
	LowStockThreshold = 0.5

	// Items expiring within this many days count as expiring soon.
	ExpiringSoonDays = 7
)

type PantryItem struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID     uuid.UUID  `json:"household_id"`
	Name            string     `json:"name"`
	Description     string     `json:"description,omitempty"`
	Category        string     `json:"category"`
	Status          string     `json:"status"` // "active", "low_stock", "expired", "consumed", "wasted"
	StorageLocation string     `json:"storage_location"`
	Quantity        float64    `json:"quantity"`
	Unit            string     `json:"unit"`
	Price           *float64   `json:"price,omitempty"`
	Currency        string     `json:"currency,omitempty"`
	Brand           string     `json:"brand,omitempty"`
	Barcode         string     `json:"barcode,omitempty" gorm:"index"`
	PurchaseDate    *time.Time `json:"purchase_date,omitempty"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
	Notes           string     `json:"notes,omitempty" gorm:"type:text"`
	Metadata        string     `json:"metadata,omitempty" gorm:"type:text"`
	ImageURL        string     `json:"image_url,omitempty"`
	IsActive        bool       `json:"is_active"`

	Household *Household `gorm:"foreignKey:HouseholdID"`
	Timestamp
}

func (p *PantryItem) IsExpired(now time.Time) bool {
	if p.ExpiryDate == nil {
		return false
	}
	return now.After(*p.ExpiryDate)
}

// DaysUntilExpiry rounds up, so an item expiring in 36 hours reports 2 days.
// The second return value is false when no expiry date is set.
func (p *PantryItem) DaysUntilExpiry(now time.Time) (int, bool) {
	if p.ExpiryDate == nil {
		return 0, false
	}
	days := int(math.Ceil(p.ExpiryDate.Sub(now).Hours() / 24))
	return days, true
}

func (p *PantryItem) IsExpiringSoon(now time.Time) bool {
	days, ok := p.DaysUntilExpiry(now)
	if !ok {
		return false
	}
	return days > 0 && days <= ExpiringSoonDays
}

func (p *PantryItem) StockLevel() string {
	switch {
	case p.Quantity <= 0.1:
		return StockLevelCritical
	case p.Quantity <= 0.5:
		return StockLevelLow
	case p.Quantity <= 1.0:
		return StockLevelMedium
	default:
		return StockLevelFull
	}
}

func (p *PantryItem) NeedsRestocking() bool {
	level := p.StockLevel()
	return level == StockLevelLow || level == StockLevelCritical
}
