package entities

import (
	"github.com/google/uuid"
)

type Vendor struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Region      string    `json:"region,omitempty"`
	Rating      float64   `json:"rating"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsActive    bool      `json:"is_active"`

	Products []*Product `gorm:"foreignKey:VendorID"`
	Timestamp
}

type Product struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	VendorID  uuid.UUID `json:"vendor_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Unit      string    `json:"unit"`
	Price     float64   `json:"price"`
	Currency  string    `json:"currency"`
	Brand     string    `json:"brand,omitempty"`
	Barcode   string    `json:"barcode,omitempty" gorm:"index"`
	IsOrganic bool      `json:"is_organic"`
	IsLocal   bool      `json:"is_local"`
	InStock   bool      `json:"in_stock"`

	Vendor *Vendor `gorm:"foreignKey:VendorID"`
	Timestamp
}
