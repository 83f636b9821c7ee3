package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
	OrderStatusDelivered = "delivered"
)

type Order struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID    uuid.UUID  `json:"household_id"`
	VendorID       uuid.UUID  `json:"vendor_id"`
	ShoppingListID *uuid.UUID `json:"shopping_list_id,omitempty"`
	Status         string     `json:"status"` // "pending", "paid", "cancelled", "delivered"
	TotalAmount    float64    `json:"total_amount"`
	Currency       string     `json:"currency"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`

	Household *Household    `gorm:"foreignKey:HouseholdID"`
	Vendor    *Vendor       `gorm:"foreignKey:VendorID"`
	Items     []*OrderItem  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Timestamp
}

type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	UnitPrice float64   `json:"unit_price"`

	Order *Order `gorm:"foreignKey:OrderID"`
	Timestamp
}

type PaymentTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID     uuid.UUID `json:"order_id"`
	Provider    string    `json:"provider"` // "midtrans"
	ExternalRef string    `json:"external_ref"`
	Status      string    `json:"status"` // "pending", "settlement", "expire", "cancel", "deny"
	Amount      float64   `json:"amount"`
	InvoiceURL  string    `json:"invoice_url,omitempty"`

	Order *Order `gorm:"foreignKey:OrderID"`
	Timestamp
}
