package entities

import (
	"github.com/google/uuid"
)

type Household struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OwnerID           uuid.UUID `json:"owner_id"`
	Name              string    `json:"name"`
	Region            string    `json:"region,omitempty"`
	DietaryPreference string    `json:"dietary_preference,omitempty"`
	Currency          string    `json:"currency"`
	MonthlyBudget     float64   `json:"monthly_budget"`

	Owner         *User           `gorm:"foreignKey:OwnerID"`
	PantryItems   []*PantryItem   `gorm:"foreignKey:HouseholdID"`
	ShoppingLists []*ShoppingList `gorm:"foreignKey:HouseholdID;constraint:OnDelete:CASCADE"`
	Timestamp
}
