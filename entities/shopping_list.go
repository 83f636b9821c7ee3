package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	ListStatusDraft      = "draft"
	ListStatusActive     = "active"
	ListStatusInProgress = "in_progress"
	ListStatusCompleted  = "completed"
	ListStatusArchived   = "archived"

	ListTypeManual        = "manual"
	ListTypeAutoGenerated = "auto_generated"
	ListTypeLowStock      = "low_stock"
	ListTypeExpiryBased   = "expiry_based"
	ListTypeMealPlanBased = "meal_plan_based"
	ListTypeRecipeBased   = "recipe_based"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"

	ItemSourceManual         = "manual"
	ItemSourceLowStock       = "low_stock"
	ItemSourceExpiry         = "expiry"
	ItemSourceMealPlan       = "meal_plan"
	ItemSourceRecipe         = "recipe"
	ItemSourceRecommendation = "recommendation"
	ItemSourceTrending       = "trending"
)

// ListStats is a materialized snapshot of the list's item collection. It is
// recomputed from the live items inside the same transaction as every item
// mutation; the items remain the source of truth.
type ListStats struct {
	TotalItems     int      `json:"total_items"`
	CompletedItems int      `json:"completed_items"`
	PendingItems   int      `json:"pending_items"`
	UrgentItems    int      `json:"urgent_items"`
	HighPriority   int      `json:"high_priority_items"`
	OrganicItems   int      `json:"organic_items"`
	LocalItems     int      `json:"local_items"`
	EstimatedTotal float64  `json:"estimated_total"`
	Categories     []string `json:"categories"`
	Vendors        []string `json:"vendors"`
}

type ShoppingList struct {
	ID              uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID     uuid.UUID         `json:"household_id"`
	Name            string            `json:"name"`
	Status          string            `json:"status"` // "draft", "active", "in_progress", "completed", "archived"
	Type            string            `json:"type"`
	Currency        string            `json:"currency"`
	EstimatedBudget float64           `json:"estimated_budget"`
	Stats           ListStats         `gorm:"serializer:json" json:"stats"`
	Metadata        map[string]string `gorm:"serializer:json" json:"metadata,omitempty"`

	Household *Household          `gorm:"foreignKey:HouseholdID"`
	Items     []*ShoppingListItem `gorm:"foreignKey:ShoppingListID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Timestamp
}

type ShoppingListItem struct {
	ID             uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ShoppingListID uuid.UUID         `json:"shopping_list_id"`
	Name           string            `json:"name"`
	Description    string            `json:"description,omitempty"`
	Category       string            `json:"category"`
	Quantity       float64           `json:"quantity"`
	Unit           string            `json:"unit"`
	Priority       string            `json:"priority"` // "low", "medium", "high", "urgent"
	Source         string            `json:"source"`
	EstimatedPrice *float64          `json:"estimated_price,omitempty"`
	ActualPrice    *float64          `json:"actual_price,omitempty"`
	Currency       string            `json:"currency,omitempty"`
	Brand          string            `json:"brand,omitempty"`
	Barcode        string            `json:"barcode,omitempty"`
	Vendor         string            `json:"vendor,omitempty"`
	IsOrganic      bool              `json:"is_organic"`
	IsLocal        bool              `json:"is_local"`
	IsCompleted    bool              `json:"is_completed"`
	CompletedAt    *time.Time        `json:"completed_at,omitempty"`
	Metadata       map[string]string `gorm:"serializer:json" json:"metadata,omitempty"`

	ShoppingList *ShoppingList `gorm:"foreignKey:ShoppingListID"`
	Timestamp
}

// BudgetUtilization reports actual spend against the estimate. It is
// undefined (ok false) unless both prices are present and the estimate is
// non-zero.
func (i *ShoppingListItem) BudgetUtilization() (float64, bool) {
	if i.EstimatedPrice == nil || i.ActualPrice == nil || *i.EstimatedPrice == 0 {
		return 0, false
	}
	return *i.ActualPrice / *i.EstimatedPrice, true
}

func (i *ShoppingListItem) IsOverBudget() (bool, bool) {
	utilization, ok := i.BudgetUtilization()
	if !ok {
		return false, false
	}
	return utilization > 1, true
}
