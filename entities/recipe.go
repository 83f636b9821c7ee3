package entities

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID     uuid.UUID          `json:"household_id"`
	Title           string             `json:"title"`
	Description     string             `json:"description,omitempty"`
	Servings        int                `json:"servings"`
	PrepTimeMinutes int                `json:"prep_time_minutes"`
	CuisineType     string             `json:"cuisine_type,omitempty"`
	Ingredients     []RecipeIngredient `gorm:"serializer:json" json:"ingredients"`

	Household *Household `gorm:"foreignKey:HouseholdID"`
	Timestamp
}

type RecipeIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Category string  `json:"category,omitempty"`
}

// MealPlanEntry schedules one recipe for one day; meal-plan based list
// generation collects the entries inside a date range.
type MealPlanEntry struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	HouseholdID uuid.UUID `json:"household_id"`
	RecipeID    uuid.UUID `json:"recipe_id"`
	PlannedFor  time.Time `json:"planned_for"`
	MealType    string    `json:"meal_type"` // "breakfast", "lunch", "dinner", "snack"

	Household *Household `gorm:"foreignKey:HouseholdID"`
	Recipe    *Recipe    `gorm:"foreignKey:RecipeID"`
	Timestamp
}
