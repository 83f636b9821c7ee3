package domain

import (
	"errors"
	"time"

	"mindfulmeals-backend/entities"
)

var (
	MessageSuccessGenerateList     = "shopping list generated successfully"
	MessageSuccessGetShoppingList  = "shopping list retrieved successfully"
	MessageSuccessGetShoppingLists = "shopping lists retrieved successfully"
	MessageSuccessAddListItem      = "shopping list item added successfully"
	MessageSuccessRemoveListItem   = "shopping list item removed successfully"
	MessageSuccessCompleteListItem = "shopping list item updated successfully"
	MessageSuccessArchiveList      = "shopping list archived successfully"

	MessageFailedGenerateList     = "failed to generate shopping list"
	MessageFailedGetShoppingList  = "failed to retrieve shopping list"
	MessageFailedGetShoppingLists = "failed to retrieve shopping lists"
	MessageFailedAddListItem      = "failed to add shopping list item"
	MessageFailedRemoveListItem   = "failed to remove shopping list item"
	MessageFailedCompleteListItem = "failed to update shopping list item"
	MessageFailedArchiveList      = "failed to archive shopping list"

	ErrShoppingListNotFound     = errors.New("shopping list not found")
	ErrShoppingListItemNotFound = errors.New("shopping list item not found")
	ErrInvalidListType          = errors.New("invalid shopping list type")
	ErrRecipeRequired           = errors.New("recipe id required for recipe based generation")
)

type (
	// GenerateListOptions mirrors the generation knobs: branch toggles plus
	// budget and vendor preferences recorded on the list.
	GenerateListOptions struct {
		IncludeLowStock  bool     `json:"include_low_stock"`
		IncludeExpiring  bool     `json:"include_expiring"`
		Budget           float64  `json:"budget" validate:"omitempty,min=0"`
		PreferredVendors []string `json:"preferred_vendors"`
		RecipeID         string   `json:"recipe_id" validate:"omitempty,uuid"`
		PlanFrom         string   `json:"plan_from"`
		PlanTo           string   `json:"plan_to"`
	}

	GenerateListRequest struct {
		Name    string              `json:"name"`
		Type    string              `json:"type" validate:"required,oneof=manual auto_generated low_stock expiry_based meal_plan_based recipe_based"`
		Options GenerateListOptions `json:"options"`
	}

	AddListItemRequest struct {
		Name           string   `json:"name" validate:"required"`
		Category       string   `json:"category" validate:"required"`
		Quantity       float64  `json:"quantity" validate:"required,gt=0"`
		Unit           string   `json:"unit" validate:"required"`
		Priority       string   `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
		EstimatedPrice *float64 `json:"estimated_price" validate:"omitempty,min=0"`
		IsOrganic      bool     `json:"is_organic"`
		IsLocal        bool     `json:"is_local"`
	}

	CompleteListItemRequest struct {
		Completed   bool     `json:"completed"`
		ActualPrice *float64 `json:"actual_price" validate:"omitempty,min=0"`
	}

	ShoppingListItemResponse struct {
		ID             string     `json:"id"`
		Name           string     `json:"name"`
		Description    string     `json:"description,omitempty"`
		Category       string     `json:"category"`
		Quantity       float64    `json:"quantity"`
		Unit           string     `json:"unit"`
		Priority       string     `json:"priority"`
		Source         string     `json:"source"`
		EstimatedPrice *float64   `json:"estimated_price,omitempty"`
		ActualPrice    *float64   `json:"actual_price,omitempty"`
		Currency       string     `json:"currency,omitempty"`
		Brand          string     `json:"brand,omitempty"`
		IsOrganic      bool       `json:"is_organic"`
		IsLocal        bool       `json:"is_local"`
		IsCompleted    bool       `json:"is_completed"`
		CompletedAt    *time.Time `json:"completed_at,omitempty"`
	}

	ShoppingListResponse struct {
		ID              string                     `json:"id"`
		HouseholdID     string                     `json:"household_id"`
		Name            string                     `json:"name"`
		Status          string                     `json:"status"`
		Type            string                     `json:"type"`
		Currency        string                     `json:"currency"`
		EstimatedBudget float64                    `json:"estimated_budget"`
		Stats           entities.ListStats         `json:"stats"`
		Metadata        map[string]string          `json:"metadata,omitempty"`
		Items           []ShoppingListItemResponse `json:"items,omitempty"`
		CreatedAt       time.Time                  `json:"created_at"`
	}
)
