package domain

import (
	"errors"
)

var (
	MessageSuccessCreateRecipe   = "recipe created successfully"
	MessageSuccessGetRecipes     = "recipes retrieved successfully"
	MessageSuccessPlanMeal       = "meal planned successfully"
	MessageSuccessGetMealPlan    = "meal plan retrieved successfully"

	MessageFailedCreateRecipe = "failed to create recipe"
	MessageFailedGetRecipes   = "failed to retrieve recipes"
	MessageFailedPlanMeal     = "failed to plan meal"
	MessageFailedGetMealPlan  = "failed to retrieve meal plan"

	ErrRecipeNotFound = errors.New("recipe not found")
	ErrInvalidPlanDay = errors.New("invalid meal plan date")
)

type (
	RecipeIngredientRequest struct {
		Name     string  `json:"name" validate:"required"`
		Quantity float64 `json:"quantity" validate:"required,gt=0"`
		Unit     string  `json:"unit" validate:"required"`
		Category string  `json:"category"`
	}

	CreateRecipeRequest struct {
		Title           string                    `json:"title" validate:"required"`
		Description     string                    `json:"description"`
		Servings        int                       `json:"servings" validate:"omitempty,min=1"`
		PrepTimeMinutes int                       `json:"prep_time_minutes" validate:"omitempty,min=0"`
		CuisineType     string                    `json:"cuisine_type"`
		Ingredients     []RecipeIngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
	}

	RecipeResponse struct {
		ID              string                    `json:"id"`
		Title           string                    `json:"title"`
		Description     string                    `json:"description,omitempty"`
		Servings        int                       `json:"servings"`
		PrepTimeMinutes int                       `json:"prep_time_minutes"`
		CuisineType     string                    `json:"cuisine_type,omitempty"`
		Ingredients     []RecipeIngredientRequest `json:"ingredients"`
	}

	PlanMealRequest struct {
		RecipeID   string `json:"recipe_id" validate:"required,uuid"`
		PlannedFor string `json:"planned_for" validate:"required"`
		MealType   string `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
	}

	MealPlanEntryResponse struct {
		ID         string `json:"id"`
		RecipeID   string `json:"recipe_id"`
		Title      string `json:"title"`
		PlannedFor string `json:"planned_for"`
		MealType   string `json:"meal_type"`
	}
)
