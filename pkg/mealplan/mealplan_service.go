package mealplan

import (
	"context"
	"errors"
	"time"

	"mindfulmeals-backend/domain"
	"mindfulmeals-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealPlanService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, householdID string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, householdID string, page, limit int) ([]domain.RecipeResponse, int64, error)
		PlanMeal(ctx context.Context, req domain.PlanMealRequest, householdID string) (domain.MealPlanEntryResponse, error)
		GetMealPlan(ctx context.Context, householdID string, from, to time.Time) ([]domain.MealPlanEntryResponse, error)
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
	}
)

func NewMealPlanService(mealPlanRepository MealPlanRepository) MealPlanService {
	return &mealPlanService{mealPlanRepository: mealPlanRepository}
}

func (s *mealPlanService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, householdID string) (domain.RecipeResponse, error) {
	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	ingredients := make([]entities.RecipeIngredient, 0, len(req.Ingredients))
	for _, ingredient := range req.Ingredients {
		ingredients = append(ingredients, entities.RecipeIngredient{
			Name:     ingredient.Name,
			Quantity: ingredient.Quantity,
			Unit:     ingredient.Unit,
			Category: ingredient.Category,
		})
	}

	recipe := &entities.Recipe{
		ID:              uuid.New(),
		HouseholdID:     householdUUID,
		Title:           req.Title,
		Description:     req.Description,
		Servings:        req.Servings,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CuisineType:     req.CuisineType,
		Ingredients:     ingredients,
	}

	if err := s.mealPlanRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *mealPlanService) GetRecipes(ctx context.Context, householdID string, page, limit int) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.mealPlanRepository.GetRecipes(ctx, householdID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.RecipeResponse
	for _, recipe := range recipes {
		response = append(response, toRecipeResponse(recipe))
	}

	return response, count, nil
}

func (s *mealPlanService) PlanMeal(ctx context.Context, req domain.PlanMealRequest, householdID string) (domain.MealPlanEntryResponse, error) {
	householdUUID, err := uuid.Parse(householdID)
	if err != nil {
		return domain.MealPlanEntryResponse{}, domain.ErrParseUUID
	}

	plannedFor, err := time.Parse("2006-01-02", req.PlannedFor)
	if err != nil {
		return domain.MealPlanEntryResponse{}, domain.ErrInvalidPlanDay
	}

	recipe, err := s.mealPlanRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealPlanEntryResponse{}, domain.ErrRecipeNotFound
		}
		return domain.MealPlanEntryResponse{}, err
	}
	if recipe.HouseholdID != householdUUID {
		return domain.MealPlanEntryResponse{}, domain.ErrRecipeNotFound
	}

	entry := &entities.MealPlanEntry{
		ID:          uuid.New(),
		HouseholdID: householdUUID,
		RecipeID:    recipe.ID,
		PlannedFor:  plannedFor,
		MealType:    req.MealType,
	}

	if err := s.mealPlanRepository.CreatePlanEntry(ctx, entry); err != nil {
		return domain.MealPlanEntryResponse{}, err
	}

	return domain.MealPlanEntryResponse{
		ID:         entry.ID.String(),
		RecipeID:   recipe.ID.String(),
		Title:      recipe.Title,
		PlannedFor: entry.PlannedFor.Format("2006-01-02"),
		MealType:   entry.MealType,
	}, nil
}

func (s *mealPlanService) GetMealPlan(ctx context.Context, householdID string, from, to time.Time) ([]domain.MealPlanEntryResponse, error) {
	entries, err := s.mealPlanRepository.GetPlanEntries(ctx, householdID, from, to)
	if err != nil {
		return nil, err
	}

	var response []domain.MealPlanEntryResponse
	for _, entry := range entries {
		item := domain.MealPlanEntryResponse{
			ID:         entry.ID.String(),
			RecipeID:   entry.RecipeID.String(),
			PlannedFor: entry.PlannedFor.Format("2006-01-02"),
			MealType:   entry.MealType,
		}
		if entry.Recipe != nil {
			item.Title = entry.Recipe.Title
		}
		response = append(response, item)
	}

	return response, nil
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	ingredients := make([]domain.RecipeIngredientRequest, 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		ingredients = append(ingredients, domain.RecipeIngredientRequest{
			Name:     ingredient.Name,
			Quantity: ingredient.Quantity,
			Unit:     ingredient.Unit,
			Category: ingredient.Category,
		})
	}

	return domain.RecipeResponse{
		ID:              recipe.ID.String(),
		Title:           recipe.Title,
		Description:     recipe.Description,
		Servings:        recipe.Servings,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		CuisineType:     recipe.CuisineType,
		Ingredients:     ingredients,
	}
}
