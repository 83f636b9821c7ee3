package mealplan

import (
	"context"
	"time"

	"mindfulmeals-backend/entities"

	"gorm.io/gorm"
)

type (
	MealPlanRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, householdID string, page, limit int) ([]*entities.Recipe, int64, error)
		CreatePlanEntry(ctx context.Context, entry *entities.MealPlanEntry) error
		GetPlanEntries(ctx context.Context, householdID string, from, to time.Time) ([]*entities.MealPlanEntry, error)
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *mealPlanRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *mealPlanRepository) GetRecipes(ctx context.Context, householdID string, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	query := r.db.WithContext(ctx).Where("household_id = ?", householdID)

	if err := query.Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *mealPlanRepository) CreatePlanEntry(ctx context.Context, entry *entities.MealPlanEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *mealPlanRepository) GetPlanEntries(ctx context.Context, householdID string, from, to time.Time) ([]*entities.MealPlanEntry, error) {
	var entries []*entities.MealPlanEntry
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("household_id = ? AND planned_for >= ? AND planned_for <= ?", householdID, from, to).
		Order("planned_for ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
