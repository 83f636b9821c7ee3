package pantry

import (
	"context"
	"strings"
	"time"

	"mindfulmeals-backend/domain"
	"mindfulmeals-backend/entities"

	"gorm.io/gorm"
)

type (
	PantryRepository interface {
		AddItem(ctx context.Context, item *entities.PantryItem) error
		GetItemByID(ctx context.Context, id string) (*entities.PantryItem, error)
		GetItemByBarcode(ctx context.Context, householdID, barcode string) (*entities.PantryItem, error)
		UpdateItem(ctx context.Context, item *entities.PantryItem) error
		QueryItems(ctx context.Context, householdID string, filters domain.PantryItemFilters, now time.Time, page, limit int) ([]*entities.PantryItem, int64, error)
		GetActiveItems(ctx context.Context, householdID string) ([]*entities.PantryItem, error)
		GetLowStockItems(ctx context.Context, householdID string) ([]*entities.PantryItem, error)
		GetItemsExpiringBetween(ctx context.Context, householdID string, from, to time.Time) ([]*entities.PantryItem, error)
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) AddItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *pantryRepository) GetItemByID(ctx context.Context, id string) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) GetItemByBarcode(ctx context.Context, householdID, barcode string) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := r.db.WithContext(ctx).
		Where("household_id = ? AND barcode = ? AND is_active = ?", householdID, barcode, true).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) UpdateItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// QueryItems always scopes to the household's active items; every present
// filter adds one predicate. Results are ordered by expiry date ascending
// with items lacking an expiry date last, then by name.
func (r *pantryRepository) QueryItems(ctx context.Context, householdID string, filters domain.PantryItemFilters, now time.Time, page, limit int) ([]*entities.PantryItem, int64, error) {
	var items []*entities.PantryItem
	var count int64

	query := r.db.WithContext(ctx).
		Where("household_id = ? AND is_active = ?", householdID, true)

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.StorageLocation != "" {
		query = query.Where("storage_location = ?", filters.StorageLocation)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Search != "" {
		pattern := "%" + strings.TrimSpace(filters.Search) + "%"
		query = query.Where("(name ILIKE ? OR description ILIKE ? OR brand ILIKE ?)", pattern, pattern, pattern)
	}
	if filters.LowStock {
		query = query.Where("quantity <= ?", entities.LowStockThreshold)
	}
	if filters.ExpiringSoon {
		// Strict window: already-expired items are not "expiring soon".
		query = query.Where("expiry_date > ? AND expiry_date <= ?", now, now.AddDate(0, 0, entities.ExpiringSoonDays))
	}

	if err := query.Model(&entities.PantryItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Order("expiry_date ASC NULLS LAST").
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *pantryRepository) GetActiveItems(ctx context.Context, householdID string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).
		Where("household_id = ? AND is_active = ?", householdID, true).
		Order("expiry_date ASC NULLS LAST").
		Order("name ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) GetLowStockItems(ctx context.Context, householdID string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).
		Where("household_id = ? AND is_active = ? AND quantity <= ?", householdID, true, entities.LowStockThreshold).
		Order("quantity ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) GetItemsExpiringBetween(ctx context.Context, householdID string, from, to time.Time) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).
		Where("household_id = ? AND is_active = ? AND expiry_date > ? AND expiry_date <= ?", householdID, true, from, to).
		Order("expiry_date ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
