package shoppinglist

import (
	"context"

	"mindfulmeals-backend/entities"

	"gorm.io/gorm"
)

type (
	ShoppingListRepository interface {
		// CreateListWithItems persists the list, its items and the stats
		// snapshot atomically; a failed generation leaves nothing behind.
		CreateListWithItems(ctx context.Context, list *entities.ShoppingList, items []*entities.ShoppingListItem) error
		GetListByID(ctx context.Context, id string) (*entities.ShoppingList, error)
		GetLists(ctx context.Context, householdID string, status string, page, limit int) ([]*entities.ShoppingList, int64, error)
		UpdateList(ctx context.Context, list *entities.ShoppingList) error
		GetItemByID(ctx context.Context, id string) (*entities.ShoppingListItem, error)
		GetListItems(ctx context.Context, listID string) ([]*entities.ShoppingListItem, error)
		// SaveItemWithStats writes an item mutation and the recomputed list
		// stats in one transaction.
		SaveItemWithStats(ctx context.Context, item *entities.ShoppingListItem, list *entities.ShoppingList) error
		DeleteItemWithStats(ctx context.Context, item *entities.ShoppingListItem, list *entities.ShoppingList) error
	}

	shoppingListRepository struct {
		db *gorm.DB
	}
)

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

func (r *shoppingListRepository) CreateListWithItems(ctx context.Context, list *entities.ShoppingList, items []*entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(list).Error; err != nil {
			return err
		}
		for _, item := range items {
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *shoppingListRepository) GetListByID(ctx context.Context, id string) (*entities.ShoppingList, error) {
	var list entities.ShoppingList
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *shoppingListRepository) GetLists(ctx context.Context, householdID string, status string, page, limit int) ([]*entities.ShoppingList, int64, error) {
	var lists []*entities.ShoppingList
	var count int64

	query := r.db.WithContext(ctx).Where("household_id = ?", householdID)

	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Model(&entities.ShoppingList{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&lists).Error; err != nil {
		return nil, 0, err
	}

	return lists, count, nil
}

func (r *shoppingListRepository) UpdateList(ctx context.Context, list *entities.ShoppingList) error {
	return r.db.WithContext(ctx).Omit("Items").Save(list).Error
}

func (r *shoppingListRepository) GetItemByID(ctx context.Context, id string) (*entities.ShoppingListItem, error) {
	var item entities.ShoppingListItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingListRepository) GetListItems(ctx context.Context, listID string) ([]*entities.ShoppingListItem, error) {
	var items []*entities.ShoppingListItem
	if err := r.db.WithContext(ctx).
		Where("shopping_list_id = ?", listID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *shoppingListRepository) SaveItemWithStats(ctx context.Context, item *entities.ShoppingListItem, list *entities.ShoppingList) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(item).Error; err != nil {
			return err
		}
		return tx.Omit("Items").Save(list).Error
	})
}

func (r *shoppingListRepository) DeleteItemWithStats(ctx context.Context, item *entities.ShoppingListItem, list *entities.ShoppingList) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(item).Error; err != nil {
			return err
		}
		return tx.Omit("Items").Save(list).Error
	})
}
