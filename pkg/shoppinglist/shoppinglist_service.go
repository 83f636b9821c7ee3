package shoppinglist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mindfulmeals-backend/domain"
	"mindfulmeals-backend/entities"
	"mindfulmeals-backend/pkg/household"
	"mindfulmeals-backend/pkg/mealplan"
	"mindfulmeals-backend/pkg/pantry"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Restock lines top an item back up to this quantity.
const restockTargetQuantity = 2.0

type (
	ShoppingListService interface {
		GenerateList(ctx context.Context, req domain.GenerateListRequest, householdID string) (domain.ShoppingListResponse, error)
		GetList(ctx context.Context, id string, householdID string) (domain.ShoppingListResponse, error)
		GetLists(ctx context.Context, householdID string, status string, page, limit int) ([]domain.ShoppingListResponse, int64, error)
		AddItem(ctx context.Context, listID string, req domain.AddListItemRequest, householdID string) (domain.ShoppingListItemResponse, error)
		RemoveItem(ctx context.Context, listID, itemID string, householdID string) error
		CompleteItem(ctx context.Context, listID, itemID string, req domain.CompleteListItemRequest, householdID string) error
		ArchiveList(ctx context.Context, listID string, householdID string) error
	}

	shoppingListService struct {
		listRepository      ShoppingListRepository
		householdRepository household.HouseholdRepository
		pantryRepository    pantry.PantryRepository
		mealPlanRepository  mealplan.MealPlanRepository
		now                 func() time.Time
	}
)

func NewShoppingListService(
	listRepository ShoppingListRepository,
	householdRepository household.HouseholdRepository,
	pantryRepository pantry.PantryRepository,
	mealPlanRepository mealplan.MealPlanRepository,
) ShoppingListService {
	return &shoppingListService{
		listRepository:      listRepository,
		householdRepository: householdRepository,
		pantryRepository:    pantryRepository,
		mealPlanRepository:  mealPlanRepository,
		now:                 time.Now,
	}
}

func (s *shoppingListService) GenerateList(ctx context.Context, req domain.GenerateListRequest, householdID string) (domain.ShoppingListResponse, error) {
	owner, err := s.householdRepository.GetHouseholdByID(ctx, householdID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShoppingListResponse{}, domain.ErrHouseholdNotFound
		}
		return domain.ShoppingListResponse{}, err
	}

	now := s.now()
	name := req.Name
	if name == "" {
		name = fmt.Sprintf("Shopping List - %s", now.Format("Jan 2, 2006"))
	}

	metadata := map[string]string{
		"source":            req.Type,
		"generated_by":      "system",
		"generation_reason": "Automated inventory analysis",
	}
	if len(req.Options.PreferredVendors) > 0 {
		metadata["preferred_vendors"] = strings.Join(req.Options.PreferredVendors, ",")
	}

	list := &entities.ShoppingList{
		ID:              uuid.New(),
		HouseholdID:     owner.ID,
		Name:            name,
		Status:          entities.ListStatusDraft,
		Type:            req.Type,
		Currency:        owner.Currency,
		EstimatedBudget: req.Options.Budget,
		Metadata:        metadata,
	}

	items, err := s.buildCandidates(ctx, list, req, now)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	list.Stats = ComputeStats(items)

	if err := s.listRepository.CreateListWithItems(ctx, list, items); err != nil {
		return domain.ShoppingListResponse{}, err
	}

	list.Items = items
	return s.toListResponse(list, true), nil
}

// buildCandidates concatenates the branch outputs without de-duplication:
// an item that is both low on stock and close to expiry yields two lines.
func (s *shoppingListService) buildCandidates(ctx context.Context, list *entities.ShoppingList, req domain.GenerateListRequest, now time.Time) ([]*entities.ShoppingListItem, error) {
	householdID := list.HouseholdID.String()
	var items []*entities.ShoppingListItem

	if req.Type == entities.ListTypeLowStock || req.Options.IncludeLowStock {
		lowStock, err := s.pantryRepository.GetLowStockItems(ctx, householdID)
		if err != nil {
			return nil, err
		}
		for _, source := range lowStock {
			items = append(items, s.lowStockLine(list, source))
		}
	}

	if req.Type == entities.ListTypeExpiryBased || req.Options.IncludeExpiring {
		expiring, err := s.pantryRepository.GetItemsExpiringBetween(ctx, householdID, now, now.AddDate(0, 0, entities.ExpiringSoonDays))
		if err != nil {
			return nil, err
		}
		for _, source := range expiring {
			items = append(items, s.expiryLine(list, source))
		}
	}

	if req.Type == entities.ListTypeRecipeBased {
		if req.Options.RecipeID == "" {
			return nil, domain.ErrRecipeRequired
		}
		recipeItems, err := s.recipeLines(ctx, list, []string{req.Options.RecipeID})
		if err != nil {
			return nil, err
		}
		items = append(items, recipeItems...)
	}

	if req.Type == entities.ListTypeMealPlanBased {
		recipeIDs, err := s.plannedRecipeIDs(ctx, householdID, req.Options, now)
		if err != nil {
			return nil, err
		}
		planItems, err := s.recipeLines(ctx, list, recipeIDs)
		if err != nil {
			return nil, err
		}
		for _, item := range planItems {
			item.Source = entities.ItemSourceMealPlan
		}
		items = append(items, planItems...)
	}

	return items, nil
}

func (s *shoppingListService) lowStockLine(list *entities.ShoppingList, source *entities.PantryItem) *entities.ShoppingListItem {
	quantity := restockTargetQuantity - source.Quantity
	if quantity < 1 {
		quantity = 1
	}

	return &entities.ShoppingListItem{
		ID:             uuid.New(),
		ShoppingListID: list.ID,
		Name:           source.Name,
		Category:       source.Category,
		Quantity:       quantity,
		Unit:           source.Unit,
		Priority:       entities.PriorityHigh,
		Source:         entities.ItemSourceLowStock,
		EstimatedPrice: source.Price,
		Currency:       source.Currency,
		Brand:          source.Brand,
		Barcode:        source.Barcode,
		Metadata:       map[string]string{"pantry_item_id": source.ID.String()},
	}
}

func (s *shoppingListService) expiryLine(list *entities.ShoppingList, source *entities.PantryItem) *entities.ShoppingListItem {
	item := &entities.ShoppingListItem{
		ID:             uuid.New(),
		ShoppingListID: list.ID,
		Name:           source.Name,
		Category:       source.Category,
		Quantity:       source.Quantity,
		Unit:           source.Unit,
		Priority:       entities.PriorityUrgent,
		Source:         entities.ItemSourceExpiry,
		EstimatedPrice: source.Price,
		Currency:       source.Currency,
		Brand:          source.Brand,
		Barcode:        source.Barcode,
		Metadata:       map[string]string{"pantry_item_id": source.ID.String()},
	}
	if source.ExpiryDate != nil {
		item.Description = fmt.Sprintf("Replacement for stock expiring on %s", source.ExpiryDate.Format("Jan 2, 2006"))
	}
	return item
}

// recipeLines emits one line per recipe ingredient with no active pantry
// match; ingredients shared between recipes are merged by name.
func (s *shoppingListService) recipeLines(ctx context.Context, list *entities.ShoppingList, recipeIDs []string) ([]*entities.ShoppingListItem, error) {
	pantryItems, err := s.pantryRepository.GetActiveItems(ctx, list.HouseholdID.String())
	if err != nil {
		return nil, err
	}

	inPantry := map[string]struct{}{}
	for _, item := range pantryItems {
		inPantry[strings.ToLower(item.Name)] = struct{}{}
	}

	merged := map[string]*entities.ShoppingListItem{}
	var order []string

	for _, recipeID := range recipeIDs {
		recipe, err := s.mealPlanRepository.GetRecipeByID(ctx, recipeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrRecipeNotFound
			}
			return nil, err
		}
		if recipe.HouseholdID != list.HouseholdID {
			return nil, domain.ErrRecipeNotFound
		}

		for _, ingredient := range recipe.Ingredients {
			key := strings.ToLower(ingredient.Name)
			if _, ok := inPantry[key]; ok {
				continue
			}
			if existing, ok := merged[key]; ok {
				existing.Quantity += ingredient.Quantity
				continue
			}
			merged[key] = &entities.ShoppingListItem{
				ID:             uuid.New(),
				ShoppingListID: list.ID,
				Name:           ingredient.Name,
				Category:       ingredient.Category,
				Quantity:       ingredient.Quantity,
				Unit:           ingredient.Unit,
				Priority:       entities.PriorityMedium,
				Source:         entities.ItemSourceRecipe,
				Metadata:       map[string]string{"recipe_id": recipe.ID.String()},
			}
			order = append(order, key)
		}
	}

	items := make([]*entities.ShoppingListItem, 0, len(order))
	for _, key := range order {
		items = append(items, merged[key])
	}
	return items, nil
}

func (s *shoppingListService) plannedRecipeIDs(ctx context.Context, householdID string, options domain.GenerateListOptions, now time.Time) ([]string, error) {
	from := now
	to := now.AddDate(0, 0, entities.ExpiringSoonDays)

	if options.PlanFrom != "" {
		parsed, err := time.Parse("2006-01-02", options.PlanFrom)
		if err != nil {
			return nil, domain.ErrInvalidPlanDay
		}
		from = parsed
	}
	if options.PlanTo != "" {
		parsed, err := time.Parse("2006-01-02", options.PlanTo)
		if err != nil {
			return nil, domain.ErrInvalidPlanDay
		}
		to = parsed
	}

	entries, err := s.mealPlanRepository.GetPlanEntries(ctx, householdID, from, to)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	var recipeIDs []string
	for _, entry := range entries {
		id := entry.RecipeID.String()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		recipeIDs = append(recipeIDs, id)
	}
	return recipeIDs, nil
}

func (s *shoppingListService) GetList(ctx context.Context, id string, householdID string) (domain.ShoppingListResponse, error) {
	list, err := s.getOwnedList(ctx, id, householdID)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return s.toListResponse(list, true), nil
}

func (s *shoppingListService) GetLists(ctx context.Context, householdID string, status string, page, limit int) ([]domain.ShoppingListResponse, int64, error) {
	lists, count, err := s.listRepository.GetLists(ctx, householdID, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.ShoppingListResponse
	for _, list := range lists {
		response = append(response, s.toListResponse(list, false))
	}

	return response, count, nil
}

func (s *shoppingListService) AddItem(ctx context.Context, listID string, req domain.AddListItemRequest, householdID string) (domain.ShoppingListItemResponse, error) {
	list, err := s.getOwnedList(ctx, listID, householdID)
	if err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	priority := req.Priority
	if priority == "" {
		priority = entities.PriorityMedium
	}

	item := &entities.ShoppingListItem{
		ID:             uuid.New(),
		ShoppingListID: list.ID,
		Name:           req.Name,
		Category:       req.Category,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		Priority:       priority,
		Source:         entities.ItemSourceManual,
		EstimatedPrice: req.EstimatedPrice,
		Currency:       list.Currency,
		IsOrganic:      req.IsOrganic,
		IsLocal:        req.IsLocal,
	}

	list.Items = append(list.Items, item)
	list.Stats = ComputeStats(list.Items)

	if err := s.listRepository.SaveItemWithStats(ctx, item, list); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *shoppingListService) RemoveItem(ctx context.Context, listID, itemID string, householdID string) error {
	list, err := s.getOwnedList(ctx, listID, householdID)
	if err != nil {
		return err
	}

	var target *entities.ShoppingListItem
	remaining := make([]*entities.ShoppingListItem, 0, len(list.Items))
	for _, item := range list.Items {
		if item.ID.String() == itemID {
			target = item
			continue
		}
		remaining = append(remaining, item)
	}
	if target == nil {
		return domain.ErrShoppingListItemNotFound
	}

	list.Items = remaining
	list.Stats = ComputeStats(remaining)

	return s.listRepository.DeleteItemWithStats(ctx, target, list)
}

func (s *shoppingListService) CompleteItem(ctx context.Context, listID, itemID string, req domain.CompleteListItemRequest, householdID string) error {
	list, err := s.getOwnedList(ctx, listID, householdID)
	if err != nil {
		return err
	}

	var target *entities.ShoppingListItem
	for _, item := range list.Items {
		if item.ID.String() == itemID {
			target = item
			break
		}
	}
	if target == nil {
		return domain.ErrShoppingListItemNotFound
	}

	target.IsCompleted = req.Completed
	if req.Completed {
		completedAt := s.now()
		target.CompletedAt = &completedAt
		if req.ActualPrice != nil {
			target.ActualPrice = req.ActualPrice
		}
	} else {
		target.CompletedAt = nil
	}

	list.Stats = ComputeStats(list.Items)
	switch {
	case list.Stats.TotalItems > 0 && list.Stats.PendingItems == 0:
		list.Status = entities.ListStatusCompleted
	case list.Stats.CompletedItems > 0:
		list.Status = entities.ListStatusInProgress
	}

	return s.listRepository.SaveItemWithStats(ctx, target, list)
}

func (s *shoppingListService) ArchiveList(ctx context.Context, listID string, householdID string) error {
	list, err := s.getOwnedList(ctx, listID, householdID)
	if err != nil {
		return err
	}

	list.Status = entities.ListStatusArchived
	return s.listRepository.UpdateList(ctx, list)
}

func (s *shoppingListService) getOwnedList(ctx context.Context, id string, householdID string) (*entities.ShoppingList, error) {
	list, err := s.listRepository.GetListByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoppingListNotFound
		}
		return nil, err
	}

	if list.HouseholdID.String() != householdID {
		return nil, domain.ErrShoppingListNotFound
	}

	return list, nil
}

func (s *shoppingListService) toListResponse(list *entities.ShoppingList, includeItems bool) domain.ShoppingListResponse {
	response := domain.ShoppingListResponse{
		ID:              list.ID.String(),
		HouseholdID:     list.HouseholdID.String(),
		Name:            list.Name,
		Status:          list.Status,
		Type:            list.Type,
		Currency:        list.Currency,
		EstimatedBudget: list.EstimatedBudget,
		Stats:           list.Stats,
		Metadata:        list.Metadata,
		CreatedAt:       list.CreatedAt,
	}

	if includeItems {
		for _, item := range list.Items {
			response.Items = append(response.Items, toItemResponse(item))
		}
	}

	return response
}

func toItemResponse(item *entities.ShoppingListItem) domain.ShoppingListItemResponse {
	return domain.ShoppingListItemResponse{
		ID:             item.ID.String(),
		Name:           item.Name,
		Description:    item.Description,
		Category:       item.Category,
		Quantity:       item.Quantity,
		Unit:           item.Unit,
		Priority:       item.Priority,
		Source:         item.Source,
		EstimatedPrice: item.EstimatedPrice,
		ActualPrice:    item.ActualPrice,
		Currency:       item.Currency,
		Brand:          item.Brand,
		IsOrganic:      item.IsOrganic,
		IsLocal:        item.IsLocal,
		IsCompleted:    item.IsCompleted,
		CompletedAt:    item.CompletedAt,
	}
}
