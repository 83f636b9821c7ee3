package shoppinglist

import (
	"context"
	"testing"
	"time"

	"mindfulmeals-backend/domain"
	"mindfulmeals-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeListRepository struct {
	lists       map[string]*entities.ShoppingList
	savedLists  []*entities.ShoppingList
	savedItems  []*entities.ShoppingListItem
	deletedItem *entities.ShoppingListItem
}

func newFakeListRepository() *fakeListRepository {
	return &fakeListRepository{lists: map[string]*entities.ShoppingList{}}
}

func (r *fakeListRepository) CreateListWithItems(_ context.Context, list *entities.ShoppingList, items []*entities.ShoppingListItem) error {
	list.Items = items
	r.lists[list.ID.String()] = list
	return nil
}

func (r *fakeListRepository) GetListByID(_ context.Context, id string) (*entities.ShoppingList, error) {
	list, ok := r.lists[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return list, nil
}

func (r *fakeListRepository) GetLists(_ context.Context, householdID string, status string, page, limit int) ([]*entities.ShoppingList, int64, error) {
	var lists []*entities.ShoppingList
	for _, list := range r.lists {
		if list.HouseholdID.String() != householdID {
			continue
		}
		if status != "" && status != "all" && list.Status != status {
			continue
		}
		lists = append(lists, list)
	}
	return lists, int64(len(lists)), nil
}

func (r *fakeListRepository) UpdateList(_ context.Context, list *entities.ShoppingList) error {
	r.lists[list.ID.String()] = list
	r.savedLists = append(r.savedLists, list)
	return nil
}

func (r *fakeListRepository) GetItemByID(_ context.Context, id string) (*entities.ShoppingListItem, error) {
	for _, list := range r.lists {
		for _, item := range list.Items {
			if item.ID.String() == id {
				return item, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeListRepository) GetListItems(_ context.Context, listID string) ([]*entities.ShoppingListItem, error) {
	list, ok := r.lists[listID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return list.Items, nil
}

func (r *fakeListRepository) SaveItemWithStats(_ context.Context, item *entities.ShoppingListItem, list *entities.ShoppingList) error {
	r.savedItems = append(r.savedItems, item)
	r.savedLists = append(r.savedLists, list)
	r.lists[list.ID.String()] = list
	return nil
}

func (r *fakeListRepository) DeleteItemWithStats(_ context.Context, item *entities.ShoppingListItem, list *entities.ShoppingList) error {
	r.deletedItem = item
	r.savedLists = append(r.savedLists, list)
	r.lists[list.ID.String()] = list
	return nil
}

type fakeHouseholdRepository struct {
	households map[string]*entities.Household
}

func (r *fakeHouseholdRepository) CreateHousehold(_ context.Context, household *entities.Household) error {
	r.households[household.ID.String()] = household
	return nil
}

func (r *fakeHouseholdRepository) GetHouseholdByID(_ context.Context, id string) (*entities.Household, error) {
	household, ok := r.households[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return household, nil
}

func (r *fakeHouseholdRepository) GetHouseholdByOwner(_ context.Context, ownerID string) (*entities.Household, error) {
	for _, household := range r.households {
		if household.OwnerID.String() == ownerID {
			return household, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeHouseholdRepository) UpdateHousehold(_ context.Context, household *entities.Household) error {
	r.households[household.ID.String()] = household
	return nil
}

type fakePantryRepository struct {
	lowStock []*entities.PantryItem
	expiring []*entities.PantryItem
	active   []*entities.PantryItem
}

func (r *fakePantryRepository) AddItem(_ context.Context, _ *entities.PantryItem) error { return nil }

func (r *fakePantryRepository) GetItemByID(_ context.Context, _ string) (*entities.PantryItem, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePantryRepository) GetItemByBarcode(_ context.Context, _, _ string) (*entities.PantryItem, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePantryRepository) UpdateItem(_ context.Context, _ *entities.PantryItem) error {
	return nil
}

func (r *fakePantryRepository) QueryItems(_ context.Context, _ string, _ domain.PantryItemFilters, _ time.Time, _, _ int) ([]*entities.PantryItem, int64, error) {
	return nil, 0, nil
}

func (r *fakePantryRepository) GetActiveItems(_ context.Context, _ string) ([]*entities.PantryItem, error) {
	return r.active, nil
}

func (r *fakePantryRepository) GetLowStockItems(_ context.Context, _ string) ([]*entities.PantryItem, error) {
	return r.lowStock, nil
}

func (r *fakePantryRepository) GetItemsExpiringBetween(_ context.Context, _ string, _, _ time.Time) ([]*entities.PantryItem, error) {
	return r.expiring, nil
}

type fakeMealPlanRepository struct {
	recipes map[string]*entities.Recipe
	entries []*entities.MealPlanEntry
}

func (r *fakeMealPlanRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	r.recipes[recipe.ID.String()] = recipe
	return nil
}

func (r *fakeMealPlanRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	recipe, ok := r.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}

func (r *fakeMealPlanRepository) GetRecipes(_ context.Context, _ string, _, _ int) ([]*entities.Recipe, int64, error) {
	return nil, 0, nil
}

func (r *fakeMealPlanRepository) CreatePlanEntry(_ context.Context, entry *entities.MealPlanEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeMealPlanRepository) GetPlanEntries(_ context.Context, _ string, _, _ time.Time) ([]*entities.MealPlanEntry, error) {
	return r.entries, nil
}

type serviceFixture struct {
	service     *shoppingListService
	listRepo    *fakeListRepository
	pantryRepo  *fakePantryRepository
	mealRepo    *fakeMealPlanRepository
	household   *entities.Household
	householdID string
	now         time.Time
}

func newServiceFixture() *serviceFixture {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	household := &entities.Household{
		ID:       uuid.New(),
		OwnerID:  uuid.New(),
		Name:     "Test Household",
		Currency: "USD",
	}

	listRepo := newFakeListRepository()
	pantryRepo := &fakePantryRepository{}
	mealRepo := &fakeMealPlanRepository{recipes: map[string]*entities.Recipe{}}
	householdRepo := &fakeHouseholdRepository{
		households: map[string]*entities.Household{household.ID.String(): household},
	}

	service := &shoppingListService{
		listRepository:      listRepo,
		householdRepository: householdRepo,
		pantryRepository:    pantryRepo,
		mealPlanRepository:  mealRepo,
		now:                 func() time.Time { return now },
	}

	return &serviceFixture{
		service:     service,
		listRepo:    listRepo,
		pantryRepo:  pantryRepo,
		mealRepo:    mealRepo,
		household:   household,
		householdID: household.ID.String(),
		now:         now,
	}
}

func TestGenerateListUnknownHousehold(t *testing.T) {
	f := newServiceFixture()

	_, err := f.service.GenerateList(context.Background(), domain.GenerateListRequest{
		Type: entities.ListTypeLowStock,
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrHouseholdNotFound)
	assert.Empty(t, f.listRepo.lists)
}

func TestGenerateListLowStockAndExpiry(t *testing.T) {
	f := newServiceFixture()

	expiry := f.now.AddDate(0, 0, 3)
	f.pantryRepo.lowStock = []*entities.PantryItem{
		{ID: uuid.New(), HouseholdID: f.household.ID, Name: "Olive Oil", Category: "condiments", Quantity: 0.3, Unit: "litre"},
	}
	f.pantryRepo.expiring = []*entities.PantryItem{
		{ID: uuid.New(), HouseholdID: f.household.ID, Name: "Yogurt", Category: "dairy", Quantity: 5, Unit: "cup", ExpiryDate: &expiry},
	}

	res, err := f.service.GenerateList(context.Background(), domain.GenerateListRequest{
		Type: entities.ListTypeAutoGenerated,
		Options: domain.GenerateListOptions{
			IncludeLowStock: true,
			IncludeExpiring: true,
			Budget:          50,
		},
	}, f.householdID)

	assert.NoError(t, err)
	assert.Len(t, res.Items, 2)

	restock := res.Items[0]
	assert.Equal(t, "Olive Oil", restock.Name)
	assert.InDelta(t, 1.7, restock.Quantity, 1e-9)
	assert.Equal(t, entities.PriorityHigh, restock.Priority)
	assert.Equal(t, entities.ItemSourceLowStock, restock.Source)

	replacement := res.Items[1]
	assert.Equal(t, "Yogurt", replacement.Name)
	assert.InDelta(t, 5.0, replacement.Quantity, 1e-9)
	assert.Equal(t, entities.PriorityUrgent, replacement.Priority)
	assert.Equal(t, entities.ItemSourceExpiry, replacement.Source)
	assert.Equal(t, "Replacement for stock expiring on Mar 13, 2025", replacement.Description)

	assert.Equal(t, 2, res.Stats.TotalItems)
	assert.Equal(t, 2, res.Stats.PendingItems)
	assert.Equal(t, 1, res.Stats.UrgentItems)
	assert.Equal(t, 1, res.Stats.HighPriority)

	assert.Equal(t, entities.ListStatusDraft, res.Status)
	assert.Equal(t, "USD", res.Currency)
	assert.Equal(t, 50.0, res.EstimatedBudget)
	assert.Equal(t, "system", res.Metadata["generated_by"])
}

func TestGenerateListRestockFloorsAtOne(t *testing.T) {
	f := newServiceFixture()

	// Nearly restocked already; the line still asks for at least one unit.
	f.pantryRepo.lowStock = []*entities.PantryItem{
		{ID: uuid.New(), HouseholdID: f.household.ID, Name: "Salt", Category: "condiments", Quantity: 1.8, Unit: "kg"},
	}

	res, err := f.service.GenerateList(context.Background(), domain.GenerateListRequest{
		Type: entities.ListTypeLowStock,
	}, f.householdID)

	assert.NoError(t, err)
	assert.Len(t, res.Items, 1)
	assert.InDelta(t, 1.0, res.Items[0].Quantity, 1e-9)
}

func TestGenerateListNoDeduplicationAcrossBranches(t *testing.T) {
	f := newServiceFixture()

	expiry := f.now.AddDate(0, 0, 2)
	item := &entities.PantryItem{
		ID: uuid.New(), HouseholdID: f.household.ID,
		Name: "Milk", Category: "dairy", Quantity: 0.2, Unit: "litre", ExpiryDate: &expiry,
	}
	f.pantryRepo.lowStock = []*entities.PantryItem{item}
	f.pantryRepo.expiring = []*entities.PantryItem{item}

	res, err := f.service.GenerateList(context.Background(), domain.GenerateListRequest{
		Type: entities.ListTypeAutoGenerated,
		Options: domain.GenerateListOptions{
			IncludeLowStock: true,
			IncludeExpiring: true,
		},
	}, f.householdID)

	assert.NoError(t, err)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, entities.ItemSourceLowStock, res.Items[0].Source)
	assert.Equal(t, entities.ItemSourceExpiry, res.Items[1].Source)
}

func TestGenerateListRecipeBased(t *testing.T) {
	f := newServiceFixture()

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		HouseholdID: f.household.ID,
		Title:       "Pasta",
		Ingredients: []entities.RecipeIngredient{
			{Name: "Spaghetti", Quantity: 1, Unit: "pack", Category: "grains"},
			{Name: "Tomato", Quantity: 4, Unit: "piece", Category: "produce"},
		},
	}
	f.mealRepo.recipes[recipe.ID.String()] = recipe

	// Tomatoes are already in the pantry, so only the pasta line survives.
	f.pantryRepo.active = []*entities.PantryItem{
		{ID: uuid.New(), HouseholdID: f.household.ID, Name: "tomato", Quantity: 6, Unit: "piece"},
	}

	res, err := f.service.GenerateList(context.Background(), domain.GenerateListRequest{
		Type:    entities.ListTypeRecipeBased,
		Options: domain.GenerateListOptions{RecipeID: recipe.ID.String()},
	}, f.householdID)

	assert.NoError(t, err)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, "Spaghetti", res.Items[0].Name)
	assert.Equal(t, entities.PriorityMedium, res.Items[0].Priority)
	assert.Equal(t, entities.ItemSourceRecipe, res.Items[0].Source)
}

func TestGenerateListRecipeBasedRequiresRecipeID(t *testing.T) {
	f := newServiceFixture()

	_, err := f.service.GenerateList(context.Background(), domain.GenerateListRequest{
		Type: entities.ListTypeRecipeBased,
	}, f.householdID)

	assert.ErrorIs(t, err, domain.ErrRecipeRequired)
}

func TestGenerateListMealPlanBased(t *testing.T) {
	f := newServiceFixture()

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		HouseholdID: f.household.ID,
		Title:       "Soup",
		Ingredients: []entities.RecipeIngredient{
			{Name: "Carrot", Quantity: 3, Unit: "piece", Category: "produce"},
		},
	}
	f.mealRepo.recipes[recipe.ID.String()] = recipe
	f.mealRepo.entries = []*entities.MealPlanEntry{
		{ID: uuid.New(), HouseholdID: f.household.ID, RecipeID: recipe.ID, PlannedFor: f.now.AddDate(0, 0, 1)},
		{ID: uuid.New(), HouseholdID: f.household.ID, RecipeID: recipe.ID, PlannedFor: f.now.AddDate(0, 0, 2)},
	}

	res, err := f.service.GenerateList(context.Background(), domain.GenerateListRequest{
		Type: entities.ListTypeMealPlanBased,
	}, f.householdID)

	assert.NoError(t, err)
	// Same recipe planned twice still contributes its ingredients once.
	assert.Len(t, res.Items, 1)
	assert.Equal(t, "Carrot", res.Items[0].Name)
	assert.Equal(t, entities.ItemSourceMealPlan, res.Items[0].Source)
}

func TestAddItemDefaultsAndStats(t *testing.T) {
	f := newServiceFixture()

	list := &entities.ShoppingList{
		ID:          uuid.New(),
		HouseholdID: f.household.ID,
		Name:        "Weekly",
		Status:      entities.ListStatusDraft,
		Currency:    "USD",
	}
	f.listRepo.lists[list.ID.String()] = list

	res, err := f.service.AddItem(context.Background(), list.ID.String(), domain.AddListItemRequest{
		Name:           "Honey",
		Category:       "condiments",
		Quantity:       1,
		Unit:           "jar",
		EstimatedPrice: floatPtr(6.50),
	}, f.householdID)

	assert.NoError(t, err)
	assert.Equal(t, entities.PriorityMedium, res.Priority)
	assert.Equal(t, entities.ItemSourceManual, res.Source)
	assert.Equal(t, "USD", res.Currency)
	assert.Equal(t, 1, list.Stats.TotalItems)
	assert.InDelta(t, 6.50, list.Stats.EstimatedTotal, 1e-9)
}

func TestCompleteItemUpdatesStatsAndStatus(t *testing.T) {
	f := newServiceFixture()

	list := &entities.ShoppingList{
		ID:          uuid.New(),
		HouseholdID: f.household.ID,
		Name:        "Weekly",
		Status:      entities.ListStatusDraft,
		Type:        entities.ListTypeManual,
	}
	first := &entities.ShoppingListItem{ID: uuid.New(), ShoppingListID: list.ID, Name: "Eggs"}
	second := &entities.ShoppingListItem{ID: uuid.New(), ShoppingListID: list.ID, Name: "Butter"}
	list.Items = []*entities.ShoppingListItem{first, second}
	list.Stats = ComputeStats(list.Items)
	f.listRepo.lists[list.ID.String()] = list

	err := f.service.CompleteItem(context.Background(), list.ID.String(), first.ID.String(), domain.CompleteListItemRequest{
		Completed:   true,
		ActualPrice: floatPtr(3.10),
	}, f.householdID)

	assert.NoError(t, err)
	assert.True(t, first.IsCompleted)
	assert.NotNil(t, first.CompletedAt)
	assert.Equal(t, f.now, *first.CompletedAt)
	assert.Equal(t, 3.10, *first.ActualPrice)
	assert.Equal(t, entities.ListStatusInProgress, list.Status)
	assert.Equal(t, 1, list.Stats.CompletedItems)
	assert.Equal(t, 1, list.Stats.PendingItems)

	err = f.service.CompleteItem(context.Background(), list.ID.String(), second.ID.String(), domain.CompleteListItemRequest{
		Completed: true,
	}, f.householdID)

	assert.NoError(t, err)
	assert.Equal(t, entities.ListStatusCompleted, list.Status)
	assert.Equal(t, 0, list.Stats.PendingItems)
}

func TestCompleteItemUnknownItem(t *testing.T) {
	f := newServiceFixture()

	list := &entities.ShoppingList{
		ID:          uuid.New(),
		HouseholdID: f.household.ID,
		Name:        "Weekly",
		Status:      entities.ListStatusDraft,
	}
	f.listRepo.lists[list.ID.String()] = list

	err := f.service.CompleteItem(context.Background(), list.ID.String(), uuid.NewString(), domain.CompleteListItemRequest{Completed: true}, f.householdID)
	assert.ErrorIs(t, err, domain.ErrShoppingListItemNotFound)
}

func TestRemoveItemRecomputesStats(t *testing.T) {
	f := newServiceFixture()

	list := &entities.ShoppingList{
		ID:          uuid.New(),
		HouseholdID: f.household.ID,
		Name:        "Weekly",
		Status:      entities.ListStatusDraft,
	}
	keep := &entities.ShoppingListItem{ID: uuid.New(), ShoppingListID: list.ID, Name: "Eggs", EstimatedPrice: floatPtr(2.0)}
	drop := &entities.ShoppingListItem{ID: uuid.New(), ShoppingListID: list.ID, Name: "Butter", EstimatedPrice: floatPtr(4.0)}
	list.Items = []*entities.ShoppingListItem{keep, drop}
	list.Stats = ComputeStats(list.Items)
	f.listRepo.lists[list.ID.String()] = list

	err := f.service.RemoveItem(context.Background(), list.ID.String(), drop.ID.String(), f.householdID)

	assert.NoError(t, err)
	assert.Equal(t, drop, f.listRepo.deletedItem)
	assert.Equal(t, 1, list.Stats.TotalItems)
	assert.InDelta(t, 2.0, list.Stats.EstimatedTotal, 1e-9)
}

func TestListAccessScopedToHousehold(t *testing.T) {
	f := newServiceFixture()

	list := &entities.ShoppingList{
		ID:          uuid.New(),
		HouseholdID: uuid.New(), // someone else's list
		Name:        "Not yours",
	}
	f.listRepo.lists[list.ID.String()] = list

	_, err := f.service.GetList(context.Background(), list.ID.String(), f.householdID)
	assert.ErrorIs(t, err, domain.ErrShoppingListNotFound)
}

func TestArchiveList(t *testing.T) {
	f := newServiceFixture()

	list := &entities.ShoppingList{
		ID:          uuid.New(),
		HouseholdID: f.household.ID,
		Status:      entities.ListStatusCompleted,
	}
	f.listRepo.lists[list.ID.String()] = list

	err := f.service.ArchiveList(context.Background(), list.ID.String(), f.householdID)
	assert.NoError(t, err)
	assert.Equal(t, entities.ListStatusArchived, list.Status)
}
