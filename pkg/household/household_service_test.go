package household

import (
	"context"
	"testing"

	"mindfulmeals-backend/domain"
	"mindfulmeals-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeHouseholdRepository struct {
	households map[string]*entities.Household
}

func newFakeHouseholdRepository() *fakeHouseholdRepository {
	return &fakeHouseholdRepository{households: map[string]*entities.Household{}}
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

func TestCreateHousehold(t *testing.T) {
	repo := newFakeHouseholdRepository()
	service := NewHouseholdService(repo)
	ownerID := uuid.NewString()

	res, err := service.CreateHousehold(context.Background(), domain.CreateHouseholdRequest{
		Name:          "Smith Family",
		Region:        "north",
		MonthlyBudget: 400,
	}, ownerID)

	assert.NoError(t, err)
	assert.Equal(t, "Smith Family", res.Name)
	assert.Equal(t, "USD", res.Currency) // default when none given
	assert.Equal(t, 400.0, res.MonthlyBudget)
	assert.Len(t, repo.households, 1)
}

func TestCreateHouseholdRejectsSecond(t *testing.T) {
	repo := newFakeHouseholdRepository()
	service := NewHouseholdService(repo)
	ownerID := uuid.NewString()

	_, err := service.CreateHousehold(context.Background(), domain.CreateHouseholdRequest{Name: "First"}, ownerID)
	assert.NoError(t, err)

	_, err = service.CreateHousehold(context.Background(), domain.CreateHouseholdRequest{Name: "Second"}, ownerID)
	assert.ErrorIs(t, err, domain.ErrHouseholdExists)
	assert.Len(t, repo.households, 1)
}

func TestCreateHouseholdBadOwnerID(t *testing.T) {
	service := NewHouseholdService(newFakeHouseholdRepository())

	_, err := service.CreateHousehold(context.Background(), domain.CreateHouseholdRequest{Name: "Smith"}, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestGetMyHouseholdNotFound(t *testing.T) {
	service := NewHouseholdService(newFakeHouseholdRepository())

	_, err := service.GetMyHousehold(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrHouseholdNotFound)
}

func TestUpdateHouseholdPartial(t *testing.T) {
	repo := newFakeHouseholdRepository()
	service := NewHouseholdService(repo)
	ownerID := uuid.NewString()

	created, err := service.CreateHousehold(context.Background(), domain.CreateHouseholdRequest{
		Name:     "Smith Family",
		Region:   "north",
		Currency: "EUR",
	}, ownerID)
	assert.NoError(t, err)

	budget := 250.0
	err = service.UpdateHousehold(context.Background(), domain.UpdateHouseholdRequest{
		Name:          "Smith-Jones Family",
		MonthlyBudget: &budget,
	}, ownerID)
	assert.NoError(t, err)

	updated := repo.households[created.ID]
	assert.Equal(t, "Smith-Jones Family", updated.Name)
	assert.Equal(t, "north", updated.Region) // untouched fields survive
	assert.Equal(t, "EUR", updated.Currency)
	assert.Equal(t, 250.0, updated.MonthlyBudget)
}
