package household

import (
	"context"
	"errors"

	"mindfulmeals-backend/domain"
	"mindfulmeals-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	HouseholdService interface {
		CreateHousehold(ctx context.Context, req domain.CreateHouseholdRequest, ownerID string) (domain.HouseholdResponse, error)
		GetMyHousehold(ctx context.Context, ownerID string) (domain.HouseholdResponse, error)
		UpdateHousehold(ctx context.Context, req domain.UpdateHouseholdRequest, ownerID string) error
	}

	householdService struct {
		householdRepository HouseholdRepository
	}
)

func NewHouseholdService(householdRepository HouseholdRepository) HouseholdService {
	return &householdService{householdRepository: householdRepository}
}

func (s *householdService) CreateHousehold(ctx context.Context, req domain.CreateHouseholdRequest, ownerID string) (domain.HouseholdResponse, error) {
	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return domain.HouseholdResponse{}, domain.ErrParseUUID
	}

	if _, err := s.householdRepository.GetHouseholdByOwner(ctx, ownerID); err == nil {
		return domain.HouseholdResponse{}, domain.ErrHouseholdExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.HouseholdResponse{}, err
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	household := &entities.Household{
		ID:                uuid.New(),
		OwnerID:           ownerUUID,
		Name:              req.Name,
		Region:            req.Region,
		DietaryPreference: req.DietaryPreference,
		Currency:          currency,
		MonthlyBudget:     req.MonthlyBudget,
	}

	if err := s.householdRepository.CreateHousehold(ctx, household); err != nil {
		return domain.HouseholdResponse{}, err
	}

	return toResponse(household), nil
}

func (s *householdService) GetMyHousehold(ctx context.Context, ownerID string) (domain.HouseholdResponse, error) {
	household, err := s.householdRepository.GetHouseholdByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.HouseholdResponse{}, domain.ErrHouseholdNotFound
		}
		return domain.HouseholdResponse{}, err
	}
	return toResponse(household), nil
}

func (s *householdService) UpdateHousehold(ctx context.Context, req domain.UpdateHouseholdRequest, ownerID string) error {
	household, err := s.householdRepository.GetHouseholdByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrHouseholdNotFound
		}
		return err
	}

	if req.Name != "" {
		household.Name = req.Name
	}
	if req.Region != "" {
		household.Region = req.Region
	}
	if req.DietaryPreference != "" {
		household.DietaryPreference = req.DietaryPreference
	}
	if req.Currency != "" {
		household.Currency = req.Currency
	}
	if req.MonthlyBudget != nil {
		household.MonthlyBudget = *req.MonthlyBudget
	}

	return s.householdRepository.UpdateHousehold(ctx, household)
}

func toResponse(household *entities.Household) domain.HouseholdResponse {
	return domain.HouseholdResponse{
		ID:                household.ID.String(),
		Name:              household.Name,
		Region:            household.Region,
		DietaryPreference: household.DietaryPreference,
		Currency:          household.Currency,
		MonthlyBudget:     household.MonthlyBudget,
	}
}
