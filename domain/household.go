package domain

import (
	"errors"
)

var (
	MessageSuccessCreateHousehold = "household created successfully"
	MessageSuccessGetHousehold    = "household retrieved successfully"
	MessageSuccessUpdateHousehold = "household updated successfully"

	MessageFailedCreateHousehold = "failed to create household"
	MessageFailedGetHousehold    = "failed to retrieve household"
	MessageFailedUpdateHousehold = "failed to update household"

	ErrHouseholdNotFound = errors.New("household not found")
	ErrHouseholdExists   = errors.New("user already owns a household")
)

type (
	CreateHouseholdRequest struct {
		Name              string  `json:"name" validate:"required"`
		Region            string  `json:"region"`
		DietaryPreference string  `json:"dietary_preference"`
		Currency          string  `json:"currency" validate:"omitempty,len=3"`
		MonthlyBudget     float64 `json:"monthly_budget" validate:"omitempty,min=0"`
	}

	UpdateHouseholdRequest struct {
		Name              string   `json:"name" validate:"omitempty"`
		Region            string   `json:"region"`
		DietaryPreference string   `json:"dietary_preference"`
		Currency          string   `json:"currency" validate:"omitempty,len=3"`
		MonthlyBudget     *float64 `json:"monthly_budget" validate:"omitempty,min=0"`
	}

	HouseholdResponse struct {
		ID                string  `json:"id"`
		Name              string  `json:"name"`
		Region            string  `json:"region,omitempty"`
		DietaryPreference string  `json:"dietary_preference,omitempty"`
		Currency          string  `json:"currency"`
		MonthlyBudget     float64 `json:"monthly_budget"`
	}
)
