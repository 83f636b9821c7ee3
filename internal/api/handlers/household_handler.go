package handlers

import (
	"mindfulmeals-backend/domain"
	"mindfulmeals-backend/internal/api/presenters"
	"mindfulmeals-backend/pkg/household"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	HouseholdHandler interface {
		CreateHousehold(c *fiber.Ctx) error
		GetMyHousehold(c *fiber.Ctx) error
		UpdateHousehold(c *fiber.Ctx) error
	}

	householdHandler struct {
		householdService household.HouseholdService
		validator        *validator.Validate
	}
)

func NewHouseholdHandler(householdService household.HouseholdService, validator *validator.Validate) HouseholdHandler {
	return &householdHandler{
		householdService: householdService,
		validator:        validator,
	}
}

func (h *householdHandler) CreateHousehold(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateHouseholdRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateHousehold, err)
	}

	res, err := h.householdService.CreateHousehold(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateHousehold, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateHousehold)
}

func (h *householdHandler) GetMyHousehold(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.householdService.GetMyHousehold(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetHousehold, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHousehold)
}

func (h *householdHandler) UpdateHousehold(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateHouseholdRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateHousehold, err)
	}

	if err := h.householdService.UpdateHousehold(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateHousehold, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateHousehold)
}
