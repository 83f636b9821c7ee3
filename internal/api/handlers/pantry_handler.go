package handlers

import (
	"mindfulmeals-backend/domain"
	"mindfulmeals-backend/internal/api/presenters"
	"mindfulmeals-backend/pkg/household"
	"mindfulmeals-backend/pkg/pantry"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PantryHandler interface {
		AddItem(c *fiber.Ctx) error
		GetItems(c *fiber.Ctx) error
		GetItemByID(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
		ConsumeItem(c *fiber.Ctx) error
		TrackWaste(c *fiber.Ctx) error
		ScanBarcode(c *fiber.Ctx) error
		GetInventoryAnalytics(c *fiber.Ctx) error
		CheckExpiry(c *fiber.Ctx) error
		UploadItemImage(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		GetStorageLocations(c *fiber.Ctx) error
	}

	pantryHandler struct {
		pantryService    pantry.PantryService
		householdService household.HouseholdService
		validator        *validator.Validate
	}
)

func NewPantryHandler(pantryService pantry.PantryService, householdService household.HouseholdService, validator *validator.Validate) PantryHandler {
	return &pantryHandler{
		pantryService:    pantryService,
		householdService: householdService,
		validator:        validator,
	}
}

func (h *pantryHandler) householdID(c *fiber.Ctx) (string, error) {
	userID := c.Locals("user_id").(string)
	res, err := h.householdService.GetMyHousehold(c.Context(), userID)
	if err != nil {
		return "", err
	}
	return res.ID, nil
}

func (h *pantryHandler) AddItem(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddPantryItem, err)
	}

	req := new(domain.AddPantryItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPantryItem, err)
	}

	res, err := h.pantryService.AddItem(c.Context(), *req, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddPantryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddPantryItem)
}

func (h *pantryHandler) GetItems(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetPantryItems, err)
	}

	filters := new(domain.PantryItemFilters)
	if err := c.QueryParser(filters); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPantryItems, err)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	items, total, err := h.pantryService.GetItems(c.Context(), householdID, *filters, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetPantryItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"total": total,
		"page":  page,
		"limit": limit,
	}, fiber.StatusOK, domain.MessageSuccessGetPantryItems)
}

func (h *pantryHandler) GetItemByID(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetPantryItems, err)
	}

	res, err := h.pantryService.GetItemByID(c.Context(), c.Params("id"), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetPantryItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPantryItems)
}

func (h *pantryHandler) UpdateItem(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdatePantryItem, err)
	}

	req := new(domain.UpdatePantryItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePantryItem, err)
	}

	if err := h.pantryService.UpdateItem(c.Context(), c.Params("id"), *req, householdID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdatePantryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdatePantryItem)
}

func (h *pantryHandler) DeleteItem(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeletePantryItem, err)
	}

	if err := h.pantryService.DeleteItem(c.Context(), c.Params("id"), householdID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeletePantryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePantryItem)
}

func (h *pantryHandler) ConsumeItem(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedConsumePantryItem, err)
	}

	req := new(domain.ConsumePantryItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConsumePantryItem, err)
	}

	if err := h.pantryService.ConsumeItem(c.Context(), c.Params("id"), req.Quantity, householdID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedConsumePantryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessConsumePantryItem)
}

func (h *pantryHandler) TrackWaste(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedTrackWaste, err)
	}

	req := new(domain.TrackWasteRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTrackWaste, err)
	}

	if err := h.pantryService.TrackWaste(c.Context(), c.Params("id"), *req, householdID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedTrackWaste, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessTrackWaste)
}

func (h *pantryHandler) ScanBarcode(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedScanBarcode, err)
	}

	req := new(domain.ScanBarcodeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanBarcode, err)
	}

	res, err := h.pantryService.ScanBarcode(c.Context(), req.Barcode, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedScanBarcode, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessScanBarcode)
}

func (h *pantryHandler) GetInventoryAnalytics(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetAnalytics, err)
	}

	res, err := h.pantryService.GetInventoryAnalytics(c.Context(), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetAnalytics, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAnalytics)
}

func (h *pantryHandler) CheckExpiry(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedExpiryCheck, err)
	}

	days := c.QueryInt("days", 0)

	res, err := h.pantryService.CheckExpiry(c.Context(), householdID, days)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedExpiryCheck, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessExpiryCheck)
}

func (h *pantryHandler) UploadItemImage(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUploadItemImage, err)
	}

	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadItemImage, err)
	}

	if err := h.pantryService.UploadItemImage(c.Context(), c.Params("id"), image, householdID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUploadItemImage, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUploadItemImage)
}

func (h *pantryHandler) GetCategories(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, domain.PantryCategories, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *pantryHandler) GetStorageLocations(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, domain.StorageLocations, fiber.StatusOK, domain.MessageSuccessGetStorageLocations)
}
