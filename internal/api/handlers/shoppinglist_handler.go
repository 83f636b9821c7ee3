package handlers

import (
	"mindfulmeals-backend/domain"
	"mindfulmeals-backend/internal/api/presenters"
	"mindfulmeals-backend/pkg/household"
	"mindfulmeals-backend/pkg/shoppinglist"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingListHandler interface {
		GenerateList(c *fiber.Ctx) error
		GetList(c *fiber.Ctx) error
		GetLists(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		RemoveItem(c *fiber.Ctx) error
		CompleteItem(c *fiber.Ctx) error
		ArchiveList(c *fiber.Ctx) error
	}

	shoppingListHandler struct {
		listService      shoppinglist.ShoppingListService
		householdService household.HouseholdService
		validator        *validator.Validate
	}
)

func NewShoppingListHandler(listService shoppinglist.ShoppingListService, householdService household.HouseholdService, validator *validator.Validate) ShoppingListHandler {
	return &shoppingListHandler{
		listService:      listService,
		householdService: householdService,
		validator:        validator,
	}
}

func (h *shoppingListHandler) householdID(c *fiber.Ctx) (string, error) {
	userID := c.Locals("user_id").(string)
	res, err := h.householdService.GetMyHousehold(c.Context(), userID)
	if err != nil {
		return "", err
	}
	return res.ID, nil
}

func (h *shoppingListHandler) GenerateList(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGenerateList, err)
	}

	req := new(domain.GenerateListRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateList, err)
	}

	res, err := h.listService.GenerateList(c.Context(), *req, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGenerateList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessGenerateList)
}

func (h *shoppingListHandler) GetList(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetShoppingList, err)
	}

	res, err := h.listService.GetList(c.Context(), c.Params("id"), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *shoppingListHandler) GetLists(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetShoppingLists, err)
	}

	status := c.Query("status")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	lists, total, err := h.listService.GetLists(c.Context(), householdID, status, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetShoppingLists, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"lists": lists,
		"total": total,
		"page":  page,
		"limit": limit,
	}, fiber.StatusOK, domain.MessageSuccessGetShoppingLists)
}

func (h *shoppingListHandler) AddItem(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddListItem, err)
	}

	req := new(domain.AddListItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddListItem, err)
	}

	res, err := h.listService.AddItem(c.Context(), c.Params("id"), *req, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddListItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddListItem)
}

func (h *shoppingListHandler) RemoveItem(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedRemoveListItem, err)
	}

	if err := h.listService.RemoveItem(c.Context(), c.Params("id"), c.Params("itemId"), householdID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedRemoveListItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveListItem)
}

func (h *shoppingListHandler) CompleteItem(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCompleteListItem, err)
	}

	req := new(domain.CompleteListItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteListItem, err)
	}

	if err := h.listService.CompleteItem(c.Context(), c.Params("id"), c.Params("itemId"), *req, householdID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCompleteListItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCompleteListItem)
}

func (h *shoppingListHandler) ArchiveList(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedArchiveList, err)
	}

	if err := h.listService.ArchiveList(c.Context(), c.Params("id"), householdID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedArchiveList, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessArchiveList)
}
