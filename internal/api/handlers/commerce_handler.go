package handlers

import (
	"mindfulmeals-backend/domain"
	"mindfulmeals-backend/internal/api/presenters"
	"mindfulmeals-backend/pkg/commerce"
	"mindfulmeals-backend/pkg/household"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CommerceHandler interface {
		GetVendors(c *fiber.Ctx) error
		GetVendorProducts(c *fiber.Ctx) error
		CreateOrder(c *fiber.Ctx) error
		GetOrder(c *fiber.Ctx) error
		PaymentWebhook(c *fiber.Ctx) error
	}

	commerceHandler struct {
		commerceService  commerce.CommerceService
		householdService household.HouseholdService
		validator        *validator.Validate
	}
)

func NewCommerceHandler(commerceService commerce.CommerceService, householdService household.HouseholdService, validator *validator.Validate) CommerceHandler {
	return &commerceHandler{
		commerceService:  commerceService,
		householdService: householdService,
		validator:        validator,
	}
}

func (h *commerceHandler) householdID(c *fiber.Ctx) (string, error) {
	userID := c.Locals("user_id").(string)
	res, err := h.householdService.GetMyHousehold(c.Context(), userID)
	if err != nil {
		return "", err
	}
	return res.ID, nil
}

func (h *commerceHandler) GetVendors(c *fiber.Ctx) error {
	region := c.Query("region")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	vendors, total, err := h.commerceService.GetVendors(c.Context(), region, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetVendors, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"vendors": vendors,
		"total":   total,
		"page":    page,
		"limit":   limit,
	}, fiber.StatusOK, domain.MessageSuccessGetVendors)
}

func (h *commerceHandler) GetVendorProducts(c *fiber.Ctx) error {
	search := c.Query("search")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	products, total, err := h.commerceService.GetVendorProducts(c.Context(), c.Params("id"), search, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"products": products,
		"total":    total,
		"page":     page,
		"limit":    limit,
	}, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *commerceHandler) CreateOrder(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateOrder, err)
	}

	req := new(domain.CreateOrderRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOrder, err)
	}

	res, err := h.commerceService.CreateOrder(c.Context(), *req, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateOrder)
}

func (h *commerceHandler) GetOrder(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetOrder, err)
	}

	res, err := h.commerceService.GetOrder(c.Context(), c.Params("id"), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrder)
}

// PaymentWebhook is hit by the payment gateway, not by authenticated users.
func (h *commerceHandler) PaymentWebhook(c *fiber.Ctx) error {
	notification := new(domain.PaymentNotification)
	if err := c.BodyParser(notification); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.commerceService.HandlePaymentNotification(c.Context(), *notification); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedWebhook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessWebhook)
}
