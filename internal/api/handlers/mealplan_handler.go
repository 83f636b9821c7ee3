package handlers

import (
	"time"

	"mindfulmeals-backend/domain"
	"mindfulmeals-backend/internal/api/presenters"
	"mindfulmeals-backend/pkg/household"
	"mindfulmeals-backend/pkg/mealplan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealPlanHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		PlanMeal(c *fiber.Ctx) error
		GetMealPlan(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		mealPlanService  mealplan.MealPlanService
		householdService household.HouseholdService
		validator        *validator.Validate
	}
)

func NewMealPlanHandler(mealPlanService mealplan.MealPlanService, householdService household.HouseholdService, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		mealPlanService:  mealPlanService,
		householdService: householdService,
		validator:        validator,
	}
}

func (h *mealPlanHandler) householdID(c *fiber.Ctx) (string, error) {
	userID := c.Locals("user_id").(string)
	res, err := h.householdService.GetMyHousehold(c.Context(), userID)
	if err != nil {
		return "", err
	}
	return res.ID, nil
}

func (h *mealPlanHandler) CreateRecipe(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateRecipe, err)
	}

	req := new(domain.CreateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.mealPlanService.CreateRecipe(c.Context(), *req, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *mealPlanHandler) GetRecipes(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetRecipes, err)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	recipes, total, err := h.mealPlanService.GetRecipes(c.Context(), householdID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": recipes,
		"total":   total,
		"page":    page,
		"limit":   limit,
	}, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *mealPlanHandler) PlanMeal(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedPlanMeal, err)
	}

	req := new(domain.PlanMealRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPlanMeal, err)
	}

	res, err := h.mealPlanService.PlanMeal(c.Context(), *req, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedPlanMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessPlanMeal)
}

func (h *mealPlanHandler) GetMealPlan(c *fiber.Ctx) error {
	householdID, err := h.householdID(c)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetMealPlan, err)
	}

	from := time.Now().Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, 7)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMealPlan, domain.ErrInvalidPlanDay)
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMealPlan, domain.ErrInvalidPlanDay)
		}
		to = parsed
	}

	entries, err := h.mealPlanService.GetMealPlan(c.Context(), householdID, from, to)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetMealPlan, err)
	}

	return presenters.SuccessResponse(c, entries, fiber.StatusOK, domain.MessageSuccessGetMealPlan)
}
