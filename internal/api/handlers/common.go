package handlers

import (
	"errors"

	"mindfulmeals-backend/domain"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps typed domain errors onto HTTP statuses. Dispatch is
// by error identity, never by message sniffing.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrHouseholdNotFound),
		errors.Is(err, domain.ErrPantryItemNotFound),
		errors.Is(err, domain.ErrShoppingListNotFound),
		errors.Is(err, domain.ErrShoppingListItemNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrVendorNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrHouseholdExists),
		errors.Is(err, domain.ErrDuplicateOrder):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrWrongCredentials),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrInvalidExpiryDate),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidWasteAmount),
		errors.Is(err, domain.ErrInvalidListType),
		errors.Is(err, domain.ErrRecipeRequired),
		errors.Is(err, domain.ErrInvalidPlanDay),
		errors.Is(err, domain.ErrEmptyOrder):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
