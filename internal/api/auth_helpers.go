package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lufarias/vetor/internal/services"
)

// respondAuthError maps the auth failure taxonomy onto statuses and localized
// messages. Unknown errors stay opaque.
func (handler *Handler) respondAuthError(c *fiber.Ctx, err error) error {
	status, key := authErrorStatusKey(err)
	return apiError(c, status, handler.message(c, key))
}

func authErrorStatusKey(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "auth.invalid_credentials"
	case errors.Is(err, services.ErrEmailTaken):
		return fiber.StatusConflict, "auth.email_taken"
	case errors.Is(err, services.ErrNameRequired):
		return fiber.StatusBadRequest, "auth.name_required"
	case errors.Is(err, services.ErrCargoRequired):
		return fiber.StatusBadRequest, "auth.cargo_required"
	case errors.Is(err, services.ErrEmailFormatInvalid):
		return fiber.StatusBadRequest, "auth.email_invalid"
	case errors.Is(err, services.ErrPasswordTooShort):
		return fiber.StatusBadRequest, "auth.password_too_short"
	case errors.Is(err, services.ErrPasswordMismatch):
		return fiber.StatusBadRequest, "auth.password_mismatch"
	case errors.Is(err, services.ErrResetCodeInvalid):
		return fiber.StatusBadRequest, "auth.reset_code_invalid"
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		return fiber.StatusBadRequest, "auth.invalid_input"
	default:
		return fiber.StatusInternalServerError, "server.internal_error"
	}
}
