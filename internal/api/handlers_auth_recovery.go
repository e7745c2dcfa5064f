package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lufarias/vetor/internal/services"
)

const (
	resetAttemptLimit  = 5
	resetAttemptWindow = 15 * time.Minute
)

// ForgotPassword always answers with the same message so the endpoint cannot
// be used to probe which emails are registered. When the account exists a
// one-time code goes out through the delivery seam.
func (handler *Handler) ForgotPassword(c *fiber.Ctx) error {
	var input forgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, handler.message(c, "auth.invalid_input"))
	}

	limiterKey := requestLimiterKey(c)
	if handler.resetLimiter.tooManyRecent(limiterKey, time.Now(), resetAttemptLimit, resetAttemptWindow) {
		return apiError(c, fiber.StatusTooManyRequests, handler.message(c, "auth.invalid_input"))
	}
	handler.resetLimiter.addFailure(limiterKey, time.Now(), resetAttemptWindow)

	account, code, err := handler.authService.IssueResetCode(input.Email)
	if err == nil {
		handler.deliverResetCode(account.Email, code)
	} else if !errors.Is(err, services.ErrAccountNotFound) {
		return apiError(c, fiber.StatusInternalServerError, handler.message(c, "server.internal_error"))
	}

	return c.JSON(fiber.Map{"message": handler.message(c, "auth.reset_requested")})
}

func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	var input resetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, handler.message(c, "auth.invalid_input"))
	}

	limiterKey := requestLimiterKey(c)
	if handler.resetLimiter.tooManyRecent(limiterKey, time.Now(), resetAttemptLimit, resetAttemptWindow) {
		return apiError(c, fiber.StatusTooManyRequests, handler.message(c, "auth.reset_code_invalid"))
	}

	err := handler.authService.ResetPassword(input.Email, input.Code, input.Password, input.ConfirmPassword)
	if err != nil {
		if errors.Is(err, services.ErrResetCodeInvalid) {
			handler.resetLimiter.addFailure(limiterKey, time.Now(), resetAttemptWindow)
		}
		return handler.respondAuthError(c, err)
	}

	handler.resetLimiter.reset(limiterKey)
	return c.JSON(fiber.Map{"message": handler.message(c, "auth.password_updated")})
}
