package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lufarias/vetor/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, handler.message(c, "auth.invalid_input"))
	}

	account, err := handler.authService.Register(services.RegistrationInput{
		Name:            input.Name,
		Cargo:           input.Cargo,
		Email:           input.Email,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
	if err != nil {
		return handler.respondAuthError(c, err)
	}

	if err := handler.setAuthCookie(c, &account, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, handler.message(c, "server.internal_error"))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"account":  newAccountView(account),
		"redirect": services.LandingPath(account.Role),
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, handler.message(c, "auth.invalid_input"))
	}

	account, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		return handler.respondAuthError(c, err)
	}

	if err := handler.setAuthCookie(c, &account, input.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, handler.message(c, "server.internal_error"))
	}

	return c.JSON(fiber.Map{
		"account":  newAccountView(account),
		"redirect": services.LandingPath(account.Role),
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

// Session is the startup rehydration point: it reports the authenticated
// account carried by the cookie, or 401 when there is none.
func (handler *Handler) Session(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, handler.message(c, "auth.unauthorized"))
	}
	return c.JSON(fiber.Map{
		"account":  newAccountView(*account),
		"redirect": services.LandingPath(account.Role),
	})
}
