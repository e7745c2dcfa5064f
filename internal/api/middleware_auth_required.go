package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	account, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, handler.message(c, "auth.unauthorized"))
	}

	c.Locals(contextAccountKey, account)
	return c.Next()
}
