package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lufarias/vetor/internal/services"
)

func (handler *Handler) AdminOnly(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, handler.message(c, "auth.unauthorized"))
	}
	if !services.IsAdminRole(account.Role) {
		return apiError(c, fiber.StatusForbidden, handler.message(c, "auth.admin_required"))
	}
	return c.Next()
}
