package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lufarias/vetor/internal/models"
	"github.com/lufarias/vetor/internal/services"
)

// GetContents lists the catalog visible to the authenticated account,
// narrowed by the search form: substring on the name (case-insensitive)
// ANDed with optional exact audience/axis filters.
func (handler *Handler) GetContents(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, handler.message(c, "auth.unauthorized"))
	}

	items, err := handler.contentService.ListForViewer(account.Role, services.ContentFilter{
		Query:    c.Query("q"),
		Audience: c.Query("audience"),
		Axis:     c.Query("axis"),
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, handler.message(c, "server.internal_error"))
	}
	return c.JSON(items)
}

func (handler *Handler) CreateContent(c *fiber.Ctx) error {
	var payload contentPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, handler.message(c, "auth.invalid_input"))
	}

	item, err := handler.contentService.Create(contentItemFromPayload(payload))
	if err != nil {
		return handler.respondContentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (handler *Handler) UpdateContent(c *fiber.Ctx) error {
	itemID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, handler.message(c, "content.not_found"))
	}

	var payload contentPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, handler.message(c, "auth.invalid_input"))
	}

	item, err := handler.contentService.Update(uint(itemID), contentItemFromPayload(payload))
	if err != nil {
		return handler.respondContentError(c, err)
	}
	return c.JSON(item)
}

func contentItemFromPayload(payload contentPayload) models.ContentItem {
	return models.ContentItem{
		Name:      payload.Name,
		Audience:  payload.Audience,
		Axis:      payload.Axis,
		Text:      payload.Text,
		Documents: payload.Documents,
		Videos:    payload.Videos,
	}
}

func (handler *Handler) respondContentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrContentNotFound):
		return apiError(c, fiber.StatusNotFound, handler.message(c, "content.not_found"))
	case errors.Is(err, services.ErrContentNameRequired):
		return apiError(c, fiber.StatusBadRequest, handler.message(c, "content.name_required"))
	case errors.Is(err, services.ErrInvalidAudience):
		return apiError(c, fiber.StatusBadRequest, handler.message(c, "content.invalid_audience"))
	case errors.Is(err, services.ErrInvalidAxis):
		return apiError(c, fiber.StatusBadRequest, handler.message(c, "content.invalid_axis"))
	default:
		return apiError(c, fiber.StatusInternalServerError, handler.message(c, "server.internal_error"))
	}
}
