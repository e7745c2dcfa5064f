package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lufarias/vetor/internal/services"
)

func (handler *Handler) GetMembers(c *fiber.Ctx) error {
	members, err := handler.memberService.ListMembers()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, handler.message(c, "server.internal_error"))
	}
	return c.JSON(members)
}

// CreateMember handles the add-member form. Depending on the cargo the new
// person lands in the member directory or in the trainee roster, so the
// response carries whichever profile was created.
func (handler *Handler) CreateMember(c *fiber.Ctx) error {
	var payload personPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, handler.message(c, "auth.invalid_input"))
	}

	member, trainee, err := handler.memberService.AddPerson(services.PersonInput{
		Name:  payload.Name,
		Email: payload.Email,
		Cargo: payload.Cargo,
		Axis:  payload.Axis,
		Photo: payload.Photo,
	})
	if err != nil {
		return handler.respondPersonError(c, err)
	}

	if trainee != nil {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"trainee": trainee})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"member": member})
}

func (handler *Handler) respondPersonError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrPersonNameRequired):
		return apiError(c, fiber.StatusBadRequest, handler.message(c, "person.name_required"))
	case errors.Is(err, services.ErrInvalidCargo):
		return apiError(c, fiber.StatusBadRequest, handler.message(c, "person.invalid_cargo"))
	case errors.Is(err, services.ErrAxisRequired):
		return apiError(c, fiber.StatusBadRequest, handler.message(c, "person.axis_required"))
	default:
		return apiError(c, fiber.StatusInternalServerError, handler.message(c, "server.internal_error"))
	}
}
