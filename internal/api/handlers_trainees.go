package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lufarias/vetor/internal/services"
)

func (handler *Handler) GetTrainees(c *fiber.Ctx) error {
	trainees, err := handler.memberService.ListTrainees()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, handler.message(c, "server.internal_error"))
	}
	return c.JSON(trainees)
}

// UpdateTrainee replaces a trainee's rotation score and activity checklist.
func (handler *Handler) UpdateTrainee(c *fiber.Ctx) error {
	traineeID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, handler.message(c, "trainee.not_found"))
	}

	var payload traineeUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, handler.message(c, "auth.invalid_input"))
	}

	activities := make([]services.ActivityInput, 0, len(payload.Activities))
	for _, activity := range payload.Activities {
		activities = append(activities, services.ActivityInput{
			ID:        activity.ID,
			Name:      activity.Name,
			Completed: activity.Completed,
		})
	}

	trainee, err := handler.memberService.UpdateTrainee(uint(traineeID), payload.RotationScore, activities)
	if err != nil {
		if errors.Is(err, services.ErrTraineeNotFound) {
			return apiError(c, fiber.StatusNotFound, handler.message(c, "trainee.not_found"))
		}
		return apiError(c, fiber.StatusInternalServerError, handler.message(c, "server.internal_error"))
	}
	return c.JSON(trainee)
}
