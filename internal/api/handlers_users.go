package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetCurrentUser(c *fiber.Ctx) error {
	return c.JSON(currentUser(c))
}

func (handler *Handler) UpdateCurrentUser(c *fiber.Ctx) error {
	input := updateUserInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.Name) == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}

	user, err := handler.auth.UpdateUserName(c.Context(), currentUser(c).ID, input.Name)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}
