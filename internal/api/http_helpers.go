package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/granapp/grana/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps service sentinels onto stable status codes and
// error strings; anything unrecognized is a 500 with no detail leaked.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrDuplicateEmail):
		return apiError(c, fiber.StatusConflict, "email already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrUnknownUser):
		return apiError(c, fiber.StatusNotFound, "unknown user")
	case errors.Is(err, services.ErrInvalidOrExpiredCode):
		return apiError(c, fiber.StatusBadRequest, "invalid or expired code")
	case errors.Is(err, services.ErrInvalidToken):
		return apiError(c, fiber.StatusUnauthorized, "invalid token")
	case errors.Is(err, services.ErrNotFound):
		return apiError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, services.ErrWeakPassword):
		return apiError(c, fiber.StatusBadRequest, "weak password")
	default:
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}
