package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/granapp/grana/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if message := validateRegisterInput(input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}
	if err := services.ValidatePasswordStrength(input.Password); err != nil {
		return respondServiceError(c, err)
	}

	pair, err := handler.auth.Register(c.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(pair)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	pair, err := handler.auth.Login(c.Context(), input.Email, input.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(pair)
}

func (handler *Handler) Refresh(c *fiber.Ctx) error {
	input := refreshInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	pair, err := handler.auth.Refresh(c.Context(), input.RefreshToken)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(pair)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	input := refreshInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.auth.Logout(c.Context(), input.RefreshToken); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) SendRecoveryCode(c *fiber.Ctx) error {
	const recoveryAttemptsLimit = 8
	const recoveryAttemptsWindow = 15 * time.Minute

	now := time.Now()
	limiterKey := requestLimiterKey(c)
	if handler.recoveryLimiter.tooManyRecent(limiterKey, now, recoveryAttemptsLimit, recoveryAttemptsWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many recovery attempts")
	}
	handler.recoveryLimiter.addAttempt(limiterKey, now, recoveryAttemptsWindow)

	input := recoverInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if !validEmail(input.Email) {
		return apiError(c, fiber.StatusBadRequest, "invalid email")
	}

	if err := handler.auth.SendRecoveryCode(c.Context(), input.Email); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) VerifyRecoveryCode(c *fiber.Ctx) error {
	input := verifyRecoveryInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if !services.ValidRecoveryCodeFormat(input.Code) {
		return apiError(c, fiber.StatusBadRequest, "invalid or expired code")
	}

	if err := handler.auth.VerifyRecoveryCode(c.Context(), input.Email, input.Code); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	input := resetPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if !services.ValidRecoveryCodeFormat(input.Code) {
		return apiError(c, fiber.StatusBadRequest, "invalid or expired code")
	}
	if err := services.ValidatePasswordStrength(input.NewPassword); err != nil {
		return respondServiceError(c, err)
	}

	if err := handler.auth.ResetPassword(c.Context(), input.Email, input.Code, input.NewPassword); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}
