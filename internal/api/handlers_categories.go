package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/granapp/grana/internal/services"
)

func (handler *Handler) ListCategories(c *fiber.Ctx) error {
	categories, err := handler.categories.List(c.Context(), currentUser(c).ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(categories)
}

func (handler *Handler) GetCategory(c *fiber.Ctx) error {
	category, err := handler.categories.Get(c.Context(), c.Params("id"), currentUser(c).ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(category)
}

func (handler *Handler) CreateCategory(c *fiber.Ctx) error {
	input := categoryInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if message := validateCategoryInput(input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	category, err := handler.categories.Create(c.Context(), currentUser(c).ID, services.CategoryInput(input))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (handler *Handler) UpdateCategory(c *fiber.Ctx) error {
	input := categoryInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if message := validateCategoryInput(input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	category, err := handler.categories.Update(c.Context(), c.Params("id"), currentUser(c).ID, services.CategoryInput(input))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(category)
}

func (handler *Handler) DeleteCategory(c *fiber.Ctx) error {
	if err := handler.categories.Delete(c.Context(), c.Params("id"), currentUser(c).ID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
