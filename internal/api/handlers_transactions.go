package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/granapp/grana/internal/services"
)

func (handler *Handler) ListTransactions(c *fiber.Ctx) error {
	transactions, err := handler.transactions.List(c.Context(), currentUser(c).ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(transactions)
}

func (handler *Handler) GetTransaction(c *fiber.Ctx) error {
	transaction, err := handler.transactions.Get(c.Context(), c.Params("id"), currentUser(c).ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(transaction)
}

func (handler *Handler) CreateTransaction(c *fiber.Ctx) error {
	input := transactionInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if message := validateTransactionInput(input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	transaction, err := handler.transactions.Create(c.Context(), currentUser(c).ID, services.TransactionInput(input))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(transaction)
}

func (handler *Handler) UpdateTransaction(c *fiber.Ctx) error {
	input := transactionInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if message := validateTransactionInput(input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	transaction, err := handler.transactions.Update(c.Context(), c.Params("id"), currentUser(c).ID, services.TransactionInput(input))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(transaction)
}

func (handler *Handler) DeleteTransaction(c *fiber.Ctx) error {
	if err := handler.transactions.Delete(c.Context(), c.Params("id"), currentUser(c).ID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
