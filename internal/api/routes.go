package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/refresh", handler.Refresh)
	auth.Post("/logout", handler.Logout)
	auth.Post("/recover", handler.SendRecoveryCode)
	auth.Post("/recover/verify", handler.VerifyRecoveryCode)
	auth.Post("/recover/reset", handler.ResetPassword)

	users := api.Group("/users", handler.AuthRequired)
	users.Get("/me", handler.GetCurrentUser)
	users.Patch("/me", handler.UpdateCurrentUser)

	categories := api.Group("/categories", handler.AuthRequired)
	categories.Get("", handler.ListCategories)
	categories.Post("", handler.CreateCategory)
	categories.Get("/:id", handler.GetCategory)
	categories.Put("/:id", handler.UpdateCategory)
	categories.Delete("/:id", handler.DeleteCategory)

	transactions := api.Group("/transactions", handler.AuthRequired)
	transactions.Get("", handler.ListTransactions)
	transactions.Post("", handler.CreateTransaction)
	transactions.Get("/:id", handler.GetTransaction)
	transactions.Put("/:id", handler.UpdateTransaction)
	transactions.Delete("/:id", handler.DeleteTransaction)

	api.Get("/summary", handler.AuthRequired, handler.GetSummary)
}
