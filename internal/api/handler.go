package api

import (
	"github.com/granapp/grana/internal/services"
)

const contextUserKey = "currentUser"

type Handler struct {
	auth            *services.AuthService
	categories      *services.CategoryService
	transactions    *services.TransactionService
	issuer          *services.TokenIssuer
	recoveryLimiter *attemptLimiter
}

func NewHandler(
	auth *services.AuthService,
	categories *services.CategoryService,
	transactions *services.TransactionService,
	issuer *services.TokenIssuer,
) *Handler {
	return &Handler{
		auth:            auth,
		categories:      categories,
		transactions:    transactions,
		issuer:          issuer,
		recoveryLimiter: newAttemptLimiter(),
	}
}
