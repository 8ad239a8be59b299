package api

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/granapp/grana/internal/models"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func validEmail(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}
	_, err := mail.ParseAddress(trimmed)
	return err == nil
}

func validateRegisterInput(input registerInput) string {
	if strings.TrimSpace(input.Name) == "" {
		return "name is required"
	}
	if !validEmail(input.Email) {
		return "invalid email"
	}
	if strings.TrimSpace(input.Password) == "" {
		return "password is required"
	}
	return ""
}

func validateCategoryInput(input categoryInput) string {
	if strings.TrimSpace(input.Title) == "" {
		return "title is required"
	}
	if color := strings.TrimSpace(input.Color); color != "" && !hexColorRegex.MatchString(color) {
		return "invalid color"
	}
	return ""
}

func validateTransactionInput(input transactionInput) string {
	if strings.TrimSpace(input.CategoryID) == "" {
		return "categoryId is required"
	}
	if strings.TrimSpace(input.Description) == "" {
		return "description is required"
	}
	if input.Type != models.TransactionTypeIncome && input.Type != models.TransactionTypeExpense {
		return "invalid type"
	}
	if input.Value < 0 {
		return "value must not be negative"
	}
	if input.Date.IsZero() {
		return "date is required"
	}
	return ""
}
