package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/granapp/grana/internal/db"
	"github.com/granapp/grana/internal/models"
)

type TransactionRepository interface {
	ListByUser(userID uint) ([]models.Transaction, error)
	FindOwned(transactionID string, userID uint) (models.Transaction, error)
	Create(transaction *models.Transaction) error
	Update(transaction *models.Transaction) error
	DeleteOwned(transactionID string, userID uint) error
	SumByType(userID uint, transactionType string, from time.Time, to time.Time) (float64, error)
	TotalsByCategory(userID uint, from time.Time, to time.Time) ([]db.CategoryTotal, error)
}

type TransactionInput struct {
	CategoryID  string    `json:"categoryId"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Value       float64   `json:"value"`
	Date        time.Time `json:"date"`
}

// Summary aggregates a user's transactions over a date window for the
// dashboard.
type Summary struct {
	Income     float64            `json:"income"`
	Expense    float64            `json:"expense"`
	Balance    float64            `json:"balance"`
	ByCategory []db.CategoryTotal `json:"byCategory"`
}

type TransactionService struct {
	transactions TransactionRepository
	categories   CategoryRepository
	now          func() time.Time
}

func NewTransactionService(transactions TransactionRepository, categories CategoryRepository, now func() time.Time) *TransactionService {
	if now == nil {
		now = time.Now
	}
	return &TransactionService{transactions: transactions, categories: categories, now: now}
}

func (service *TransactionService) List(ctx context.Context, userID uint) ([]models.Transaction, error) {
	return service.transactions.ListByUser(userID)
}

func (service *TransactionService) Get(ctx context.Context, transactionID string, userID uint) (models.Transaction, error) {
	transaction, err := service.transactions.FindOwned(transactionID, userID)
	if err != nil {
		return models.Transaction{}, ErrNotFound
	}
	return transaction, nil
}

func (service *TransactionService) Create(ctx context.Context, userID uint, input TransactionInput) (models.Transaction, error) {
	// The referenced category must belong to the same user.
	if _, err := service.categories.FindOwned(input.CategoryID, userID); err != nil {
		return models.Transaction{}, ErrNotFound
	}

	transaction := models.Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		CategoryID:  input.CategoryID,
		Description: strings.TrimSpace(input.Description),
		Type:        input.Type,
		Value:       input.Value,
		Date:        input.Date,
		CreatedAt:   service.now(),
	}
	if err := service.transactions.Create(&transaction); err != nil {
		return models.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	return transaction, nil
}

func (service *TransactionService) Update(ctx context.Context, transactionID string, userID uint, input TransactionInput) (models.Transaction, error) {
	transaction, err := service.transactions.FindOwned(transactionID, userID)
	if err != nil {
		return models.Transaction{}, ErrNotFound
	}
	if _, err := service.categories.FindOwned(input.CategoryID, userID); err != nil {
		return models.Transaction{}, ErrNotFound
	}

	transaction.CategoryID = input.CategoryID
	transaction.Description = strings.TrimSpace(input.Description)
	transaction.Type = input.Type
	transaction.Value = input.Value
	transaction.Date = input.Date
	if err := service.transactions.Update(&transaction); err != nil {
		return models.Transaction{}, fmt.Errorf("update transaction: %w", err)
	}
	return transaction, nil
}

func (service *TransactionService) Delete(ctx context.Context, transactionID string, userID uint) error {
	if _, err := service.transactions.FindOwned(transactionID, userID); err != nil {
		return ErrNotFound
	}
	return service.transactions.DeleteOwned(transactionID, userID)
}

// Summarize totals income and expense inside [from, to). A zero "to" means
// now; a zero "from" means the beginning of time.
func (service *TransactionService) Summarize(ctx context.Context, userID uint, from time.Time, to time.Time) (Summary, error) {
	if to.IsZero() {
		to = service.now()
	}

	income, err := service.transactions.SumByType(userID, models.TransactionTypeIncome, from, to)
	if err != nil {
		return Summary{}, fmt.Errorf("sum income: %w", err)
	}
	expense, err := service.transactions.SumByType(userID, models.TransactionTypeExpense, from, to)
	if err != nil {
		return Summary{}, fmt.Errorf("sum expense: %w", err)
	}
	byCategory, err := service.transactions.TotalsByCategory(userID, from, to)
	if err != nil {
		return Summary{}, fmt.Errorf("totals by category: %w", err)
	}

	return Summary{
		Income:     income,
		Expense:    expense,
		Balance:    income - expense,
		ByCategory: byCategory,
	}, nil
}
