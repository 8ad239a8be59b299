package db

import (
	"time"

	"github.com/granapp/grana/internal/models"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	database *gorm.DB
}

func NewTransactionRepository(database *gorm.DB) *TransactionRepository {
	return &TransactionRepository{database: database}
}

func (repo *TransactionRepository) ListByUser(userID uint) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (repo *TransactionRepository) FindOwned(transactionID string, userID uint) (models.Transaction, error) {
	var transaction models.Transaction
	if err := repo.database.
		Where("id = ? AND user_id = ?", transactionID, userID).
		First(&transaction).Error; err != nil {
		return models.Transaction{}, err
	}
	return transaction, nil
}

func (repo *TransactionRepository) Create(transaction *models.Transaction) error {
	return repo.database.Create(transaction).Error
}

func (repo *TransactionRepository) Update(transaction *models.Transaction) error {
	return repo.database.Save(transaction).Error
}

func (repo *TransactionRepository) DeleteOwned(transactionID string, userID uint) error {
	return repo.database.
		Where("id = ? AND user_id = ?", transactionID, userID).
		Delete(&models.Transaction{}).Error
}

type CategoryTotal struct {
	CategoryID string  `json:"categoryId"`
	Title      string  `json:"title"`
	Color      string  `json:"color"`
	Total      float64 `json:"total"`
}

// SumByType totals transaction values of one type inside [from, to).
func (repo *TransactionRepository) SumByType(userID uint, transactionType string, from time.Time, to time.Time) (float64, error) {
	var total float64
	if err := repo.database.Model(&models.Transaction{}).
		Select("COALESCE(SUM(value), 0)").
		Where("user_id = ? AND type = ? AND date >= ? AND date < ?", userID, transactionType, from, to).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (repo *TransactionRepository) TotalsByCategory(userID uint, from time.Time, to time.Time) ([]CategoryTotal, error) {
	totals := make([]CategoryTotal, 0)
	if err := repo.database.Model(&models.Transaction{}).
		Select("transactions.category_id AS category_id, categories.title AS title, categories.color AS color, " +
			"COALESCE(SUM(CASE WHEN transactions.type = 'income' THEN transactions.value ELSE -transactions.value END), 0) AS total").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.date >= ? AND transactions.date < ?", userID, from, to).
		Group("transactions.category_id, categories.title, categories.color").
		Order("total DESC").
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	return totals, nil
}
