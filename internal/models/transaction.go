package models

import "time"

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

type Transaction struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"-"`
	CategoryID  string    `gorm:"index;not null" json:"categoryId"`
	Description string    `gorm:"not null" json:"description"`
	Type        string    `gorm:"not null" json:"type"`
	Value       float64   `gorm:"not null" json:"value"`
	Date        time.Time `gorm:"not null" json:"date"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
}
