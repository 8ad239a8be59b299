package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Categories    *CategoryRepository
	Transactions  *TransactionRepository
	RefreshTokens *RefreshTokenRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Categories:    NewCategoryRepository(database),
		Transactions:  NewTransactionRepository(database),
		RefreshTokens: NewRefreshTokenRepository(database),
	}
}
