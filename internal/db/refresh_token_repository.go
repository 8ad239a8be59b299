package db

import (
	"time"

	"github.com/granapp/grana/internal/models"
	"gorm.io/gorm"
)

type RefreshTokenRepository struct {
	database *gorm.DB
}

func NewRefreshTokenRepository(database *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{database: database}
}

func (repo *RefreshTokenRepository) Create(userID uint, tokenHash string, expiresAt time.Time) error {
	record := models.RefreshToken{
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	return repo.database.Create(&record).Error
}

// FindActive returns the stored token only while it is unrevoked and unexpired.
func (repo *RefreshTokenRepository) FindActive(tokenHash string, now time.Time) (models.RefreshToken, error) {
	var record models.RefreshToken
	if err := repo.database.
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at >= ?", tokenHash, now).
		First(&record).Error; err != nil {
		return models.RefreshToken{}, err
	}
	return record, nil
}

func (repo *RefreshTokenRepository) Revoke(tokenHash string, now time.Time) error {
	return repo.database.Model(&models.RefreshToken{}).
		Where("token_hash = ? AND revoked_at IS NULL", tokenHash).
		Update("revoked_at", now).Error
}

func (repo *RefreshTokenRepository) RevokeAllForUser(userID uint, now time.Time) error {
	return repo.database.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now).Error
}
