package db

import (
	"time"

	"github.com/granapp/grana/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) UpdateName(userID uint, name string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("name", name).Error
}

func (repo *UserRepository) UpdatePassword(userID uint, passwordHash string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).
		Update("password_hash", passwordHash).Error
}

// SetRecoveryCode overwrites any prior code/expiry pair; the most recently
// issued code is the only one that validates.
func (repo *UserRepository) SetRecoveryCode(userID uint, code int, expiresAt time.Time) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"recovery_code":            code,
		"recovery_code_expires_at": expiresAt,
	}).Error
}

func (repo *UserRepository) ClearRecoveryCode(userID uint) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"recovery_code":            nil,
		"recovery_code_expires_at": nil,
	}).Error
}

// FindByEmailAndValidRecoveryCode matches email, code, and a not-yet-elapsed
// expiry in a single lookup. A miss stays ambiguous between "wrong code" and
// "expired" on purpose.
func (repo *UserRepository) FindByEmailAndValidRecoveryCode(email string, code int, now time.Time) (models.User, error) {
	var user models.User
	if err := repo.database.
		Where("lower(trim(email)) = ? AND recovery_code = ? AND recovery_code_expires_at >= ?", email, code, now).
		First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}
