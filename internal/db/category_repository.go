package db

import (
	"github.com/granapp/grana/internal/models"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	database *gorm.DB
}

func NewCategoryRepository(database *gorm.DB) *CategoryRepository {
	return &CategoryRepository{database: database}
}

func (repo *CategoryRepository) ListByUser(userID uint) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindOwned loads a category only when it belongs to the given user.
func (repo *CategoryRepository) FindOwned(categoryID string, userID uint) (models.Category, error) {
	var category models.Category
	if err := repo.database.
		Where("id = ? AND user_id = ?", categoryID, userID).
		First(&category).Error; err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (repo *CategoryRepository) Create(category *models.Category) error {
	return repo.database.Create(category).Error
}

func (repo *CategoryRepository) Update(category *models.Category) error {
	return repo.database.Save(category).Error
}

func (repo *CategoryRepository) DeleteOwned(categoryID string, userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("category_id = ? AND user_id = ?", categoryID, userID).
			Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		return tx.
			Where("id = ? AND user_id = ?", categoryID, userID).
			Delete(&models.Category{}).Error
	})
}
