package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/granapp/grana/internal/models"
)

type CategoryRepository interface {
	ListByUser(userID uint) ([]models.Category, error)
	FindOwned(categoryID string, userID uint) (models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	DeleteOwned(categoryID string, userID uint) error
}

type CategoryInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// CategoryService is ownership-scoped CRUD; every mutation requires the
// category to belong to the acting user.
type CategoryService struct {
	categories CategoryRepository
	now        func() time.Time
}

func NewCategoryService(categories CategoryRepository, now func() time.Time) *CategoryService {
	if now == nil {
		now = time.Now
	}
	return &CategoryService{categories: categories, now: now}
}

func (service *CategoryService) List(ctx context.Context, userID uint) ([]models.Category, error) {
	return service.categories.ListByUser(userID)
}

func (service *CategoryService) Get(ctx context.Context, categoryID string, userID uint) (models.Category, error) {
	category, err := service.categories.FindOwned(categoryID, userID)
	if err != nil {
		return models.Category{}, ErrNotFound
	}
	return category, nil
}

func (service *CategoryService) Create(ctx context.Context, userID uint, input CategoryInput) (models.Category, error) {
	category := models.Category{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Icon:        strings.TrimSpace(input.Icon),
		Color:       strings.TrimSpace(input.Color),
		CreatedAt:   service.now(),
	}
	if err := service.categories.Create(&category); err != nil {
		return models.Category{}, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (service *CategoryService) Update(ctx context.Context, categoryID string, userID uint, input CategoryInput) (models.Category, error) {
	category, err := service.categories.FindOwned(categoryID, userID)
	if err != nil {
		return models.Category{}, ErrNotFound
	}

	category.Title = strings.TrimSpace(input.Title)
	category.Description = strings.TrimSpace(input.Description)
	category.Icon = strings.TrimSpace(input.Icon)
	category.Color = strings.TrimSpace(input.Color)
	if err := service.categories.Update(&category); err != nil {
		return models.Category{}, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

func (service *CategoryService) Delete(ctx context.Context, categoryID string, userID uint) error {
	if _, err := service.categories.FindOwned(categoryID, userID); err != nil {
		return ErrNotFound
	}
	return service.categories.DeleteOwned(categoryID, userID)
}
