package repository

import (
	"context"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/mappers"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCategoryRepository struct {
	DB *gorm.DB
}

func NewDefaultCategoryRepository(db *gorm.DB) *DefaultCategoryRepository {
	return &DefaultCategoryRepository{DB: db}
}

func (r *DefaultCategoryRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	return dbFrom(ctx, r.DB).Create(mappers.ToGORMCategory(category)).Error
}

func (r *DefaultCategoryRepository) UpdateCategory(ctx context.Context, category *domain.Category) error {
	result := dbFrom(ctx, r.DB).Model(&models.CategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]interface{}{
			"name":        category.Name,
			"slug":        category.Slug,
			"description": category.Description,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DefaultCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	return dbFrom(ctx, r.DB).Delete(&models.CategoryModel{}, "id = ?", categoryID).Error
}

func (r *DefaultCategoryRepository) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	var categoryModel models.CategoryModel
	if err := dbFrom(ctx, r.DB).First(&categoryModel, "id = ?", categoryID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainCategory(&categoryModel), nil
}

func (r *DefaultCategoryRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	var categoryModels []models.CategoryModel
	if err := dbFrom(ctx, r.DB).Order("name").Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]*domain.Category, len(categoryModels))
	for i, categoryModel := range categoryModels {
		categories[i] = mappers.ToDomainCategory(&categoryModel)
	}

	return categories, nil
}
