package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/mappers"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProductRepository struct {
	DB *gorm.DB
}

func NewDefaultProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{DB: db}
}

func (r *DefaultProductRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	return dbFrom(ctx, r.DB).Create(mappers.ToGORMProduct(product)).Error
}

func (r *DefaultProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	result := dbFrom(ctx, r.DB).Model(&models.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"image_url":   product.ImageURL,
			"stock":       product.Stock,
			"is_active":   product.IsActive,
			"featured":    product.Featured,
			"category_id": nullableID(product.CategoryID),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *DefaultProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	result := dbFrom(ctx, r.DB).Delete(&models.ProductModel{}, "id = ?", productID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *DefaultProductRepository) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	var productModel models.ProductModel
	if err := dbFrom(ctx, r.DB).Preload("Variants").First(&productModel, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProduct(&productModel), nil
}

func (r *DefaultProductRepository) ListProducts(
	ctx context.Context,
	filters *domain.ProductFilters,
	page, limit int32,
) ([]*domain.Product, int64, error) {
	var productModels []models.ProductModel
	var total int64

	baseQuery := dbFrom(ctx, r.DB).Model(&models.ProductModel{})

	if filters != nil {
		if filters.CategoryID != "" {
			baseQuery = baseQuery.Where("category_id = ?", filters.CategoryID)
		}
		if filters.Query != "" {
			pattern := "%" + filters.Query + "%"
			baseQuery = baseQuery.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
		}
		if filters.ActiveOnly {
			baseQuery = baseQuery.Where("is_active = ?", true)
		}
		if filters.Featured {
			baseQuery = baseQuery.Where("featured = ?", true)
		}
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Preload("Variants").
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&productModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find products: %w", err)
	}

	products := make([]*domain.Product, len(productModels))
	for i, productModel := range productModels {
		products[i] = mappers.ToDomainProduct(&productModel)
	}

	return products, total, nil
}

func (r *DefaultProductRepository) CreateVariant(ctx context.Context, variant *domain.ProductVariant) error {
	return dbFrom(ctx, r.DB).Create(mappers.ToGORMVariant(variant)).Error
}

func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
