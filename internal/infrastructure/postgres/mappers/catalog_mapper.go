package mappers

import (
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/models"
)

func ToDomainProduct(model *models.ProductModel) *domain.Product {
	product := &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		ImageURL:    model.ImageURL,
		Stock:       model.Stock,
		IsActive:    model.IsActive,
		Featured:    model.Featured,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
	if model.CategoryID != nil {
		product.CategoryID = *model.CategoryID
	}
	product.Variants = make([]domain.ProductVariant, len(model.Variants))
	for i, variant := range model.Variants {
		product.Variants[i] = domain.ProductVariant{
			ID:        variant.ID,
			ProductID: variant.ProductID,
			Name:      variant.Name,
			Price:     variant.Price,
			Stock:     variant.Stock,
		}
	}
	return product
}

func ToGORMProduct(product *domain.Product) *models.ProductModel {
	model := &models.ProductModel{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		Stock:       product.Stock,
		IsActive:    product.IsActive,
		Featured:    product.Featured,
	}
	if product.CategoryID != "" {
		categoryID := product.CategoryID
		model.CategoryID = &categoryID
	}
	return model
}

func ToGORMVariant(variant *domain.ProductVariant) *models.ProductVariantModel {
	return &models.ProductVariantModel{
		ID:        variant.ID,
		ProductID: variant.ProductID,
		Name:      variant.Name,
		Price:     variant.Price,
		Stock:     variant.Stock,
	}
}

func ToDomainCategory(model *models.CategoryModel) *domain.Category {
	return &domain.Category{
		ID:          model.ID,
		Name:        model.Name,
		Slug:        model.Slug,
		Description: model.Description,
	}
}

func ToGORMCategory(category *domain.Category) *models.CategoryModel {
	return &models.CategoryModel{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
	}
}
