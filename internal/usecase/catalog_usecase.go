package usecase

import (
	"context"
	"fmt"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/google/uuid"
)

type CatalogUsecase interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, productID string) error
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, filters *domain.ProductFilters, page, limit int32) ([]*domain.Product, int64, error)
	AddVariant(ctx context.Context, variant *domain.ProductVariant) (*domain.ProductVariant, error)

	CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}

type DefaultCatalogUsecase struct {
	ProductRepo  domain.ProductRepository
	CategoryRepo domain.CategoryRepository
}

func NewDefaultCatalogUsecase(productRepo domain.ProductRepository, categoryRepo domain.CategoryRepository) *DefaultCatalogUsecase {
	return &DefaultCatalogUsecase{ProductRepo: productRepo, CategoryRepo: categoryRepo}
}

func (uc *DefaultCatalogUsecase) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if product.Price <= 0 {
		return nil, domain.ErrInvalidUnitPrice
	}
	product.ID = uuid.New().String()
	product.IsActive = true
	if err := uc.ProductRepo.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

func (uc *DefaultCatalogUsecase) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if product.Price <= 0 {
		return domain.ErrInvalidUnitPrice
	}
	return uc.ProductRepo.UpdateProduct(ctx, product)
}

func (uc *DefaultCatalogUsecase) DeleteProduct(ctx context.Context, productID string) error {
	return uc.ProductRepo.DeleteProduct(ctx, productID)
}

func (uc *DefaultCatalogUsecase) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return uc.ProductRepo.GetProductByID(ctx, productID)
}

func (uc *DefaultCatalogUsecase) ListProducts(ctx context.Context, filters *domain.ProductFilters, page, limit int32) ([]*domain.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 24
	}
	return uc.ProductRepo.ListProducts(ctx, filters, page, limit)
}

func (uc *DefaultCatalogUsecase) AddVariant(ctx context.Context, variant *domain.ProductVariant) (*domain.ProductVariant, error) {
	if variant.ProductID == "" || variant.Name == "" {
		return nil, fmt.Errorf("variant requires product id and name")
	}
	if _, err := uc.ProductRepo.GetProductByID(ctx, variant.ProductID); err != nil {
		return nil, err
	}
	variant.ID = uuid.New().String()
	if err := uc.ProductRepo.CreateVariant(ctx, variant); err != nil {
		return nil, fmt.Errorf("create variant: %w", err)
	}
	return variant, nil
}

func (uc *DefaultCatalogUsecase) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if category.Name == "" || category.Slug == "" {
		return nil, fmt.Errorf("category name and slug are required")
	}
	category.ID = uuid.New().String()
	if err := uc.CategoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (uc *DefaultCatalogUsecase) UpdateCategory(ctx context.Context, category *domain.Category) error {
	return uc.CategoryRepo.UpdateCategory(ctx, category)
}

func (uc *DefaultCatalogUsecase) DeleteCategory(ctx context.Context, categoryID string) error {
	return uc.CategoryRepo.DeleteCategory(ctx, categoryID)
}

func (uc *DefaultCatalogUsecase) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return uc.CategoryRepo.ListCategories(ctx)
}
