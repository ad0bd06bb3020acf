package domain

import "context"

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *Product) error
	UpdateProduct(ctx context.Context, product *Product) error
	DeleteProduct(ctx context.Context, productID string) error
	GetProductByID(ctx context.Context, productID string) (*Product, error)
	ListProducts(ctx context.Context, filters *ProductFilters, page, limit int32) ([]*Product, int64, error)
	CreateVariant(ctx context.Context, variant *ProductVariant) error
}

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *Category) error
	UpdateCategory(ctx context.Context, category *Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
	GetCategoryByID(ctx context.Context, categoryID string) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
}
