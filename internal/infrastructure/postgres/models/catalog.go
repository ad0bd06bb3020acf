package models

import "time"

type ProductModel struct {
	ID          string  `gorm:"primaryKey;type:uuid"`
	Name        string  `gorm:"not null;index:idx_products_name"`
	Description string
	Price       float64 `gorm:"not null"`
	CategoryID  *string `gorm:"type:uuid;index:idx_products_category"`
	ImageURL    string
	Stock       int32
	IsActive    bool                  `gorm:"default:true;index:idx_products_active"`
	Featured    bool
	Variants    []ProductVariantModel `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProductModel) TableName() string {
	return "products"
}

type ProductVariantModel struct {
	ID        string  `gorm:"primaryKey;type:uuid"`
	ProductID string  `gorm:"type:uuid;not null;index:idx_variants_product"`
	Name      string  `gorm:"not null"`
	Price     float64
	Stock     int32
	CreatedAt time.Time
}

func (ProductVariantModel) TableName() string {
	return "product_variants"
}

type CategoryModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Name        string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex:idx_categories_slug"`
	Description string
	CreatedAt   time.Time
}

func (CategoryModel) TableName() string {
	return "categories"
}
