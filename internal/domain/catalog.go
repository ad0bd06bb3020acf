package domain

import "time"

type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Price       float64          `json:"price"`
	CategoryID  string           `json:"category_id,omitempty"`
	ImageURL    string           `json:"image_url,omitempty"`
	Stock       int32            `json:"stock"`
	IsActive    bool             `json:"is_active"`
	Featured    bool             `json:"featured"`
	Variants    []ProductVariant `json:"variants,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type ProductVariant struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Stock     int32   `json:"stock"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

type ProductFilters struct {
	CategoryID string
	Query      string
	ActiveOnly bool
	Featured   bool
}
