package models

import (
	"time"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
)

type OrderModel struct {
	ID               string             `gorm:"primaryKey;type:uuid"`
	UserID           *string            `gorm:"type:uuid;index:idx_orders_user"`
	TotalAmount      float64            `gorm:"not null"`
	Currency         string             `gorm:"not null;default:GHS"`
	Status           domain.OrderStatus `gorm:"index:idx_orders_status"`
	ShippingName     string             `gorm:"not null"`
	ShippingLine     string             `gorm:"not null"`
	ShippingPhone    string             `gorm:"not null"`
	ShippingNotes    string
	BillingName      string
	BillingLine      string
	BillingPhone     string
	Notes            string
	PaymentProvider  string
	PaymentReference string `gorm:"index:idx_orders_payment_reference"`
	Items            []OrderItemModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt        time.Time        `gorm:"index:idx_orders_created_at"`
	UpdatedAt        time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}

type OrderItemModel struct {
	ID         string  `gorm:"primaryKey;type:uuid"`
	OrderID    string  `gorm:"type:uuid;not null;index:idx_order_items_order"`
	ProductID  string  `gorm:"type:uuid;not null"`
	VariantID  *string `gorm:"type:uuid"`
	Quantity   int32   `gorm:"not null"`
	UnitPrice  float64 `gorm:"not null"`
	TotalPrice float64 `gorm:"not null"`
	CreatedAt  time.Time
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
