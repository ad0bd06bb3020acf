package domain

import (
	"context"
	"time"
)

type OrderRepository interface {
	// CreateOrder persists the order together with its items.
	CreateOrder(ctx context.Context, order *Order) error
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, newStatus OrderStatus) error
	// SetPaymentDetails stamps the order with the provider tag and the
	// generated settlement reference.
	SetPaymentDetails(ctx context.Context, orderID, provider, reference string) error
	GetOrdersByUserID(ctx context.Context, userID string, page, limit int64, sortBy, sortOrder string) ([]*Order, int64, error)
	GetAllOrders(ctx context.Context, filters *OrderFilters, page, limit int32) ([]*Order, int64, error)
	FindStaleOrders(ctx context.Context, olderThan time.Time) ([]*Order, error)
	SumTotalsByStatus(ctx context.Context, statuses []OrderStatus) (float64, error)
	CountByStatus(ctx context.Context) (map[OrderStatus]int64, error)
}
