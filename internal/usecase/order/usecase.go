package usecase

import (
	"context"
	"time"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/metrics"
	orderdto "github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/usecase/dto/order"
)

type OrderUsecase interface {
	Create(ctx context.Context, input *orderdto.CreateOrderInput) (*domain.Order, error)
	Transition(ctx context.Context, orderID string, next domain.OrderStatus, actor domain.Actor) (*domain.Order, error)

	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	GetUserOrders(ctx context.Context, input *orderdto.ListOrdersInput) ([]*domain.Order, int64, error)
	GetAllOrders(ctx context.Context, input *orderdto.AdminListOrdersInput) ([]*domain.Order, int64, error)

	CancelStaleOrders(ctx context.Context, olderThan time.Duration) error
}

type DefaultOrderUsecase struct {
	OrderRepo   domain.OrderRepository
	PaymentRepo domain.PaymentRepository
	TxManager   domain.TxManager
	Publisher   domain.PublisherPort
	Metrics     *metrics.StoreMetrics
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	paymentRepo domain.PaymentRepository,
	txManager domain.TxManager,
	pub domain.PublisherPort,
	storeMetrics *metrics.StoreMetrics) *DefaultOrderUsecase {

	return &DefaultOrderUsecase{
		OrderRepo:   orderRepo,
		PaymentRepo: paymentRepo,
		TxManager:   txManager,
		Publisher:   pub,
		Metrics:     storeMetrics,
	}
}
