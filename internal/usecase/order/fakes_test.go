package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
)

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order

	failUpdateStatus error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *fakeOrderRepo) CreateOrder(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *order
	clone.CreatedAt = time.Now()
	r.orders[order.ID] = &clone
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(_ context.Context, orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *order
	return &clone, nil
}

func (r *fakeOrderRepo) UpdateOrderStatus(_ context.Context, orderID string, newStatus domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failUpdateStatus != nil {
		return r.failUpdateStatus
	}
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.Status = newStatus
	return nil
}

func (r *fakeOrderRepo) SetPaymentDetails(_ context.Context, orderID, provider, reference string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.PaymentProvider = provider
	order.PaymentReference = reference
	return nil
}

func (r *fakeOrderRepo) GetOrdersByUserID(_ context.Context, userID string, page, limit int64, sortBy, sortOrder string) ([]*domain.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			clone := *order
			out = append(out, &clone)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) GetAllOrders(_ context.Context, filters *domain.OrderFilters, page, limit int32) ([]*domain.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Order
	for _, order := range r.orders {
		if filters != nil && filters.UserID != "" && order.UserID != filters.UserID {
			continue
		}
		if filters != nil && len(filters.Statuses) > 0 {
			match := false
			for _, s := range filters.Statuses {
				if order.Status == s {
					match = true
				}
			}
			if !match {
				continue
			}
		}
		clone := *order
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) FindStaleOrders(_ context.Context, olderThan time.Time) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Order
	for _, order := range r.orders {
		if (order.Status == domain.OrderPending || order.Status == domain.OrderPaymentPending) &&
			order.CreatedAt.Before(olderThan) {
			clone := *order
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) SumTotalsByStatus(_ context.Context, statuses []domain.OrderStatus) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sum := 0.0
	for _, order := range r.orders {
		for _, s := range statuses {
			if order.Status == s {
				sum += order.TotalAmount
			}
		}
	}
	return sum, nil
}

func (r *fakeOrderRepo) CountByStatus(_ context.Context) (map[domain.OrderStatus]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[domain.OrderStatus]int64)
	for _, order := range r.orders {
		counts[order.Status]++
	}
	return counts, nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*domain.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*domain.Payment)}
}

func (r *fakePaymentRepo) CreatePayment(_ context.Context, payment *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *payment
	r.payments[payment.ID] = &clone
	return nil
}

func (r *fakePaymentRepo) GetPaymentByID(_ context.Context, paymentID string) (*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	payment, ok := r.payments[paymentID]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	clone := *payment
	return &clone, nil
}

func (r *fakePaymentRepo) GetActivePaymentByOrderID(_ context.Context, orderID string) (*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, payment := range r.payments {
		if payment.OrderID == orderID && payment.Status.Active() {
			clone := *payment
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) GetPaymentsByOrderID(_ context.Context, orderID string) ([]*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Payment
	for _, payment := range r.payments {
		if payment.OrderID == orderID {
			clone := *payment
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) UpdatePaymentStatus(_ context.Context, paymentID string, newStatus domain.PaymentStatus, confirmedAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	payment, ok := r.payments[paymentID]
	if !ok {
		return domain.ErrPaymentNotFound
	}
	payment.Status = newStatus
	if confirmedAt != nil {
		payment.ConfirmedAt = confirmedAt
	}
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePublisher struct {
	mu       sync.Mutex
	messages map[string][]domain.Message
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{messages: make(map[string][]domain.Message)}
}

func (p *fakePublisher) Publish(topic string, msgs ...domain.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages[topic] = append(p.messages[topic], msgs...)
	return nil
}
