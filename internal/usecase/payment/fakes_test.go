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

	failSetPaymentDetails error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *fakeOrderRepo) CreateOrder(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *order
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
	if r.failSetPaymentDetails != nil {
		return r.failSetPaymentDetails
	}
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.PaymentProvider = provider
	order.PaymentReference = reference
	return nil
}

func (r *fakeOrderRepo) GetOrdersByUserID(_ context.Context, userID string, page, limit int64, sortBy, sortOrder string) ([]*domain.Order, int64, error) {
	return nil, 0, nil
}

func (r *fakeOrderRepo) GetAllOrders(_ context.Context, filters *domain.OrderFilters, page, limit int32) ([]*domain.Order, int64, error) {
	return nil, 0, nil
}

func (r *fakeOrderRepo) FindStaleOrders(_ context.Context, olderThan time.Time) ([]*domain.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepo) SumTotalsByStatus(_ context.Context, statuses []domain.OrderStatus) (float64, error) {
	return 0, nil
}

func (r *fakeOrderRepo) CountByStatus(_ context.Context) (map[domain.OrderStatus]int64, error) {
	return nil, nil
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

type fakeReceiverRepo struct {
	mu        sync.Mutex
	receivers map[string]*domain.PaymentReceiver
}

func newFakeReceiverRepo() *fakeReceiverRepo {
	return &fakeReceiverRepo{receivers: make(map[string]*domain.PaymentReceiver)}
}

func (r *fakeReceiverRepo) GetActiveReceiver(_ context.Context, provider domain.PaymentProvider) (*domain.PaymentReceiver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, receiver := range r.receivers {
		if receiver.Provider == provider && receiver.Active {
			clone := *receiver
			return &clone, nil
		}
	}
	return nil, domain.ErrReceiverNotFound
}

func (r *fakeReceiverRepo) ListReceivers(_ context.Context) ([]*domain.PaymentReceiver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.PaymentReceiver
	for _, receiver := range r.receivers {
		clone := *receiver
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeReceiverRepo) SaveReceiver(_ context.Context, receiver *domain.PaymentReceiver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *receiver
	r.receivers[receiver.ID] = &clone
	return nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*domain.Notification
}

func (r *fakeNotificationRepo) CreateNotification(_ context.Context, notification *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *notification
	r.notifications = append(r.notifications, &clone)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userID string, unreadOnly bool) ([]*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			clone := *n
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, notificationID, userID string) error {
	return nil
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

// snapshotTxManager restores the payment and order fakes when fn fails,
// mimicking a rollback.
type snapshotTxManager struct {
	orders   *fakeOrderRepo
	payments *fakePaymentRepo
}

func (m snapshotTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	orderSnap := make(map[string]*domain.Order, len(m.orders.orders))
	m.orders.mu.Lock()
	for id, order := range m.orders.orders {
		clone := *order
		orderSnap[id] = &clone
	}
	m.orders.mu.Unlock()

	paymentSnap := make(map[string]*domain.Payment, len(m.payments.payments))
	m.payments.mu.Lock()
	for id, payment := range m.payments.payments {
		clone := *payment
		paymentSnap[id] = &clone
	}
	m.payments.mu.Unlock()

	if err := fn(ctx); err != nil {
		m.orders.mu.Lock()
		m.orders.orders = orderSnap
		m.orders.mu.Unlock()
		m.payments.mu.Lock()
		m.payments.payments = paymentSnap
		m.payments.mu.Unlock()
		return err
	}
	return nil
}
