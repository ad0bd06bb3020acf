package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
)

func seedOrder(repo *fakeOrderRepo, status domain.OrderStatus) *domain.Order {
	order := &domain.Order{
		ID:          "order-1",
		UserID:      "user-1",
		TotalAmount: 100,
		Currency:    "GHS",
		Status:      status,
	}
	_ = repo.CreateOrder(context.Background(), order)
	return order
}

func TestTransitionLegalMove(t *testing.T) {
	uc, repo := newTestOrderUsecase()
	seedOrder(repo, domain.OrderProcessing)

	order, err := uc.Transition(context.Background(), "order-1", domain.OrderShipped, domain.Actor{ID: "a1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if order.Status != domain.OrderShipped {
		t.Errorf("status = %s, want shipped", order.Status)
	}

	stored, _ := repo.GetOrderByID(context.Background(), "order-1")
	if stored.Status != domain.OrderShipped {
		t.Errorf("stored status = %s, want shipped", stored.Status)
	}
}

func TestTransitionIllegalMove(t *testing.T) {
	uc, repo := newTestOrderUsecase()
	seedOrder(repo, domain.OrderPending)

	_, err := uc.Transition(context.Background(), "order-1", domain.OrderShipped, domain.Actor{ID: "a1", Role: domain.RoleAdmin})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}

	stored, _ := repo.GetOrderByID(context.Background(), "order-1")
	if stored.Status != domain.OrderPending {
		t.Errorf("illegal move must not change status, got %s", stored.Status)
	}
}

func TestTransitionUnknownStatus(t *testing.T) {
	uc, repo := newTestOrderUsecase()
	seedOrder(repo, domain.OrderPending)

	_, err := uc.Transition(context.Background(), "order-1", domain.OrderStatus("archived"), domain.Actor{Role: domain.RoleAdmin})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestTransitionCustomerCannotCancelShipped(t *testing.T) {
	uc, repo := newTestOrderUsecase()
	seedOrder(repo, domain.OrderShipped)

	_, err := uc.Transition(context.Background(), "order-1", domain.OrderCancelled, domain.Actor{ID: "user-1", Role: domain.RoleCustomer})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}

	order, _ := uc.Transition(context.Background(), "order-1", domain.OrderCancelled, domain.Actor{ID: "a1", Role: domain.RoleAdmin})
	if order == nil || order.Status != domain.OrderCancelled {
		t.Error("admin cancel should succeed")
	}
}

func TestTransitionOrderNotFound(t *testing.T) {
	uc, _ := newTestOrderUsecase()

	_, err := uc.Transition(context.Background(), "missing", domain.OrderShipped, domain.Actor{Role: domain.RoleAdmin})
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestCancelStaleOrders(t *testing.T) {
	uc, repo := newTestOrderUsecase()

	stale := &domain.Order{ID: "stale-1", UserID: "user-1", Status: domain.OrderPending}
	_ = repo.CreateOrder(context.Background(), stale)
	repo.mu.Lock()
	repo.orders["stale-1"].CreatedAt = time.Now().Add(-48 * time.Hour)
	repo.mu.Unlock()

	fresh := &domain.Order{ID: "fresh-1", UserID: "user-1", Status: domain.OrderPending}
	_ = repo.CreateOrder(context.Background(), fresh)

	if err := uc.CancelStaleOrders(context.Background(), 24*time.Hour); err != nil {
		t.Fatalf("CancelStaleOrders: %v", err)
	}

	got, _ := repo.GetOrderByID(context.Background(), "stale-1")
	if got.Status != domain.OrderCancelled {
		t.Errorf("stale order status = %s, want cancelled", got.Status)
	}
	got, _ = repo.GetOrderByID(context.Background(), "fresh-1")
	if got.Status != domain.OrderPending {
		t.Errorf("fresh order status = %s, want pending", got.Status)
	}
}

func TestCancelStaleOrdersCancelsActivePayment(t *testing.T) {
	repo := newFakeOrderRepo()
	paymentRepo := newFakePaymentRepo()
	uc := NewDefaultOrderUsecase(repo, paymentRepo, fakeTxManager{}, newFakePublisher(), nil)
	ctx := context.Background()

	stale := &domain.Order{ID: "stale-1", UserID: "user-1", Status: domain.OrderPaymentPending}
	_ = repo.CreateOrder(ctx, stale)
	repo.mu.Lock()
	repo.orders["stale-1"].CreatedAt = time.Now().Add(-48 * time.Hour)
	repo.mu.Unlock()

	_ = paymentRepo.CreatePayment(ctx, &domain.Payment{
		ID:      "pay-1",
		OrderID: "stale-1",
		Amount:  100,
		Status:  domain.PaymentPending,
	})

	if err := uc.CancelStaleOrders(ctx, 24*time.Hour); err != nil {
		t.Fatalf("CancelStaleOrders: %v", err)
	}

	order, _ := repo.GetOrderByID(ctx, "stale-1")
	if order.Status != domain.OrderCancelled {
		t.Errorf("order status = %s, want cancelled", order.Status)
	}
	payment, _ := paymentRepo.GetPaymentByID(ctx, "pay-1")
	if payment.Status != domain.PaymentCancelled {
		t.Errorf("payment status = %s, want cancelled", payment.Status)
	}
	if active, _ := paymentRepo.GetActivePaymentByOrderID(ctx, "stale-1"); active != nil {
		t.Error("cancelled order must not keep an active payment")
	}
}
