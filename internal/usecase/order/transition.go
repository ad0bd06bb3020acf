package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/kafka"
)

// Transition applies one legal status change to an order. Every pair outside
// the transition table is rejected with ErrInvalidTransition regardless of the
// caller's write access.
func (uc *DefaultOrderUsecase) Transition(ctx context.Context, orderID string, next domain.OrderStatus, actor domain.Actor) (*domain.Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidTransition, next)
	}

	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(order.Status, next, actor) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, next)
	}

	if err := uc.OrderRepo.UpdateOrderStatus(ctx, orderID, next); err != nil {
		uc.recordOrderError("transition")
		return nil, fmt.Errorf("update order status: %w", err)
	}

	uc.recordOrderTransition(order.Status, next)
	previous := order.Status
	order.Status = next
	order.UpdatedAt = time.Now()

	go func(event kafka.OrderEvent) {
		if err := kafka.PublishOrderEvent(uc.Publisher, event); err != nil {
			slog.Error("failed to publish OrderEvent:transition", "error", err.Error())
		}
	}(kafka.OrderEvent{
		OrderID:  order.ID,
		UserID:   order.UserID,
		Status:   string(next),
		Amount:   order.TotalAmount,
		Currency: order.Currency,
	})

	slog.Info("order status changed",
		"order_id", order.ID,
		"from", previous,
		"to", next,
		"actor", actor.ID)

	return order, nil
}

// CancelStaleOrders sweeps orders that never completed payment. A cancelled
// order must not keep an active settlement slot, so the order's pending
// payment is cancelled in the same transaction.
func (uc *DefaultOrderUsecase) CancelStaleOrders(ctx context.Context, olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)
	orders, err := uc.OrderRepo.FindStaleOrders(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("find stale orders: %w", err)
	}

	for _, order := range orders {
		if err := uc.cancelStaleOrder(ctx, order); err != nil {
			slog.Error("failed to cancel stale order", "order_id", order.ID, "error", err.Error())
		}
	}

	return nil
}

func (uc *DefaultOrderUsecase) cancelStaleOrder(ctx context.Context, order *domain.Order) error {
	if !domain.CanTransition(order.Status, domain.OrderCancelled, domain.SystemActor) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, domain.OrderCancelled)
	}

	err := uc.TxManager.WithTransaction(ctx, func(ctx context.Context) error {
		active, err := uc.PaymentRepo.GetActivePaymentByOrderID(ctx, order.ID)
		if err != nil {
			return fmt.Errorf("check active payment: %w", err)
		}
		if active != nil {
			if err := uc.PaymentRepo.UpdatePaymentStatus(ctx, active.ID, domain.PaymentCancelled, nil); err != nil {
				return fmt.Errorf("cancel payment: %w", err)
			}
		}
		return uc.OrderRepo.UpdateOrderStatus(ctx, order.ID, domain.OrderCancelled)
	})
	if err != nil {
		return err
	}

	uc.recordOrderTransition(order.Status, domain.OrderCancelled)

	go func(event kafka.OrderEvent) {
		if err := kafka.PublishOrderEvent(uc.Publisher, event); err != nil {
			slog.Error("failed to publish OrderEvent:transition", "error", err.Error())
		}
	}(kafka.OrderEvent{
		OrderID:  order.ID,
		UserID:   order.UserID,
		Status:   string(domain.OrderCancelled),
		Amount:   order.TotalAmount,
		Currency: order.Currency,
	})

	slog.Info("stale order cancelled", "order_id", order.ID, "from", order.Status)
	return nil
}
