package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/kafka"
	"github.com/google/uuid"
)

// Confirm records an out-of-band settlement as received and moves the order
// into fulfillment. Admin-only until a provider webhook exists.
func (uc *DefaultPaymentUsecase) Confirm(ctx context.Context, paymentID string, actor domain.Actor) error {
	return uc.resolve(ctx, paymentID, actor, domain.PaymentCompleted, domain.OrderProcessing,
		"Payment received", "Your payment was confirmed and your order is now being processed.")
}

// Fail marks the settlement attempt as failed; the customer may retry, which
// loops the order back through payment initiation.
func (uc *DefaultPaymentUsecase) Fail(ctx context.Context, paymentID string, actor domain.Actor) error {
	return uc.resolve(ctx, paymentID, actor, domain.PaymentFailed, domain.OrderPaymentFailed,
		"Payment failed", "We could not confirm your payment. Please try again.")
}

func (uc *DefaultPaymentUsecase) resolve(
	ctx context.Context,
	paymentID string,
	actor domain.Actor,
	paymentStatus domain.PaymentStatus,
	orderStatus domain.OrderStatus,
	title, message string) error {

	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	payment, err := uc.PaymentRepo.GetPaymentByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if !domain.PaymentCanTransition(payment.Status, paymentStatus) {
		return fmt.Errorf("%w: payment %s -> %s", domain.ErrInvalidTransition, payment.Status, paymentStatus)
	}

	order, err := uc.OrderRepo.GetOrderByID(ctx, payment.OrderID)
	if err != nil {
		return err
	}
	if !domain.CanTransition(order.Status, orderStatus, domain.SystemActor) {
		return fmt.Errorf("%w: order %s -> %s", domain.ErrInvalidTransition, order.Status, orderStatus)
	}

	now := time.Now()
	var confirmedAt *time.Time
	if paymentStatus == domain.PaymentCompleted {
		confirmedAt = &now
	}

	err = uc.TxManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := uc.PaymentRepo.UpdatePaymentStatus(ctx, paymentID, paymentStatus, confirmedAt); err != nil {
			return fmt.Errorf("update payment status: %w", err)
		}
		return uc.OrderRepo.UpdateOrderStatus(ctx, order.ID, orderStatus)
	})
	if err != nil {
		return fmt.Errorf("resolve payment: %w", err)
	}

	if uc.Metrics != nil {
		uc.Metrics.PaymentsResolvedTotal.WithLabelValues(string(payment.Provider), string(paymentStatus)).Inc()
	}

	go func() {
		if order.UserID != "" {
			notification := &domain.Notification{
				ID:      uuid.New().String(),
				UserID:  order.UserID,
				Title:   title,
				Message: message,
				Type:    domain.NotificationPayment,
			}
			if err := uc.NotificationRepo.CreateNotification(context.Background(), notification); err != nil {
				slog.Error("failed to write payment notification", "payment_id", paymentID, "error", err.Error())
			} else {
				uc.publishNotification(notification)
			}
		}

		event := kafka.PaymentEvent{
			PaymentID: payment.ID,
			OrderID:   order.ID,
			Provider:  string(payment.Provider),
			Status:    string(paymentStatus),
			Amount:    payment.Amount,
			Reference: payment.Reference,
		}
		if err := kafka.PublishPaymentEvent(uc.Publisher, event); err != nil {
			slog.Error("failed to publish PaymentEvent:resolved", "error", err.Error())
		}
	}()

	slog.Info("payment resolved",
		"payment_id", paymentID,
		"order_id", order.ID,
		"status", paymentStatus,
		"actor", actor.ID)

	return nil
}
