package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/kafka"
	paymentdto "github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/usecase/dto/payment"
	"github.com/google/uuid"
)

// amountTolerance absorbs float representation noise when comparing the
// caller-supplied amount with the stored order total.
const amountTolerance = 0.005

// Initiate begins an out-of-band mobile-money settlement for an order.
// The payment insert and the order update share one transaction; the
// customer notification and the stream event are best-effort afterwards.
func (uc *DefaultPaymentUsecase) Initiate(ctx context.Context, input *paymentdto.InitiatePaymentInput) (*paymentdto.InitiatePaymentOutput, error) {
	if !input.Session.Authenticated() {
		return nil, domain.ErrUnauthorized
	}

	provider := domain.PaymentProvider(input.Provider)
	if !provider.Valid() {
		uc.recordInitiationError(input.Provider, "unknown_provider")
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProvider, input.Provider)
	}

	order, err := uc.OrderRepo.GetOrderByID(ctx, input.OrderID)
	if err != nil {
		uc.recordInitiationError(input.Provider, "order_lookup")
		return nil, err
	}
	if order.UserID != input.Session.UserID && !input.Session.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	// The caller-supplied amount is advisory only; the order total is the
	// amount of record.
	if math.Abs(input.Amount-order.TotalAmount) > amountTolerance {
		uc.recordInitiationError(input.Provider, "amount_mismatch")
		return nil, fmt.Errorf("%w: got %.2f, order total is %.2f",
			domain.ErrAmountMismatch, input.Amount, order.TotalAmount)
	}

	if !domain.CanTransition(order.Status, domain.OrderPaymentPending, domain.SystemActor) {
		uc.recordInitiationError(input.Provider, "order_state")
		return nil, fmt.Errorf("%w: order is %s", domain.ErrInvalidTransition, order.Status)
	}

	active, err := uc.PaymentRepo.GetActivePaymentByOrderID(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("check active payment: %w", err)
	}
	if active != nil {
		uc.recordInitiationError(input.Provider, "in_flight")
		return nil, fmt.Errorf("%w: reference %s", domain.ErrPaymentInFlight, active.Reference)
	}

	receiver, err := uc.ReceiverRepo.GetActiveReceiver(ctx, provider)
	if err != nil {
		uc.recordInitiationError(input.Provider, "receiver")
		return nil, err
	}

	masked := receiver.MaskedNumber
	if masked == "" {
		masked = domain.MaskNumber(receiver.Number)
	}

	now := time.Now()
	reference := newPaymentReference(order.ID, now)
	payment := &domain.Payment{
		ID:        uuid.New().String(),
		OrderID:   order.ID,
		Amount:    order.TotalAmount,
		Currency:  order.Currency,
		Provider:  provider,
		Reference: reference,
		Status:    domain.PaymentPending,
		Method:    "mobile_money",
		Metadata: domain.PaymentMetadata{
			CustomerPhone:  input.Phone,
			MaskedReceiver: masked,
			InitiatedAt:    now,
		},
	}

	err = uc.TxManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := uc.PaymentRepo.CreatePayment(ctx, payment); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		if err := uc.OrderRepo.UpdateOrderStatus(ctx, order.ID, domain.OrderPaymentPending); err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		return uc.OrderRepo.SetPaymentDetails(ctx, order.ID, string(provider), reference)
	})
	if err != nil {
		uc.recordInitiationError(input.Provider, "persistence")
		return nil, fmt.Errorf("initiate payment: %w", err)
	}

	uc.recordInitiation(provider)
	uc.notifyPaymentPending(order, payment)

	slog.Info("payment initiated",
		"order_id", order.ID,
		"payment_id", payment.ID,
		"provider", provider,
		"reference", reference)

	return &paymentdto.InitiatePaymentOutput{
		PaymentID:    payment.ID,
		Reference:    reference,
		Instructions: buildInstructions(provider, order.Currency, order.TotalAmount, masked, reference),
	}, nil
}

// newPaymentReference builds the human-quotable settlement reference:
// PAY-<epoch-millis>-<first 8 chars of order id>.
func newPaymentReference(orderID string, at time.Time) string {
	short := orderID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("PAY-%d-%s", at.UnixMilli(), short)
}

// notifyPaymentPending writes the customer notification and publishes the
// payment event. Both are fire-and-forget; the settlement already committed.
func (uc *DefaultPaymentUsecase) notifyPaymentPending(order *domain.Order, payment *domain.Payment) {
	go func() {
		if order.UserID != "" {
			notification := &domain.Notification{
				ID:     uuid.New().String(),
				UserID: order.UserID,
				Title:  "Complete your payment",
				Message: fmt.Sprintf("Send %s %.2f to %s via %s and quote reference %s.",
					payment.Currency, payment.Amount, payment.Metadata.MaskedReceiver,
					payment.Provider.DisplayName(), payment.Reference),
				Type: domain.NotificationPayment,
			}
			if err := uc.NotificationRepo.CreateNotification(context.Background(), notification); err != nil {
				slog.Error("failed to write payment notification", "order_id", order.ID, "error", err.Error())
			} else {
				if uc.Metrics != nil {
					uc.Metrics.NotificationsCreatedTotal.Inc()
				}
				uc.publishNotification(notification)
			}
		}

		event := kafka.PaymentEvent{
			PaymentID: payment.ID,
			OrderID:   order.ID,
			Provider:  string(payment.Provider),
			Status:    string(payment.Status),
			Amount:    payment.Amount,
			Reference: payment.Reference,
			Receiver:  payment.Metadata.MaskedReceiver,
		}
		if err := kafka.PublishPaymentEvent(uc.Publisher, event); err != nil {
			slog.Error("failed to publish PaymentEvent:initiated", "error", err.Error())
		}
	}()
}

func (uc *DefaultPaymentUsecase) recordInitiation(provider domain.PaymentProvider) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.PaymentsInitiatedTotal.WithLabelValues(string(provider)).Inc()
}

func (uc *DefaultPaymentUsecase) recordInitiationError(provider, reason string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.PaymentInitiationErrorsTotal.WithLabelValues(provider, reason).Inc()
}
