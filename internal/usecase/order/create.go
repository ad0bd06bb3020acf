package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/kafka"
	orderdto "github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/usecase/dto/order"
	"github.com/google/uuid"
)

const defaultCurrency = "GHS"

// Create validates the cart snapshot and persists the order with its items in
// one transaction. Unit prices come from the snapshot and are frozen here;
// later catalog price edits never touch existing order items.
func (uc *DefaultOrderUsecase) Create(ctx context.Context, input *orderdto.CreateOrderInput) (*domain.Order, error) {
	start := time.Now()

	if !input.Session.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if !input.ShippingAddress.Complete() {
		return nil, domain.ErrInvalidAddress
	}

	orderID := uuid.New().String()
	items := make([]domain.OrderItem, 0, len(input.Items))
	total := 0.0
	for _, line := range input.Items {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: product %s", domain.ErrInvalidQuantity, line.ProductID)
		}
		if line.UnitPrice <= 0 {
			return nil, fmt.Errorf("%w: product %s", domain.ErrInvalidUnitPrice, line.ProductID)
		}
		lineTotal := line.UnitPrice * float64(line.Quantity)
		items = append(items, domain.OrderItem{
			ID:         uuid.New().String(),
			OrderID:    orderID,
			ProductID:  line.ProductID,
			VariantID:  line.VariantID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: lineTotal,
		})
		total += lineTotal
	}

	currency := input.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	order := &domain.Order{
		ID:              orderID,
		UserID:          input.Session.UserID,
		TotalAmount:     total,
		Currency:        currency,
		Status:          domain.OrderPending,
		ShippingAddress: input.ShippingAddress,
		BillingAddress:  input.BillingAddress,
		Notes:           input.Notes,
		Items:           items,
	}

	err := uc.TxManager.WithTransaction(ctx, func(ctx context.Context) error {
		return uc.OrderRepo.CreateOrder(ctx, order)
	})
	if err != nil {
		uc.recordOrderError("create")
		return nil, fmt.Errorf("create order: %w", err)
	}

	uc.recordOrderCreated(order, time.Since(start))

	go func(event kafka.OrderEvent) {
		if err := kafka.PublishOrderEvent(uc.Publisher, event); err != nil {
			slog.Error("failed to publish OrderEvent:created", "error", err.Error())
		}
	}(kafka.OrderEvent{
		OrderID:  order.ID,
		UserID:   order.UserID,
		Status:   string(order.Status),
		Amount:   order.TotalAmount,
		Currency: order.Currency,
	})

	slog.Info("order created",
		"order_id", order.ID,
		"user_id", order.UserID,
		"total", order.TotalAmount,
		"elapsed", time.Since(start))

	return order, nil
}
