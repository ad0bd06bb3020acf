package domain

import (
	"context"
	"time"
)

type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *Payment) error
	GetPaymentByID(ctx context.Context, paymentID string) (*Payment, error)
	// GetActivePaymentByOrderID returns the single pending/processing payment
	// for the order, or (nil, nil) when none exists.
	GetActivePaymentByOrderID(ctx context.Context, orderID string) (*Payment, error)
	GetPaymentsByOrderID(ctx context.Context, orderID string) ([]*Payment, error)
	UpdatePaymentStatus(ctx context.Context, paymentID string, newStatus PaymentStatus, confirmedAt *time.Time) error
}

type PaymentReceiverRepository interface {
	// GetActiveReceiver returns ErrReceiverNotFound when no active receiver is
	// configured for the provider.
	GetActiveReceiver(ctx context.Context, provider PaymentProvider) (*PaymentReceiver, error)
	ListReceivers(ctx context.Context) ([]*PaymentReceiver, error)
	SaveReceiver(ctx context.Context, receiver *PaymentReceiver) error
}
