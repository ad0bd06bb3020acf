package usecase

import (
	"context"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/google/uuid"
)

func (uc *DefaultPaymentUsecase) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return uc.PaymentRepo.GetPaymentByID(ctx, paymentID)
}

func (uc *DefaultPaymentUsecase) GetPaymentsByOrderID(ctx context.Context, orderID string) ([]*domain.Payment, error) {
	return uc.PaymentRepo.GetPaymentsByOrderID(ctx, orderID)
}

func (uc *DefaultPaymentUsecase) ListReceivers(ctx context.Context, actor domain.Actor) ([]*domain.PaymentReceiver, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return uc.ReceiverRepo.ListReceivers(ctx)
}

// SaveReceiver upserts operator settlement configuration. The masked number is
// derived server-side so clients never need to see the full number.
func (uc *DefaultPaymentUsecase) SaveReceiver(ctx context.Context, receiver *domain.PaymentReceiver, actor domain.Actor) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if !receiver.Provider.Valid() {
		return domain.ErrUnknownProvider
	}
	if receiver.ID == "" {
		receiver.ID = uuid.New().String()
	}
	receiver.MaskedNumber = domain.MaskNumber(receiver.Number)
	return uc.ReceiverRepo.SaveReceiver(ctx, receiver)
}
