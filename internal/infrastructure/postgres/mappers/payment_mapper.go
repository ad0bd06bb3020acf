package mappers

import (
	"encoding/json"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/models"
)

func ToDomainPayment(model *models.PaymentModel) *domain.Payment {
	payment := &domain.Payment{
		ID:          model.ID,
		OrderID:     model.OrderID,
		Amount:      model.Amount,
		Currency:    model.Currency,
		Provider:    model.Provider,
		Reference:   model.Reference,
		Status:      model.Status,
		Method:      model.Method,
		ReceiptURL:  model.ReceiptURL,
		ConfirmedAt: model.ConfirmedAt,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
	if model.Metadata != "" {
		// Metadata written by this service always unmarshals; tolerate rows
		// imported from elsewhere.
		_ = json.Unmarshal([]byte(model.Metadata), &payment.Metadata)
	}
	return payment
}

func ToGORMPayment(payment *domain.Payment) (*models.PaymentModel, error) {
	metadata, err := json.Marshal(payment.Metadata)
	if err != nil {
		return nil, err
	}
	return &models.PaymentModel{
		ID:          payment.ID,
		OrderID:     payment.OrderID,
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		Provider:    payment.Provider,
		Reference:   payment.Reference,
		Status:      payment.Status,
		Method:      payment.Method,
		ReceiptURL:  payment.ReceiptURL,
		ConfirmedAt: payment.ConfirmedAt,
		Metadata:    string(metadata),
		CreatedAt:   payment.CreatedAt,
		UpdatedAt:   payment.UpdatedAt,
	}, nil
}

func ToDomainReceiver(model *models.PaymentReceiverModel) *domain.PaymentReceiver {
	return &domain.PaymentReceiver{
		ID:           model.ID,
		Provider:     domain.PaymentProvider(model.Provider),
		AccountName:  model.AccountName,
		Number:       model.Number,
		MaskedNumber: model.MaskedNumber,
		Active:       model.Active,
	}
}

func ToGORMReceiver(receiver *domain.PaymentReceiver) *models.PaymentReceiverModel {
	return &models.PaymentReceiverModel{
		ID:           receiver.ID,
		Provider:     string(receiver.Provider),
		AccountName:  receiver.AccountName,
		Number:       receiver.Number,
		MaskedNumber: receiver.MaskedNumber,
		Active:       receiver.Active,
	}
}
