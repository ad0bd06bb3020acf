package repository

import (
	"context"
	"errors"
	"time"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/mappers"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPaymentRepository struct {
	DB *gorm.DB
}

func NewDefaultPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{DB: db}
}

func (r *DefaultPaymentRepository) CreatePayment(ctx context.Context, payment *domain.Payment) error {
	paymentModel, err := mappers.ToGORMPayment(payment)
	if err != nil {
		return err
	}
	return dbFrom(ctx, r.DB).Create(paymentModel).Error
}

func (r *DefaultPaymentRepository) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	var paymentModel models.PaymentModel
	if err := dbFrom(ctx, r.DB).First(&paymentModel, "id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPayment(&paymentModel), nil
}

func (r *DefaultPaymentRepository) GetActivePaymentByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	var paymentModel models.PaymentModel
	err := dbFrom(ctx, r.DB).
		Where("order_id = ?", orderID).
		Where("status IN (?)", []domain.PaymentStatus{domain.PaymentPending, domain.PaymentProcessing}).
		First(&paymentModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainPayment(&paymentModel), nil
}

func (r *DefaultPaymentRepository) GetPaymentsByOrderID(ctx context.Context, orderID string) ([]*domain.Payment, error) {
	var paymentModels []models.PaymentModel
	err := dbFrom(ctx, r.DB).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&paymentModels).Error
	if err != nil {
		return nil, err
	}

	payments := make([]*domain.Payment, len(paymentModels))
	for i, paymentModel := range paymentModels {
		payments[i] = mappers.ToDomainPayment(&paymentModel)
	}

	return payments, nil
}

func (r *DefaultPaymentRepository) UpdatePaymentStatus(
	ctx context.Context,
	paymentID string,
	newStatus domain.PaymentStatus,
	confirmedAt *time.Time,
) error {
	updates := map[string]interface{}{"status": newStatus}
	if confirmedAt != nil {
		updates["confirmed_at"] = confirmedAt
	}

	result := dbFrom(ctx, r.DB).Model(&models.PaymentModel{}).
		Where("id = ?", paymentID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}
