package repository

import (
	"context"
	"errors"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/mappers"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultReceiverRepository struct {
	DB *gorm.DB
}

func NewDefaultReceiverRepository(db *gorm.DB) *DefaultReceiverRepository {
	return &DefaultReceiverRepository{DB: db}
}

func (r *DefaultReceiverRepository) GetActiveReceiver(ctx context.Context, provider domain.PaymentProvider) (*domain.PaymentReceiver, error) {
	var receiverModel models.PaymentReceiverModel
	err := dbFrom(ctx, r.DB).
		Where("provider = ?", string(provider)).
		Where("active = ?", true).
		Order("updated_at DESC").
		First(&receiverModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReceiverNotFound
		}
		return nil, err
	}
	return mappers.ToDomainReceiver(&receiverModel), nil
}

func (r *DefaultReceiverRepository) ListReceivers(ctx context.Context) ([]*domain.PaymentReceiver, error) {
	var receiverModels []models.PaymentReceiverModel
	if err := dbFrom(ctx, r.DB).Order("provider, updated_at DESC").Find(&receiverModels).Error; err != nil {
		return nil, err
	}

	receivers := make([]*domain.PaymentReceiver, len(receiverModels))
	for i, receiverModel := range receiverModels {
		receivers[i] = mappers.ToDomainReceiver(&receiverModel)
	}

	return receivers, nil
}

// SaveReceiver upserts the receiver. Activating a receiver deactivates the
// other receivers of the same provider so GetActiveReceiver stays unambiguous.
func (r *DefaultReceiverRepository) SaveReceiver(ctx context.Context, receiver *domain.PaymentReceiver) error {
	db := dbFrom(ctx, r.DB)
	return db.Transaction(func(tx *gorm.DB) error {
		if receiver.Active {
			err := tx.Model(&models.PaymentReceiverModel{}).
				Where("provider = ? AND id <> ?", string(receiver.Provider), receiver.ID).
				Update("active", false).Error
			if err != nil {
				return err
			}
		}
		return tx.Save(mappers.ToGORMReceiver(receiver)).Error
	})
}
