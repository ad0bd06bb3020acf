package repository

import (
	"context"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/mappers"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultNewsletterRepository struct {
	DB *gorm.DB
}

func NewDefaultNewsletterRepository(db *gorm.DB) *DefaultNewsletterRepository {
	return &DefaultNewsletterRepository{DB: db}
}

// Subscribe is idempotent: re-subscribing an existing email is a no-op.
func (r *DefaultNewsletterRepository) Subscribe(ctx context.Context, subscriber *domain.NewsletterSubscriber) error {
	return dbFrom(ctx, r.DB).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(mappers.ToGORMSubscriber(subscriber)).Error
}

func (r *DefaultNewsletterRepository) ListSubscribers(ctx context.Context) ([]*domain.NewsletterSubscriber, error) {
	var subscriberModels []models.NewsletterSubscriberModel
	if err := dbFrom(ctx, r.DB).Order("created_at DESC").Find(&subscriberModels).Error; err != nil {
		return nil, err
	}

	subscribers := make([]*domain.NewsletterSubscriber, len(subscriberModels))
	for i, subscriberModel := range subscriberModels {
		subscribers[i] = mappers.ToDomainSubscriber(&subscriberModel)
	}

	return subscribers, nil
}
