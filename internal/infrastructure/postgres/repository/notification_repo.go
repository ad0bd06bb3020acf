package repository

import (
	"context"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/mappers"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultNotificationRepository struct {
	DB *gorm.DB
}

func NewDefaultNotificationRepository(db *gorm.DB) *DefaultNotificationRepository {
	return &DefaultNotificationRepository{DB: db}
}

func (r *DefaultNotificationRepository) CreateNotification(ctx context.Context, notification *domain.Notification) error {
	return dbFrom(ctx, r.DB).Create(mappers.ToGORMNotification(notification)).Error
}

func (r *DefaultNotificationRepository) ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]*domain.Notification, error) {
	query := dbFrom(ctx, r.DB).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	var notificationModels []models.NotificationModel
	if err := query.Order("created_at DESC").Limit(100).Find(&notificationModels).Error; err != nil {
		return nil, err
	}

	notifications := make([]*domain.Notification, len(notificationModels))
	for i, notificationModel := range notificationModels {
		notifications[i] = mappers.ToDomainNotification(&notificationModel)
	}

	return notifications, nil
}

// MarkRead scopes the update by user so one customer cannot touch another's
// notifications.
func (r *DefaultNotificationRepository) MarkRead(ctx context.Context, notificationID, userID string) error {
	result := dbFrom(ctx, r.DB).Model(&models.NotificationModel{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
