package usecase

import (
	"context"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
)

type NotificationUsecase interface {
	ListNotifications(ctx context.Context, session domain.Session, unreadOnly bool) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, session domain.Session, notificationID string) error
}

type DefaultNotificationUsecase struct {
	NotificationRepo domain.NotificationRepository
}

func NewDefaultNotificationUsecase(notificationRepo domain.NotificationRepository) *DefaultNotificationUsecase {
	return &DefaultNotificationUsecase{NotificationRepo: notificationRepo}
}

func (uc *DefaultNotificationUsecase) ListNotifications(ctx context.Context, session domain.Session, unreadOnly bool) ([]*domain.Notification, error) {
	if !session.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	return uc.NotificationRepo.ListByUser(ctx, session.UserID, unreadOnly)
}

func (uc *DefaultNotificationUsecase) MarkRead(ctx context.Context, session domain.Session, notificationID string) error {
	if !session.Authenticated() {
		return domain.ErrUnauthorized
	}
	return uc.NotificationRepo.MarkRead(ctx, notificationID, session.UserID)
}
