package domain

import "context"

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *Review) error
	GetReviewByID(ctx context.Context, reviewID string) (*Review, error)
	ListReviewsByProduct(ctx context.Context, productID string, approvedOnly bool) ([]*Review, error)
	ListPendingReviews(ctx context.Context) ([]*Review, error)
	UpdateModeration(ctx context.Context, reviewID string, approved, featured bool) error
}

type ChatRepository interface {
	CreateChat(ctx context.Context, chat *Chat) error
	GetChatByID(ctx context.Context, chatID string) (*Chat, error)
	GetOpenChatByUserID(ctx context.Context, userID string) (*Chat, error)
	ListChats(ctx context.Context, openOnly bool) ([]*Chat, error)
	CloseChat(ctx context.Context, chatID string) error
	AddMessage(ctx context.Context, message *ChatMessage) error
	ListMessages(ctx context.Context, chatID string) ([]*ChatMessage, error)
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *Notification) error
	ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]*Notification, error)
	MarkRead(ctx context.Context, notificationID, userID string) error
}

type ProfileRepository interface {
	GetProfileByID(ctx context.Context, profileID string) (*Profile, error)
	ListProfiles(ctx context.Context, page, limit int32) ([]*Profile, int64, error)
	UpdateRole(ctx context.Context, profileID string, role Role) error
	CountProfiles(ctx context.Context) (int64, error)
}

type NewsletterRepository interface {
	Subscribe(ctx context.Context, subscriber *NewsletterSubscriber) error
	ListSubscribers(ctx context.Context) ([]*NewsletterSubscriber, error)
}
