package models

import (
	"time"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
)

type ReviewModel struct {
	ID                  string `gorm:"primaryKey"`
	ProductID           string `gorm:"type:uuid;not null;index:idx_reviews_product"`
	UserID              string `gorm:"type:uuid;not null"`
	Rating              int32  `gorm:"not null"`
	Comment             string
	IsApproved          bool `gorm:"index:idx_reviews_approved"`
	IsVerified          bool
	FeaturedTestimonial bool
	CreatedAt           time.Time
}

func (ReviewModel) TableName() string {
	return "reviews"
}

type ChatModel struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"type:uuid;not null;index:idx_chats_user"`
	IsOpen    bool   `gorm:"default:true;index:idx_chats_open"`
	Messages  []ChatMessageModel `gorm:"foreignKey:ChatID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ChatModel) TableName() string {
	return "chats"
}

type ChatMessageModel struct {
	ID        string            `gorm:"primaryKey"`
	ChatID    string            `gorm:"not null;index:idx_chat_messages_chat"`
	Sender    domain.ChatSender `gorm:"not null"`
	Body      string            `gorm:"not null"`
	CreatedAt time.Time         `gorm:"index:idx_chat_messages_created"`
}

func (ChatMessageModel) TableName() string {
	return "chat_messages"
}

type NotificationModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	UserID    string `gorm:"type:uuid;not null;index:idx_notifications_user"`
	Title     string `gorm:"not null"`
	Message   string
	Type      string
	Read      bool `gorm:"default:false"`
	CreatedAt time.Time
}

func (NotificationModel) TableName() string {
	return "notifications"
}

type ProfileModel struct {
	ID        string      `gorm:"primaryKey;type:uuid"`
	Email     string      `gorm:"uniqueIndex:idx_profiles_email"`
	FullName  string
	Phone     string
	Role      domain.Role `gorm:"default:customer"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProfileModel) TableName() string {
	return "profiles"
}

type NewsletterSubscriberModel struct {
	ID        string `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex:idx_newsletter_email"`
	CreatedAt time.Time
}

func (NewsletterSubscriberModel) TableName() string {
	return "newsletter_subscribers"
}
