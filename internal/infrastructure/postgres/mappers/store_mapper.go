package mappers

import (
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/models"
)

func ToDomainReview(model *models.ReviewModel) *domain.Review {
	return &domain.Review{
		ID:                  model.ID,
		ProductID:           model.ProductID,
		UserID:              model.UserID,
		Rating:              model.Rating,
		Comment:             model.Comment,
		IsApproved:          model.IsApproved,
		IsVerified:          model.IsVerified,
		FeaturedTestimonial: model.FeaturedTestimonial,
		CreatedAt:           model.CreatedAt,
	}
}

func ToGORMReview(review *domain.Review) *models.ReviewModel {
	return &models.ReviewModel{
		ID:                  review.ID,
		ProductID:           review.ProductID,
		UserID:              review.UserID,
		Rating:              review.Rating,
		Comment:             review.Comment,
		IsApproved:          review.IsApproved,
		IsVerified:          review.IsVerified,
		FeaturedTestimonial: review.FeaturedTestimonial,
	}
}

func ToGORMChat(chat *domain.Chat) *models.ChatModel {
	return &models.ChatModel{
		ID:     chat.ID,
		UserID: chat.UserID,
		IsOpen: chat.IsOpen,
	}
}

func ToGORMChatMessage(message *domain.ChatMessage) *models.ChatMessageModel {
	return &models.ChatMessageModel{
		ID:     message.ID,
		ChatID: message.ChatID,
		Sender: message.Sender,
		Body:   message.Body,
	}
}

func ToGORMNotification(notification *domain.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:      notification.ID,
		UserID:  notification.UserID,
		Title:   notification.Title,
		Message: notification.Message,
		Type:    notification.Type,
		Read:    notification.Read,
	}
}

func ToGORMSubscriber(subscriber *domain.NewsletterSubscriber) *models.NewsletterSubscriberModel {
	return &models.NewsletterSubscriberModel{
		ID:    subscriber.ID,
		Email: subscriber.Email,
	}
}

func ToDomainChat(model *models.ChatModel) *domain.Chat {
	chat := &domain.Chat{
		ID:        model.ID,
		UserID:    model.UserID,
		IsOpen:    model.IsOpen,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
	chat.Messages = make([]domain.ChatMessage, len(model.Messages))
	for i, message := range model.Messages {
		chat.Messages[i] = *ToDomainChatMessage(&message)
	}
	return chat
}

func ToDomainChatMessage(model *models.ChatMessageModel) *domain.ChatMessage {
	return &domain.ChatMessage{
		ID:        model.ID,
		ChatID:    model.ChatID,
		Sender:    model.Sender,
		Body:      model.Body,
		CreatedAt: model.CreatedAt,
	}
}

func ToDomainNotification(model *models.NotificationModel) *domain.Notification {
	return &domain.Notification{
		ID:        model.ID,
		UserID:    model.UserID,
		Title:     model.Title,
		Message:   model.Message,
		Type:      model.Type,
		Read:      model.Read,
		CreatedAt: model.CreatedAt,
	}
}

func ToDomainProfile(model *models.ProfileModel) *domain.Profile {
	return &domain.Profile{
		ID:        model.ID,
		Email:     model.Email,
		FullName:  model.FullName,
		Phone:     model.Phone,
		Role:      model.Role,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToDomainSubscriber(model *models.NewsletterSubscriberModel) *domain.NewsletterSubscriber {
	return &domain.NewsletterSubscriber{
		ID:        model.ID,
		Email:     model.Email,
		CreatedAt: model.CreatedAt,
	}
}
