package repository

import (
	"context"
	"errors"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/mappers"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultChatRepository struct {
	DB *gorm.DB
}

func NewDefaultChatRepository(db *gorm.DB) *DefaultChatRepository {
	return &DefaultChatRepository{DB: db}
}

func (r *DefaultChatRepository) CreateChat(ctx context.Context, chat *domain.Chat) error {
	return dbFrom(ctx, r.DB).Create(mappers.ToGORMChat(chat)).Error
}

func (r *DefaultChatRepository) GetChatByID(ctx context.Context, chatID string) (*domain.Chat, error) {
	var chatModel models.ChatModel
	err := dbFrom(ctx, r.DB).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("chat_messages.created_at ASC")
		}).
		First(&chatModel, "id = ?", chatID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrChatNotFound
		}
		return nil, err
	}
	return mappers.ToDomainChat(&chatModel), nil
}

func (r *DefaultChatRepository) GetOpenChatByUserID(ctx context.Context, userID string) (*domain.Chat, error) {
	var chatModel models.ChatModel
	err := dbFrom(ctx, r.DB).
		Where("user_id = ? AND is_open = ?", userID, true).
		Order("created_at DESC").
		First(&chatModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainChat(&chatModel), nil
}

func (r *DefaultChatRepository) ListChats(ctx context.Context, openOnly bool) ([]*domain.Chat, error) {
	query := dbFrom(ctx, r.DB).Model(&models.ChatModel{})
	if openOnly {
		query = query.Where("is_open = ?", true)
	}

	var chatModels []models.ChatModel
	if err := query.Order("updated_at DESC").Find(&chatModels).Error; err != nil {
		return nil, err
	}

	chats := make([]*domain.Chat, len(chatModels))
	for i, chatModel := range chatModels {
		chats[i] = mappers.ToDomainChat(&chatModel)
	}

	return chats, nil
}

func (r *DefaultChatRepository) CloseChat(ctx context.Context, chatID string) error {
	result := dbFrom(ctx, r.DB).Model(&models.ChatModel{}).
		Where("id = ?", chatID).
		Update("is_open", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrChatNotFound
	}
	return nil
}

func (r *DefaultChatRepository) AddMessage(ctx context.Context, message *domain.ChatMessage) error {
	db := dbFrom(ctx, r.DB)
	if err := db.Create(mappers.ToGORMChatMessage(message)).Error; err != nil {
		return err
	}
	// Bump the parent chat so admin inbox ordering follows activity.
	return db.Model(&models.ChatModel{}).
		Where("id = ?", message.ChatID).
		Update("updated_at", gorm.Expr("NOW()")).Error
}

func (r *DefaultChatRepository) ListMessages(ctx context.Context, chatID string) ([]*domain.ChatMessage, error) {
	var messageModels []models.ChatMessageModel
	err := dbFrom(ctx, r.DB).
		Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Find(&messageModels).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*domain.ChatMessage, len(messageModels))
	for i, messageModel := range messageModels {
		messages[i] = mappers.ToDomainChatMessage(&messageModel)
	}

	return messages, nil
}
