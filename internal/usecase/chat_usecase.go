package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/kafka"
	"github.com/jaevor/go-nanoid"
)

type ChatUsecase interface {
	OpenChat(ctx context.Context, session domain.Session) (*domain.Chat, error)
	PostMessage(ctx context.Context, session domain.Session, chatID, body string) (*domain.ChatMessage, error)
	AdminReply(ctx context.Context, actor domain.Actor, chatID, body string) (*domain.ChatMessage, error)
	CloseChat(ctx context.Context, chatID string, actor domain.Actor) error
	ListChats(ctx context.Context, openOnly bool, actor domain.Actor) ([]*domain.Chat, error)
	ListMessages(ctx context.Context, chatID string, session domain.Session) ([]*domain.ChatMessage, error)
}

type DefaultChatUsecase struct {
	ChatRepo  domain.ChatRepository
	Publisher domain.PublisherPort
}

func NewDefaultChatUsecase(chatRepo domain.ChatRepository, pub domain.PublisherPort) *DefaultChatUsecase {
	return &DefaultChatUsecase{ChatRepo: chatRepo, Publisher: pub}
}

// OpenChat reuses the caller's existing open chat instead of stacking new ones.
func (uc *DefaultChatUsecase) OpenChat(ctx context.Context, session domain.Session) (*domain.Chat, error) {
	if !session.Authenticated() {
		return nil, domain.ErrUnauthorized
	}

	existing, err := uc.ChatRepo.GetOpenChatByUserID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("lookup open chat: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, fmt.Errorf("id generator: %w", err)
	}

	chat := &domain.Chat{
		ID:     idGenerator(),
		UserID: session.UserID,
		IsOpen: true,
	}
	if err := uc.ChatRepo.CreateChat(ctx, chat); err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}
	return chat, nil
}

func (uc *DefaultChatUsecase) PostMessage(ctx context.Context, session domain.Session, chatID, body string) (*domain.ChatMessage, error) {
	if !session.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	chat, err := uc.ChatRepo.GetChatByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat.UserID != session.UserID && !session.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return uc.appendMessage(ctx, chat, domain.SenderUser, body)
}

func (uc *DefaultChatUsecase) AdminReply(ctx context.Context, actor domain.Actor, chatID, body string) (*domain.ChatMessage, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	chat, err := uc.ChatRepo.GetChatByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	return uc.appendMessage(ctx, chat, domain.SenderAdmin, body)
}

func (uc *DefaultChatUsecase) appendMessage(ctx context.Context, chat *domain.Chat, sender domain.ChatSender, body string) (*domain.ChatMessage, error) {
	if !chat.IsOpen {
		return nil, domain.ErrChatClosed
	}
	if body == "" {
		return nil, fmt.Errorf("message body is empty")
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, fmt.Errorf("id generator: %w", err)
	}

	message := &domain.ChatMessage{
		ID:     idGenerator(),
		ChatID: chat.ID,
		Sender: sender,
		Body:   body,
	}
	if err := uc.ChatRepo.AddMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("add message: %w", err)
	}

	go func(event kafka.ChatEvent) {
		if err := kafka.PublishChatEvent(uc.Publisher, event); err != nil {
			slog.Error("failed to publish ChatEvent", "chat_id", chat.ID, "error", err.Error())
		}
	}(kafka.ChatEvent{
		ChatID:    chat.ID,
		MessageID: message.ID,
		Sender:    string(sender),
		Body:      body,
	})

	return message, nil
}

func (uc *DefaultChatUsecase) CloseChat(ctx context.Context, chatID string, actor domain.Actor) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if _, err := uc.ChatRepo.GetChatByID(ctx, chatID); err != nil {
		return err
	}
	return uc.ChatRepo.CloseChat(ctx, chatID)
}

func (uc *DefaultChatUsecase) ListChats(ctx context.Context, openOnly bool, actor domain.Actor) ([]*domain.Chat, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return uc.ChatRepo.ListChats(ctx, openOnly)
}

func (uc *DefaultChatUsecase) ListMessages(ctx context.Context, chatID string, session domain.Session) ([]*domain.ChatMessage, error) {
	chat, err := uc.ChatRepo.GetChatByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat.UserID != session.UserID && !session.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return uc.ChatRepo.ListMessages(ctx, chatID)
}
