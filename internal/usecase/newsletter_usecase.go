package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/jaevor/go-nanoid"
)

type NewsletterUsecase interface {
	Subscribe(ctx context.Context, email string) (*domain.NewsletterSubscriber, error)
	ListSubscribers(ctx context.Context, actor domain.Actor) ([]*domain.NewsletterSubscriber, error)
}

type DefaultNewsletterUsecase struct {
	NewsletterRepo domain.NewsletterRepository
}

func NewDefaultNewsletterUsecase(newsletterRepo domain.NewsletterRepository) *DefaultNewsletterUsecase {
	return &DefaultNewsletterUsecase{NewsletterRepo: newsletterRepo}
}

func (uc *DefaultNewsletterUsecase) Subscribe(ctx context.Context, email string) (*domain.NewsletterSubscriber, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return nil, domain.ErrInvalidEmail
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, fmt.Errorf("id generator: %w", err)
	}

	subscriber := &domain.NewsletterSubscriber{
		ID:    idGenerator(),
		Email: email,
	}
	if err := uc.NewsletterRepo.Subscribe(ctx, subscriber); err != nil {
		return nil, fmt.Errorf("subscribe: %w", err)
	}
	return subscriber, nil
}

func (uc *DefaultNewsletterUsecase) ListSubscribers(ctx context.Context, actor domain.Actor) ([]*domain.NewsletterSubscriber, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return uc.NewsletterRepo.ListSubscribers(ctx)
}
