package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
)

type memOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *memOrderRepo) CreateOrder(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *order
	r.orders[order.ID] = &clone
	return nil
}

func (r *memOrderRepo) GetOrderByID(_ context.Context, orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *order
	return &clone, nil
}

func (r *memOrderRepo) UpdateOrderStatus(_ context.Context, orderID string, newStatus domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.Status = newStatus
	return nil
}

func (r *memOrderRepo) SetPaymentDetails(_ context.Context, orderID, provider, reference string) error {
	return nil
}

func (r *memOrderRepo) GetOrdersByUserID(_ context.Context, userID string, page, limit int64, sortBy, sortOrder string) ([]*domain.Order, int64, error) {
	return nil, 0, nil
}

func (r *memOrderRepo) GetAllOrders(_ context.Context, filters *domain.OrderFilters, page, limit int32) ([]*domain.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Order
	for _, order := range r.orders {
		if filters != nil && filters.UserID != "" && order.UserID != filters.UserID {
			continue
		}
		if filters != nil && len(filters.Statuses) > 0 {
			match := false
			for _, s := range filters.Statuses {
				if order.Status == s {
					match = true
				}
			}
			if !match {
				continue
			}
		}
		clone := *order
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *memOrderRepo) FindStaleOrders(_ context.Context, olderThan time.Time) ([]*domain.Order, error) {
	return nil, nil
}

func (r *memOrderRepo) SumTotalsByStatus(_ context.Context, statuses []domain.OrderStatus) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sum := 0.0
	for _, order := range r.orders {
		for _, s := range statuses {
			if order.Status == s {
				sum += order.TotalAmount
			}
		}
	}
	return sum, nil
}

func (r *memOrderRepo) CountByStatus(_ context.Context) (map[domain.OrderStatus]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[domain.OrderStatus]int64)
	for _, order := range r.orders {
		counts[order.Status]++
	}
	return counts, nil
}

type memProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*domain.Profile
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: make(map[string]*domain.Profile)}
}

func (r *memProfileRepo) GetProfileByID(_ context.Context, profileID string) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[profileID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	clone := *profile
	return &clone, nil
}

func (r *memProfileRepo) ListProfiles(_ context.Context, page, limit int32) ([]*domain.Profile, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Profile
	for _, profile := range r.profiles {
		clone := *profile
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *memProfileRepo) UpdateRole(_ context.Context, profileID string, role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[profileID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	profile.Role = role
	return nil
}

func (r *memProfileRepo) CountProfiles(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.profiles)), nil
}

type memReviewRepo struct {
	mu      sync.Mutex
	reviews map[string]*domain.Review
}

func newMemReviewRepo() *memReviewRepo {
	return &memReviewRepo{reviews: make(map[string]*domain.Review)}
}

func (r *memReviewRepo) CreateReview(_ context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *memReviewRepo) GetReviewByID(_ context.Context, reviewID string) (*domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	review, ok := r.reviews[reviewID]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	clone := *review
	return &clone, nil
}

func (r *memReviewRepo) ListReviewsByProduct(_ context.Context, productID string, approvedOnly bool) ([]*domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Review
	for _, review := range r.reviews {
		if review.ProductID != productID {
			continue
		}
		if approvedOnly && !review.IsApproved {
			continue
		}
		clone := *review
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memReviewRepo) ListPendingReviews(_ context.Context) ([]*domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Review
	for _, review := range r.reviews {
		if !review.IsApproved {
			clone := *review
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memReviewRepo) UpdateModeration(_ context.Context, reviewID string, approved, featured bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	review, ok := r.reviews[reviewID]
	if !ok {
		return domain.ErrReviewNotFound
	}
	review.IsApproved = approved
	review.FeaturedTestimonial = featured
	return nil
}

type memChatRepo struct {
	mu       sync.Mutex
	chats    map[string]*domain.Chat
	messages map[string][]*domain.ChatMessage
}

func newMemChatRepo() *memChatRepo {
	return &memChatRepo{
		chats:    make(map[string]*domain.Chat),
		messages: make(map[string][]*domain.ChatMessage),
	}
}

func (r *memChatRepo) CreateChat(_ context.Context, chat *domain.Chat) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *chat
	r.chats[chat.ID] = &clone
	return nil
}

func (r *memChatRepo) GetChatByID(_ context.Context, chatID string) (*domain.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	chat, ok := r.chats[chatID]
	if !ok {
		return nil, domain.ErrChatNotFound
	}
	clone := *chat
	return &clone, nil
}

func (r *memChatRepo) GetOpenChatByUserID(_ context.Context, userID string) (*domain.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, chat := range r.chats {
		if chat.UserID == userID && chat.IsOpen {
			clone := *chat
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memChatRepo) ListChats(_ context.Context, openOnly bool) ([]*domain.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Chat
	for _, chat := range r.chats {
		if openOnly && !chat.IsOpen {
			continue
		}
		clone := *chat
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memChatRepo) CloseChat(_ context.Context, chatID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	chat, ok := r.chats[chatID]
	if !ok {
		return domain.ErrChatNotFound
	}
	chat.IsOpen = false
	return nil
}

func (r *memChatRepo) AddMessage(_ context.Context, message *domain.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *message
	r.messages[message.ChatID] = append(r.messages[message.ChatID], &clone)
	return nil
}

func (r *memChatRepo) ListMessages(_ context.Context, chatID string) ([]*domain.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*domain.ChatMessage(nil), r.messages[chatID]...), nil
}

type memNewsletterRepo struct {
	mu          sync.Mutex
	subscribers map[string]*domain.NewsletterSubscriber
}

func newMemNewsletterRepo() *memNewsletterRepo {
	return &memNewsletterRepo{subscribers: make(map[string]*domain.NewsletterSubscriber)}
}

func (r *memNewsletterRepo) Subscribe(_ context.Context, subscriber *domain.NewsletterSubscriber) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.subscribers {
		if existing.Email == subscriber.Email {
			return nil
		}
	}
	clone := *subscriber
	r.subscribers[subscriber.ID] = &clone
	return nil
}

func (r *memNewsletterRepo) ListSubscribers(_ context.Context) ([]*domain.NewsletterSubscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.NewsletterSubscriber
	for _, subscriber := range r.subscribers {
		clone := *subscriber
		out = append(out, &clone)
	}
	return out, nil
}

type memNotificationRepo struct {
	mu            sync.Mutex
	notifications map[string]*domain.Notification
}

func newMemNotificationRepo() *memNotificationRepo {
	return &memNotificationRepo{notifications: make(map[string]*domain.Notification)}
}

func (r *memNotificationRepo) CreateNotification(_ context.Context, notification *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *notification
	r.notifications[notification.ID] = &clone
	return nil
}

func (r *memNotificationRepo) ListByUser(_ context.Context, userID string, unreadOnly bool) ([]*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Notification
	for _, notification := range r.notifications {
		if notification.UserID != userID {
			continue
		}
		if unreadOnly && notification.Read {
			continue
		}
		clone := *notification
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memNotificationRepo) MarkRead(_ context.Context, notificationID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	notification, ok := r.notifications[notificationID]
	if !ok || notification.UserID != userID {
		return domain.ErrNotificationNotFound
	}
	notification.Read = true
	return nil
}

type memPublisher struct {
	mu       sync.Mutex
	messages map[string][]domain.Message
}

func newMemPublisher() *memPublisher {
	return &memPublisher{messages: make(map[string][]domain.Message)}
}

func (p *memPublisher) Publish(topic string, msgs ...domain.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages[topic] = append(p.messages[topic], msgs...)
	return nil
}
