package kafka

import (
	"encoding/json"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
)

const (
	TopicOrders        = "order-events"
	TopicPayments      = "payment-events"
	TopicChat          = "chat-events"
	TopicNotifications = "notification-events"
)

type OrderEvent struct {
	OrderID  string  `json:"order_id"`
	UserID   string  `json:"user_id,omitempty"`
	Status   string  `json:"status"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// PaymentEvent mirrors what the storefront needs to render a payment update.
// Receiver is always the masked number.
type PaymentEvent struct {
	PaymentID string  `json:"payment_id"`
	OrderID   string  `json:"order_id"`
	Provider  string  `json:"provider"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference"`
	Receiver  string  `json:"receiver,omitempty"`
}

type ChatEvent struct {
	ChatID    string `json:"chat_id"`
	MessageID string `json:"message_id"`
	Sender    string `json:"sender"`
	Body      string `json:"body"`
}

type NotificationEvent struct {
	UserID  string `json:"user_id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func PublishOrderEvent(p domain.PublisherPort, event OrderEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Publish(TopicOrders, domain.Message{Key: []byte(event.OrderID), Value: v})
}

func PublishPaymentEvent(p domain.PublisherPort, event PaymentEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Publish(TopicPayments, domain.Message{Key: []byte(event.OrderID), Value: v})
}

func PublishChatEvent(p domain.PublisherPort, event ChatEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Publish(TopicChat, domain.Message{Key: []byte(event.ChatID), Value: v})
}

func PublishNotificationEvent(p domain.PublisherPort, event NotificationEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Publish(TopicNotifications, domain.Message{Key: []byte(event.UserID), Value: v})
}
