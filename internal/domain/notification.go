package domain

import "time"

// Notification is a side-effect artifact informing a user about an order or
// payment event. It is best-effort and never an order of record.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	NotificationPayment = "payment"
	NotificationOrder   = "order"
)
