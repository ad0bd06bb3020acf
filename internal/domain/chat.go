package domain

import "time"

type ChatSender string

const (
	SenderUser  ChatSender = "user"
	SenderAdmin ChatSender = "admin"
	SenderBot   ChatSender = "bot"
)

type Chat struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	IsOpen    bool          `json:"is_open"`
	Messages  []ChatMessage `json:"messages,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type ChatMessage struct {
	ID        string     `json:"id"`
	ChatID    string     `json:"chat_id"`
	Sender    ChatSender `json:"sender"`
	Body      string     `json:"body"`
	CreatedAt time.Time  `json:"created_at"`
}
