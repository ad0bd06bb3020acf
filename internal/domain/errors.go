package domain

import "errors"

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrInvalidUnitPrice     = errors.New("unit price must be positive")
	ErrInvalidAddress       = errors.New("shipping address requires name, address and phone")
	ErrInvalidTransition    = errors.New("illegal status transition")
	ErrOrderNotFound        = errors.New("order not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrReceiverNotFound     = errors.New("no active payment receiver for provider")
	ErrPaymentInFlight      = errors.New("an active payment already exists for this order")
	ErrAmountMismatch       = errors.New("amount does not match order total")
	ErrUnknownProvider      = errors.New("unknown payment provider")
	ErrUnauthorized         = errors.New("authentication required")
	ErrForbidden            = errors.New("operation not allowed for this actor")
	ErrProductNotFound      = errors.New("product not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrReviewNotFound       = errors.New("review not found")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrChatClosed           = errors.New("chat is closed")
	ErrChatNotFound         = errors.New("chat not found")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrNotificationNotFound = errors.New("notification not found")
)
