package domain

import (
	"strings"
	"time"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentCancelled  PaymentStatus = "cancelled"
	PaymentRefunded   PaymentStatus = "refunded"
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:    {PaymentProcessing, PaymentCompleted, PaymentFailed, PaymentCancelled},
	PaymentProcessing: {PaymentCompleted, PaymentFailed, PaymentCancelled},
	PaymentCompleted:  {PaymentRefunded},
}

// Active reports whether the payment still occupies the order's single
// in-flight settlement slot. At most one active payment may exist per order.
func (s PaymentStatus) Active() bool {
	return s == PaymentPending || s == PaymentProcessing
}

func PaymentCanTransition(from, to PaymentStatus) bool {
	for _, next := range paymentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type PaymentProvider string

const (
	ProviderMTNMoMo     PaymentProvider = "mtn_momo"
	ProviderTelecelCash PaymentProvider = "telecel_cash"
)

func (p PaymentProvider) Valid() bool {
	return p == ProviderMTNMoMo || p == ProviderTelecelCash
}

// DialCode is the USSD short code the customer dials to start a transfer.
func (p PaymentProvider) DialCode() string {
	switch p {
	case ProviderMTNMoMo:
		return "*170#"
	case ProviderTelecelCash:
		return "*110#"
	}
	return ""
}

func (p PaymentProvider) DisplayName() string {
	switch p {
	case ProviderMTNMoMo:
		return "MTN Mobile Money"
	case ProviderTelecelCash:
		return "Telecel Cash"
	}
	return string(p)
}

// PaymentMetadata is the context captured at initiation time. It carries only
// the masked receiver number; the raw settlement number never leaves the
// receiver repository.
type PaymentMetadata struct {
	CustomerPhone  string    `json:"customer_phone"`
	MaskedReceiver string    `json:"masked_receiver"`
	InitiatedAt    time.Time `json:"initiated_at"`
}

// Payment is one settlement attempt against an order. Reference is the
// human-quotable string the customer includes when sending money.
type Payment struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	Amount      float64         `json:"amount"`
	Currency    string          `json:"currency"`
	Provider    PaymentProvider `json:"provider"`
	Reference   string          `json:"reference"`
	Status      PaymentStatus   `json:"status"`
	Method      string          `json:"method"`
	ReceiptURL  string          `json:"receipt_url,omitempty"`
	ConfirmedAt *time.Time      `json:"confirmed_at,omitempty"`
	Metadata    PaymentMetadata `json:"metadata"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// PaymentReceiver is the operator-configured settlement account for a mobile
// money provider. Number is server-only and excluded from serialization.
type PaymentReceiver struct {
	ID           string          `json:"id"`
	Provider     PaymentProvider `json:"provider"`
	AccountName  string          `json:"account_name"`
	Number       string          `json:"-"`
	MaskedNumber string          `json:"masked_number"`
	Active       bool            `json:"active"`
}

// MaskNumber hides the middle of a settlement number, keeping the first three
// and last four digits: 0241234567 -> 024***4567.
func MaskNumber(number string) string {
	if len(number) < 8 {
		return strings.Repeat("*", len(number))
	}
	return number[:3] + "***" + number[len(number)-4:]
}
