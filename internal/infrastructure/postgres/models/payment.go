package models

import (
	"time"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
)

type PaymentModel struct {
	ID          string                 `gorm:"primaryKey;type:uuid"`
	OrderID     string                 `gorm:"type:uuid;not null;index:idx_payments_order"`
	Amount      float64                `gorm:"not null"`
	Currency    string                 `gorm:"not null"`
	Provider    domain.PaymentProvider `gorm:"not null"`
	Reference   string                 `gorm:"uniqueIndex:idx_payments_reference"`
	Status      domain.PaymentStatus   `gorm:"index:idx_payments_status"`
	Method      string
	ReceiptURL  string
	ConfirmedAt *time.Time
	Metadata    string `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PaymentModel) TableName() string {
	return "payments"
}

// PaymentReceiverModel holds the full settlement number. It stays in this
// table; only MaskedNumber crosses the repository boundary into responses.
type PaymentReceiverModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	Provider     string `gorm:"index:idx_receivers_provider"`
	AccountName  string `gorm:"not null"`
	Number       string `gorm:"not null"`
	MaskedNumber string `gorm:"not null"`
	Active       bool   `gorm:"index:idx_receivers_active"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PaymentReceiverModel) TableName() string {
	return "payment_receivers"
}
