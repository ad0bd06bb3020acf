package domain

import "time"

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderPaymentPending OrderStatus = "payment_pending"
	OrderProcessing     OrderStatus = "processing"
	OrderShipped        OrderStatus = "shipped"
	OrderDelivered      OrderStatus = "delivered"
	OrderPaymentFailed  OrderStatus = "payment_failed"
	OrderCancelled      OrderStatus = "cancelled"
	OrderRefunded       OrderStatus = "refunded"
)

// orderTransitions is the authoritative transition table. payment_failed loops
// back to payment_pending when the customer retries with a new payment attempt.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:        {OrderPaymentPending},
	OrderPaymentPending: {OrderProcessing, OrderPaymentFailed},
	OrderProcessing:     {OrderShipped, OrderCancelled},
	OrderShipped:        {OrderDelivered},
	OrderPaymentFailed:  {OrderPaymentPending},
}

func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderDelivered, OrderCancelled, OrderRefunded:
		return true
	}
	return false
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPaymentPending, OrderProcessing, OrderShipped,
		OrderDelivered, OrderPaymentFailed, OrderCancelled, OrderRefunded:
		return true
	}
	return false
}

// CanTransition reports whether actor may move an order from one status to the
// next. Beyond the table, any non-terminal order may be cancelled or refunded,
// but only by an administrative or system actor.
func CanTransition(from, to OrderStatus, actor Actor) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	if (to == OrderCancelled || to == OrderRefunded) && !from.Terminal() {
		return actor.Role == RoleAdmin || actor.Role == RoleSystem
	}
	return false
}

// Address is a structured shipping or billing destination. Name, Line and
// Phone are required for shipping.
type Address struct {
	Name    string `json:"name"`
	Line    string `json:"address"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes,omitempty"`
}

func (a Address) Complete() bool {
	return a.Name != "" && a.Line != "" && a.Phone != ""
}

type Order struct {
	ID               string      `json:"id"`
	UserID           string      `json:"user_id,omitempty"`
	TotalAmount      float64     `json:"total_amount"`
	Currency         string      `json:"currency"`
	Status           OrderStatus `json:"status"`
	ShippingAddress  Address     `json:"shipping_address"`
	BillingAddress   *Address    `json:"billing_address,omitempty"`
	Notes            string      `json:"notes,omitempty"`
	PaymentProvider  string      `json:"payment_provider,omitempty"`
	PaymentReference string      `json:"payment_reference,omitempty"`
	Items            []OrderItem `json:"items"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// OrderItem is one product line of an order. UnitPrice is the price captured
// at order creation and is never re-read from the catalog.
type OrderItem struct {
	ID         string  `json:"id"`
	OrderID    string  `json:"order_id"`
	ProductID  string  `json:"product_id"`
	VariantID  string  `json:"variant_id,omitempty"`
	Quantity   int32   `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

type OrderFilters struct {
	OrderID   string
	UserID    string
	Statuses  []OrderStatus
	MinTotal  float64
	MaxTotal  float64
	DateFrom  time.Time
	DateTo    time.Time
	Reference string
}
