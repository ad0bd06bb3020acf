package orderdto

import (
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
)

// CartItem is one line of the client's cart snapshot. UnitPrice is the price
// captured when the line entered the cart; order creation freezes it as-is.
type CartItem struct {
	ProductID string  `json:"product_id"`
	VariantID string  `json:"variant_id,omitempty"`
	Quantity  int32   `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type CreateOrderInput struct {
	Session         domain.Session
	Items           []CartItem
	Currency        string
	ShippingAddress domain.Address
	BillingAddress  *domain.Address
	Notes           string
}

type ListOrdersInput struct {
	UserID    string
	Page      int64
	Limit     int64
	SortBy    string
	SortOrder string
}

type AdminListOrdersInput struct {
	Filters domain.OrderFilters
	Page    int32
	Limit   int32
}
