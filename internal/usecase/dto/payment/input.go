package paymentdto

import (
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
)

type InitiatePaymentInput struct {
	Session  domain.Session
	OrderID  string
	Amount   float64
	Phone    string
	Provider string
}
