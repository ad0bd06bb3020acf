package paymentdto

// Instructions is the human-readable settlement guide returned to the
// customer. Receiver always carries the masked number.
type Instructions struct {
	Message   string   `json:"message"`
	Steps     []string `json:"steps"`
	Amount    float64  `json:"amount"`
	Receiver  string   `json:"receiver"`
	Reference string   `json:"reference"`
}

type InitiatePaymentOutput struct {
	PaymentID    string       `json:"payment_id"`
	Reference    string       `json:"payment_reference"`
	Instructions Instructions `json:"instructions"`
}
