package usecase

import (
	"fmt"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	paymentdto "github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/usecase/dto/payment"
)

// buildInstructions renders the provider-specific settlement steps. Only the
// masked receiver number ever appears here.
func buildInstructions(provider domain.PaymentProvider, currency string, amount float64, maskedReceiver, reference string) paymentdto.Instructions {
	steps := []string{
		fmt.Sprintf("Dial %s on your %s line", provider.DialCode(), provider.DisplayName()),
		`Select "Send Money"`,
		fmt.Sprintf("Send exactly %s %.2f to %s", currency, amount, maskedReceiver),
		fmt.Sprintf("Enter %s as the payment reference", reference),
	}

	return paymentdto.Instructions{
		Message: fmt.Sprintf("Send %s %.2f to %s (%s) and quote reference %s to complete your order.",
			currency, amount, maskedReceiver, provider.DisplayName(), reference),
		Steps:     steps,
		Amount:    amount,
		Receiver:  maskedReceiver,
		Reference: reference,
	}
}
