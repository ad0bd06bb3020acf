package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	paymentdto "github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/usecase/dto/payment"
)

type paymentTestEnv struct {
	uc        *DefaultPaymentUsecase
	orders    *fakeOrderRepo
	payments  *fakePaymentRepo
	receivers *fakeReceiverRepo
}

func newPaymentTestEnv() *paymentTestEnv {
	orders := newFakeOrderRepo()
	payments := newFakePaymentRepo()
	receivers := newFakeReceiverRepo()
	uc := NewDefaultPaymentUsecase(
		payments,
		receivers,
		orders,
		&fakeNotificationRepo{},
		snapshotTxManager{orders: orders, payments: payments},
		newFakePublisher(),
		nil,
	)
	return &paymentTestEnv{uc: uc, orders: orders, payments: payments, receivers: receivers}
}

func (env *paymentTestEnv) seedOrder(status domain.OrderStatus) {
	_ = env.orders.CreateOrder(context.Background(), &domain.Order{
		ID:          "11112222-3333-4444-5555-666677778888",
		UserID:      "user-1",
		TotalAmount: 150.00,
		Currency:    "GHS",
		Status:      status,
	})
}

func (env *paymentTestEnv) seedReceiver() {
	_ = env.receivers.SaveReceiver(context.Background(), &domain.PaymentReceiver{
		ID:           "recv-1",
		Provider:     domain.ProviderMTNMoMo,
		AccountName:  "Aloomia Ltd",
		Number:       "0241234567",
		MaskedNumber: "024***4567",
		Active:       true,
	})
}

func validInitiateInput() *paymentdto.InitiatePaymentInput {
	return &paymentdto.InitiatePaymentInput{
		Session:  domain.Session{UserID: "user-1", Role: domain.RoleCustomer},
		OrderID:  "11112222-3333-4444-5555-666677778888",
		Amount:   150.00,
		Phone:    "0209876543",
		Provider: "mtn_momo",
	}
}

var referencePattern = regexp.MustCompile(`^PAY-\d+-[0-9a-f]{8}$`)

func TestInitiatePayment(t *testing.T) {
	env := newPaymentTestEnv()
	env.seedOrder(domain.OrderPending)
	env.seedReceiver()

	output, err := env.uc.Initiate(context.Background(), validInitiateInput())
	if err != nil {
		t.Fatalf("Initiate: %v", err)
	}

	if !referencePattern.MatchString(output.Reference) {
		t.Errorf("reference %q does not match PAY-<millis>-<order prefix>", output.Reference)
	}
	if !strings.HasSuffix(output.Reference, "11112222") {
		t.Errorf("reference %q should end with the first 8 chars of the order id", output.Reference)
	}

	// Instructions carry only the masked receiver.
	if output.Instructions.Receiver != "024***4567" {
		t.Errorf("instructions receiver = %q", output.Instructions.Receiver)
	}
	if strings.Contains(output.Instructions.Message, "0241234567") {
		t.Error("instructions must not contain the raw settlement number")
	}
	for _, step := range output.Instructions.Steps {
		if strings.Contains(step, "0241234567") {
			t.Errorf("step %q leaks the raw settlement number", step)
		}
	}
	if output.Instructions.Amount != 150.00 {
		t.Errorf("instructions amount = %.2f", output.Instructions.Amount)
	}

	// Order moved to payment_pending and was stamped.
	order, _ := env.orders.GetOrderByID(context.Background(), "11112222-3333-4444-5555-666677778888")
	if order.Status != domain.OrderPaymentPending {
		t.Errorf("order status = %s, want payment_pending", order.Status)
	}
	if order.PaymentProvider != "mtn_momo" || order.PaymentReference != output.Reference {
		t.Errorf("order payment details = %q/%q", order.PaymentProvider, order.PaymentReference)
	}

	// Payment row exists, pending, with masked metadata only.
	payment, err := env.payments.GetPaymentByID(context.Background(), output.PaymentID)
	if err != nil {
		t.Fatalf("payment not persisted: %v", err)
	}
	if payment.Status != domain.PaymentPending {
		t.Errorf("payment status = %s, want pending", payment.Status)
	}
	if payment.Amount != 150.00 {
		t.Errorf("payment amount = %.2f, want the order total", payment.Amount)
	}
	if payment.Metadata.MaskedReceiver != "024***4567" {
		t.Errorf("metadata receiver = %q", payment.Metadata.MaskedReceiver)
	}
}

func TestInitiatePaymentRequiresAuth(t *testing.T) {
	env := newPaymentTestEnv()
	input := validInitiateInput()
	input.Session = domain.Session{}

	if _, err := env.uc.Initiate(context.Background(), input); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}

func TestInitiatePaymentUnknownProvider(t *testing.T) {
	env := newPaymentTestEnv()
	env.seedOrder(domain.OrderPending)

	input := validInitiateInput()
	input.Provider = "vodafone_cash"

	if _, err := env.uc.Initiate(context.Background(), input); !errors.Is(err, domain.ErrUnknownProvider) {
		t.Errorf("err = %v, want ErrUnknownProvider", err)
	}
}

func TestInitiatePaymentForbiddenForOtherUser(t *testing.T) {
	env := newPaymentTestEnv()
	env.seedOrder(domain.OrderPending)
	env.seedReceiver()

	input := validInitiateInput()
	input.Session = domain.Session{UserID: "user-2", Role: domain.RoleCustomer}

	if _, err := env.uc.Initiate(context.Background(), input); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
}

func TestInitiatePaymentAmountMismatch(t *testing.T) {
	env := newPaymentTestEnv()
	env.seedOrder(domain.OrderPending)
	env.seedReceiver()

	input := validInitiateInput()
	input.Amount = 149.00

	if _, err := env.uc.Initiate(context.Background(), input); !errors.Is(err, domain.ErrAmountMismatch) {
		t.Errorf("err = %v, want ErrAmountMismatch", err)
	}

	// Nothing was written.
	order, _ := env.orders.GetOrderByID(context.Background(), input.OrderID)
	if order.Status != domain.OrderPending {
		t.Errorf("order status = %s, want pending", order.Status)
	}
}

func TestInitiatePaymentToleratesFloatNoise(t *testing.T) {
	env := newPaymentTestEnv()
	env.seedOrder(domain.OrderPending)
	env.seedReceiver()

	input := validInitiateInput()
	input.Amount = 150.001

	if _, err := env.uc.Initiate(context.Background(), input); err != nil {
		t.Errorf("sub-tolerance difference should pass, got %v", err)
	}
}

func TestInitiatePaymentRejectsWrongOrderState(t *testing.T) {
	for _, status := range []domain.OrderStatus{
		domain.OrderProcessing, domain.OrderShipped, domain.OrderDelivered, domain.OrderCancelled,
	} {
		env := newPaymentTestEnv()
		env.seedOrder(status)
		env.seedReceiver()

		_, err := env.uc.Initiate(context.Background(), validInitiateInput())
		if !errors.Is(err, domain.ErrInvalidTransition) {
			t.Errorf("status %s: err = %v, want ErrInvalidTransition", status, err)
		}
	}
}

func TestInitiatePaymentRetryAfterFailure(t *testing.T) {
	env := newPaymentTestEnv()
	env.seedOrder(domain.OrderPaymentFailed)
	env.seedReceiver()

	if _, err := env.uc.Initiate(context.Background(), validInitiateInput()); err != nil {
		t.Errorf("retry from payment_failed should succeed, got %v", err)
	}
}

func TestInitiatePaymentIdempotencyGuard(t *testing.T) {
	env := newPaymentTestEnv()
	env.seedOrder(domain.OrderPending)
	env.seedReceiver()

	first, err := env.uc.Initiate(context.Background(), validInitiateInput())
	if err != nil {
		t.Fatalf("first Initiate: %v", err)
	}

	// The order is now payment_pending with an active payment; a second
	// attempt must not create another one.
	_, err = env.uc.Initiate(context.Background(), validInitiateInput())
	if err == nil {
		t.Fatal("second Initiate should fail")
	}

	payments, _ := env.payments.GetPaymentsByOrderID(context.Background(), validInitiateInput().OrderID)
	if len(payments) != 1 {
		t.Errorf("payments = %d, want 1", len(payments))
	}
	if payments[0].Reference != first.Reference {
		t.Errorf("surviving payment reference = %q, want %q", payments[0].Reference, first.Reference)
	}
}

func TestInitiatePaymentNoReceiverConfigured(t *testing.T) {
	env := newPaymentTestEnv()
	env.seedOrder(domain.OrderPending)

	_, err := env.uc.Initiate(context.Background(), validInitiateInput())
	if !errors.Is(err, domain.ErrReceiverNotFound) {
		t.Fatalf("err = %v, want ErrReceiverNotFound", err)
	}

	// The failed attempt must not leave partial state behind.
	order, _ := env.orders.GetOrderByID(context.Background(), validInitiateInput().OrderID)
	if order.Status != domain.OrderPending {
		t.Errorf("order status = %s, want pending", order.Status)
	}
	payments, _ := env.payments.GetPaymentsByOrderID(context.Background(), validInitiateInput().OrderID)
	if len(payments) != 0 {
		t.Errorf("payments = %d, want 0", len(payments))
	}
}

func TestInitiatePaymentRollsBackOnPersistenceFailure(t *testing.T) {
	env := newPaymentTestEnv()
	env.seedOrder(domain.OrderPending)
	env.seedReceiver()
	env.orders.failSetPaymentDetails = errors.New("column payment_reference does not exist")

	_, err := env.uc.Initiate(context.Background(), validInitiateInput())
	if err == nil {
		t.Fatal("Initiate should surface the persistence failure")
	}

	order, _ := env.orders.GetOrderByID(context.Background(), validInitiateInput().OrderID)
	if order.Status != domain.OrderPending {
		t.Errorf("order status = %s, want pending after rollback", order.Status)
	}
	payments, _ := env.payments.GetPaymentsByOrderID(context.Background(), validInitiateInput().OrderID)
	if len(payments) != 0 {
		t.Errorf("payments = %d, want 0 after rollback", len(payments))
	}
}

func TestInitiatePaymentMasksWhenReceiverHasNoMask(t *testing.T) {
	env := newPaymentTestEnv()
	env.seedOrder(domain.OrderPending)
	_ = env.receivers.SaveReceiver(context.Background(), &domain.PaymentReceiver{
		ID:          "recv-2",
		Provider:    domain.ProviderMTNMoMo,
		AccountName: "Aloomia Ltd",
		Number:      "0551112233",
		Active:      true,
	})

	output, err := env.uc.Initiate(context.Background(), validInitiateInput())
	if err != nil {
		t.Fatalf("Initiate: %v", err)
	}
	if output.Instructions.Receiver != "055***2233" {
		t.Errorf("receiver = %q, want derived mask", output.Instructions.Receiver)
	}
}
