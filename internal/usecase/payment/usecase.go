package usecase

import (
	"context"
	"log/slog"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/kafka"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/metrics"
	paymentdto "github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/usecase/dto/payment"
)

type PaymentUsecase interface {
	Initiate(ctx context.Context, input *paymentdto.InitiatePaymentInput) (*paymentdto.InitiatePaymentOutput, error)
	Confirm(ctx context.Context, paymentID string, actor domain.Actor) error
	Fail(ctx context.Context, paymentID string, actor domain.Actor) error

	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	GetPaymentsByOrderID(ctx context.Context, orderID string) ([]*domain.Payment, error)
	ListReceivers(ctx context.Context, actor domain.Actor) ([]*domain.PaymentReceiver, error)
	SaveReceiver(ctx context.Context, receiver *domain.PaymentReceiver, actor domain.Actor) error
}

type DefaultPaymentUsecase struct {
	PaymentRepo      domain.PaymentRepository
	ReceiverRepo     domain.PaymentReceiverRepository
	OrderRepo        domain.OrderRepository
	NotificationRepo domain.NotificationRepository
	TxManager        domain.TxManager
	Publisher        domain.PublisherPort
	Metrics          *metrics.StoreMetrics
}

func NewDefaultPaymentUsecase(
	paymentRepo domain.PaymentRepository,
	receiverRepo domain.PaymentReceiverRepository,
	orderRepo domain.OrderRepository,
	notificationRepo domain.NotificationRepository,
	txManager domain.TxManager,
	pub domain.PublisherPort,
	storeMetrics *metrics.StoreMetrics) *DefaultPaymentUsecase {

	return &DefaultPaymentUsecase{
		PaymentRepo:      paymentRepo,
		ReceiverRepo:     receiverRepo,
		OrderRepo:        orderRepo,
		NotificationRepo: notificationRepo,
		TxManager:        txManager,
		Publisher:        pub,
		Metrics:          storeMetrics,
	}
}

// publishNotification mirrors a stored notification onto the event stream so
// connected clients can render it without polling.
func (uc *DefaultPaymentUsecase) publishNotification(notification *domain.Notification) {
	event := kafka.NotificationEvent{
		UserID:  notification.UserID,
		Title:   notification.Title,
		Message: notification.Message,
		Type:    notification.Type,
	}
	if err := kafka.PublishNotificationEvent(uc.Publisher, event); err != nil {
		slog.Error("failed to publish NotificationEvent", "user_id", notification.UserID, "error", err.Error())
	}
}
