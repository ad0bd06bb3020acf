package usecase

import (
	"time"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
)

func (uc *DefaultOrderUsecase) recordOrderCreated(order *domain.Order, elapsed time.Duration) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.OrdersCreatedTotal.WithLabelValues(order.Currency).Inc()
	uc.Metrics.OrdersCreatedAmountTotal.WithLabelValues(order.Currency).Add(order.TotalAmount)
	uc.Metrics.OrderCreateDuration.Observe(elapsed.Seconds())
}

func (uc *DefaultOrderUsecase) recordOrderTransition(from, to domain.OrderStatus) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.OrderTransitionsTotal.WithLabelValues(string(from), string(to)).Inc()
}

func (uc *DefaultOrderUsecase) recordOrderError(operation string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.OrderErrorsTotal.WithLabelValues(operation).Inc()
}
