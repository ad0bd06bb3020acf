package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StoreMetrics bundles every order and payment metric the service exports.
type StoreMetrics struct {
	OrdersCreatedTotal       *prometheus.CounterVec
	OrdersCreatedAmountTotal *prometheus.CounterVec
	OrderTransitionsTotal    *prometheus.CounterVec
	OrderCreateDuration      prometheus.Histogram

	PaymentsInitiatedTotal       *prometheus.CounterVec
	PaymentInitiationErrorsTotal *prometheus.CounterVec
	PaymentsResolvedTotal        *prometheus.CounterVec

	NotificationsCreatedTotal prometheus.Counter
	OrderErrorsTotal          *prometheus.CounterVec
}

func NewStoreMetrics() *StoreMetrics {
	return &StoreMetrics{
		OrdersCreatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_orders_created_total",
				Help: "Orders created at checkout",
			},
			[]string{"currency"},
		),
		OrdersCreatedAmountTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_orders_created_amount_total",
				Help: "Total amount of created orders",
			},
			[]string{"currency"},
		),
		OrderTransitionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_order_transitions_total",
				Help: "Order status transitions by (from, to)",
			},
			[]string{"from", "to"},
		),
		OrderCreateDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "storefront_order_create_duration_seconds",
				Help:    "Time to create an order with its items",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
		),
		PaymentsInitiatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_payments_initiated_total",
				Help: "Payment initiations by provider",
			},
			[]string{"provider"},
		),
		PaymentInitiationErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_payment_initiation_errors_total",
				Help: "Failed payment initiations by provider and reason",
			},
			[]string{"provider", "reason"},
		),
		PaymentsResolvedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_payments_resolved_total",
				Help: "Payments driven to a terminal status",
			},
			[]string{"provider", "status"},
		),
		NotificationsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "storefront_notifications_created_total",
				Help: "Notification rows written",
			},
		),
		OrderErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_order_errors_total",
				Help: "Order operation failures by operation",
			},
			[]string{"operation"},
		),
	}
}
