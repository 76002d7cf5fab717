package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "commerce_service",
			Subsystem: "kafka_consumer",
			Name:      "checkouts_processed_total",
			Help:      "Total number of successfully processed checkout messages",
		},
	)

	checkoutsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "commerce_service",
			Subsystem: "kafka_consumer",
			Name:      "checkouts_failed_total",
			Help:      "Total number of failed checkout processing attempts",
		},
	)

	checkoutsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "commerce_service",
			Subsystem: "kafka_consumer",
			Name:      "checkouts_dlq_total",
			Help:      "Total number of checkout messages written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "commerce_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	checkoutProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "commerce_service",
			Subsystem: "kafka_consumer",
			Name:      "checkout_processing_duration_seconds",
			Help:      "Histogram of checkout processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

var (
	ordersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "commerce_service",
			Subsystem: "http",
			Name:      "orders_placed_total",
			Help:      "Total number of orders placed through the HTTP API",
		},
	)

	ordersFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "commerce_service",
			Subsystem: "http",
			Name:      "orders_failed_total",
			Help:      "Total number of order placements that failed with a server error",
		},
	)

	ordersDuplicateDocument = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "commerce_service",
			Subsystem: "http",
			Name:      "orders_duplicate_document_total",
			Help:      "Total number of order placements rejected for an already registered document",
		},
	)

	shipmentTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "commerce_service",
			Subsystem: "http",
			Name:      "shipment_transitions_total",
			Help:      "Total number of shipment status transitions by target status",
		},
		[]string{"status"},
	)

	shipmentsConfirmed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "commerce_service",
			Subsystem: "http",
			Name:      "shipments_confirmed_total",
			Help:      "Total number of shipments confirmed by customers",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutsProcessed,
		checkoutsFailed,
		checkoutsDLQ,
		commitErrors,
		checkoutProcessingDuration,

		ordersPlaced,
		ordersFailed,
		ordersDuplicateDocument,
		shipmentTransitions,
		shipmentsConfirmed,
	)
}
