package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesHandled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_handled_total",
			Help: "Committed Kafka messages by outcome",
		},
		[]string{"topic", "outcome"}, // handled|invalid|dropped
	)
	KafkaMessagesPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_published_total",
			Help: "Number of events published to Kafka",
		},
		[]string{"topic", "result"}, // ok|error
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_operations_total",
			Help: "Catalog cache operations",
		},
		[]string{"op"}, // hit|miss|expired|put|put_stale|stale|invalidate
	)
	CacheAge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_cache_stored_at_seconds",
			Help: "Unix time of the last catalog cache fill",
		},
	)
)

var (
	CatalogFetchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_store_fetch_duration_seconds",
			Help:    "Duration of catalog store queries",
			Buckets: prometheus.DefBuckets,
		},
	)
	CatalogRowsDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_rows_dropped_total",
			Help: "Store rows dropped by the catalog transformer",
		},
		[]string{"reason"},
	)
	CatalogStoreErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_store_errors_total",
			Help: "Failed catalog store queries",
		},
	)
)

var (
	AuthAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_login_attempts_total",
			Help: "Admin login attempts by outcome",
		},
		[]string{"result"}, // ok|invalid|locked
	)
	ImageUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_uploads_total",
			Help: "Image uploads by outcome",
		},
		[]string{"result"}, // ok|rejected|error
	)
	OrdersSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_submitted_total",
			Help: "Submitted orders by payment method",
		},
		[]string{"payment"},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в глобальном реестре; повторный вызов ничего не делает.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesHandled, KafkaMessagesPublished,
			CacheOps, CacheAge,
			CatalogFetchDuration, CatalogRowsDropped, CatalogStoreErrors,
			AuthAttempts, ImageUploads, OrdersSubmitted,
		)
	})
}
