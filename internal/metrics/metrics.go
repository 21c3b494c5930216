// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barbershop_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "barbershop_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "barbershop_bookings_created_total",
			Help: "Total number of bookings created",
		},
	)

	BookingStatusUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barbershop_booking_status_updates_total",
			Help: "Total number of booking status updates by new status",
		},
		[]string{"status"},
	)

	BonusAdjustmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barbershop_bonus_adjustments_total",
			Help: "Total number of manual bonus adjustments",
		},
		[]string{"direction"},
	)

	CatalogCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "barbershop_catalog_cache_total",
			Help: "Catalog cache lookups by resource and result",
		},
		[]string{"resource", "result"},
	)

	RateLimitHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "barbershop_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBookingCreated() {
	BookingsCreatedTotal.Inc()
}

// RecordBookingStatusUpdate counts a status change. Status is free text, so
// only a small set of known values is used as a label.
func RecordBookingStatusUpdate(status string) {
	switch status {
	case "pending", "confirmed", "completed", "cancelled":
	default:
		status = "other"
	}
	BookingStatusUpdatesTotal.WithLabelValues(status).Inc()
}

// RecordBonusAdjustment counts an adjustment as credit, debit or zero.
func RecordBonusAdjustment(delta int) {
	direction := "zero"
	switch {
	case delta > 0:
		direction = "credit"
	case delta < 0:
		direction = "debit"
	}
	BonusAdjustmentsTotal.WithLabelValues(direction).Inc()
}

func RecordCatalogCache(resource, result string) {
	CatalogCacheTotal.WithLabelValues(resource, result).Inc()
}

func RecordRateLimitHit() {
	RateLimitHitsTotal.Inc()
}
