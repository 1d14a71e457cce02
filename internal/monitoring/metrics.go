package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total portal HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	gatewayRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "Total calls to the backend gateway",
		},
		[]string{"operation", "outcome"},
	)

	gatewayDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Latency of calls to the backend gateway",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	staleViews = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stale_views_total",
			Help: "Listing results superseded by a newer request before completing",
		},
		[]string{"view"},
	)
)

func RecordHTTPRequest(method, route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// RecordGatewayCall records one backend call. outcome is "ok", "error" or
// the HTTP status code returned by the backend.
func RecordGatewayCall(operation, outcome string, elapsed time.Duration) {
	gatewayRequests.WithLabelValues(operation, outcome).Inc()
	gatewayDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func RecordStaleView(view string) {
	staleViews.WithLabelValues(view).Inc()
}
