package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commerce_api_requests_total",
			Help: "Total number of outbound commerce API requests",
		},
		[]string{"operation", "method", "status"},
	)

	apiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "commerce_api_request_duration_seconds",
			Help:    "Outbound commerce API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "method"},
	)
)

// observeRequest records the outcome of one outbound API call. Transport
// failures carry the status label "error".
func observeRequest(operation, method, status string, elapsed time.Duration) {
	apiRequestsTotal.WithLabelValues(operation, method, status).Inc()
	apiRequestDuration.WithLabelValues(operation, method).Observe(elapsed.Seconds())
}
