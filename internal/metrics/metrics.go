// Package metrics holds the Prometheus collectors shared by the web and terminal front ends.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	// BackendRequests counts calls to the backend by operation and outcome.
	BackendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "share_backend_requests_total",
			Help: "Backend calls by operation (upload, list) and result.",
		},
		[]string{"operation", "result"},
	)

	// BackendDuration observes backend call latency.
	BackendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "share_backend_request_duration_seconds",
			Help:    "Backend call duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// UploadedBytes counts bytes streamed to the upload endpoint.
	UploadedBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "share_uploaded_bytes_total",
		Help: "Bytes streamed to the backend upload endpoint.",
	})

	// HTTPRequests counts requests served by the web front end.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "share_http_requests_total",
			Help: "HTTP requests served by the web front end.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPDuration observes web front-end request latency.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "share_http_request_duration_seconds",
			Help:    "Web front-end request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// ActiveSessions tracks browser sessions held in memory.
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "share_active_sessions",
		Help: "Browser sessions currently held by the web front end.",
	})
)

// Result maps an error to a result label
func Result(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}
