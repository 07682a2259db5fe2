// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_http_requests_total",
			Help: "Total number of API requests served",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "backoffice_http_request_duration_seconds",
			Help: "Duration of API request handling in seconds",
		},
		[]string{"route", "method"},
	)

	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_upstream_requests_total",
			Help: "Total number of upstream ATS requests by outcome",
		},
		[]string{"resource", "outcome"},
	)

	ScoringCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_scoring_calculations_total",
			Help: "Total number of candidate score computations",
		},
		[]string{"candidate_type"},
	)

	CalendarCacheEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_calendar_cache_events_total",
			Help: "Calendar month cache hits, misses and invalidations",
		},
		[]string{"event"},
	)
)
