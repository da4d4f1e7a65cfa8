package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redflags_http_requests_total",
			Help: "HTTP requests by route and status code",
		},
		[]string{"route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redflags_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	Computations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redflags_computations_total",
			Help: "Score and probability computations",
		},
		[]string{"kind"},
	)

	RiskLevels = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redflags_risk_levels_total",
			Help: "Risk classifications by level",
		},
		[]string{"level"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redflags_cache_lookups_total",
			Help: "Calculator cache lookups by backend and result",
		},
		[]string{"backend", "result"},
	)

	ProfileFlushes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redflags_profile_flushes_total",
			Help: "Profile store writes by outcome",
		},
		[]string{"outcome"},
	)
)

// Computation kinds.
const (
	KindScore       = "score"
	KindProbability = "probability"
)
