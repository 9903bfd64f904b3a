package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "exegese_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// CacheHits tracks cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exegese_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"operation"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exegese_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// AIGenerations tracks AI gateway calls
	AIGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exegese_ai_generations_total",
			Help: "Number of AI generation calls",
		},
		[]string{"kind", "status"},
	)

	// SessionMutations tracks state store mutations
	SessionMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exegese_session_mutations_total",
			Help: "Number of session state mutations",
		},
		[]string{"action"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "exegese_active_connections",
			Help: "Number of active connections",
		},
	)
)
