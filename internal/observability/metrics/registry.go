// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Entity labels.
const (
	EntityAuthor = "author"
	EntityPost   = "post"
)

// Write operation labels.
const (
	OpCreate = "create"
	OpUpdate = "update"
)

// Business metrics track writes to the store and the rules that reject them
var (
	// ValidationFailuresTotal counts rejected field values by entity, field and code
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_validation_failures_total",
			Help: "Total number of field values rejected by validation",
		},
		[]string{"entity", "field", "code"},
	)

	// EntityWritesTotal counts persisted creates and updates
	EntityWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_entity_writes_total",
			Help: "Total number of entities written to the store",
		},
		[]string{"entity", "op"},
	)

	// EntitiesTotal tracks the number of rows seen by the latest full listing
	EntitiesTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "blog_entities_total",
			Help: "Number of entities returned by the latest full listing",
		},
		[]string{"entity"},
	)
)

// Database metrics track database performance
var (
	// DBQueryDuration measures database query duration
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "blog_db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)

	// DBConnectionsActive tracks active database connections
	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "blog_db_connections_active",
			Help: "Number of active database connections",
		},
	)

	// DBConnectionsIdle tracks idle database connections
	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "blog_db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	// CircuitBreakerState exposes the breaker state: 0 closed, 1 half-open, 2 open
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "blog_circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)
)
