package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// RecordValidationFailure records a field value rejected by a validator.
func RecordValidationFailure(entity, field, code string) {
	ValidationFailuresTotal.WithLabelValues(entity, field, code).Inc()
}

// RecordWrite records a persisted create or update.
func RecordWrite(entity, op string) {
	EntityWritesTotal.WithLabelValues(entity, op).Inc()
}

// UpdateEntitiesTotal sets the entity gauge after a full listing.
func UpdateEntitiesTotal(entity string, count int) {
	EntitiesTotal.WithLabelValues(entity).Set(float64(count))
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query type (e.g., "author_get_by_name", "post_create").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// TrackDBQuery starts timing operation and returns the function that records it.
//
//	defer metrics.TrackDBQuery("author_create")()
func TrackDBQuery(operation string) func() {
	start := time.Now()
	return func() {
		RecordDBQuery(operation, time.Since(start))
	}
}

// UpdateDBConnectionStats updates database connection pool statistics.
func UpdateDBConnectionStats(active, idle int) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}

// RecordCircuitState sets the state gauge of the named breaker.
func RecordCircuitState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// WriteText writes every metric in gatherer to w in the Prometheus text format.
func WriteText(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
