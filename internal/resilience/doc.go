// Package resilience provides fault tolerance for the store connection.
//
// The package supports:
//   - Circuit breakers around database queries and statements
//   - Retry logic with exponential backoff and jitter for the initial connect
//
// Usage Example:
//
//	q := circuitbreaker.NewDBCircuitBreaker(database)
//	rows, err := q.QueryContext(ctx, "SELECT id, name FROM authors")
//
//	err := retry.WithBackoff(ctx, retry.DBConnectConfig(5), func() error {
//	    return database.PingContext(ctx)
//	})
package resilience
