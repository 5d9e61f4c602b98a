package db

import (
	"context"
	"database/sql"
)

// Querier is the subset of *sql.DB the persistence adapters use.
// *sql.DB, *sql.Tx and *circuitbreaker.DBCircuitBreaker all satisfy it.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// RowScanner is satisfied by *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...interface{}) error
}

// RowScanQuerier runs a single-row query together with its Scan, so the
// outcome of the read is known to the implementation.
type RowScanQuerier interface {
	QueryRowScan(ctx context.Context, dest []interface{}, query string, args ...interface{}) error
}

// QueryRow returns the single row of query. When q is a RowScanQuerier the
// query is deferred until Scan, which hands both to q.QueryRowScan.
func QueryRow(ctx context.Context, q Querier, query string, args ...interface{}) RowScanner {
	if rq, ok := q.(RowScanQuerier); ok {
		return &deferredRow{ctx: ctx, q: rq, query: query, args: args}
	}
	return q.QueryRowContext(ctx, query, args...)
}

type deferredRow struct {
	ctx   context.Context
	q     RowScanQuerier
	query string
	args  []interface{}
}

func (r *deferredRow) Scan(dest ...interface{}) error {
	return r.q.QueryRowScan(r.ctx, dest, r.query, r.args...)
}
