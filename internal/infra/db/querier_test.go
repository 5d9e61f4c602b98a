package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingQuerier is a Querier whose single-row reads go through QueryRowScan.
type recordingQuerier struct {
	*sql.DB
	calls int
	err   error
}

func (r *recordingQuerier) QueryRowScan(ctx context.Context, dest []interface{}, query string, args ...interface{}) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	return r.DB.QueryRowContext(ctx, query, args...).Scan(dest...)
}

func TestQueryRow_PlainDB(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	mock.ExpectQuery("SELECT name FROM authors").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Ada"))

	var name string
	require.NoError(t, QueryRow(context.Background(), sqlDB, "SELECT name FROM authors WHERE id = $1", int64(1)).Scan(&name))
	assert.Equal(t, "Ada", name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryRow_DefersToRowScanQuerier(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	q := &recordingQuerier{DB: sqlDB}
	row := QueryRow(context.Background(), q, "SELECT name FROM authors WHERE id = $1", int64(2))
	assert.Equal(t, 0, q.calls, "query must not run before Scan")

	mock.ExpectQuery("SELECT name FROM authors").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Grace"))

	var name string
	require.NoError(t, row.Scan(&name))
	assert.Equal(t, "Grace", name)
	assert.Equal(t, 1, q.calls)

	q.err = errors.New("circuit breaker is open")
	err = QueryRow(context.Background(), q, "SELECT name FROM authors WHERE id = $1", int64(3)).Scan(&name)
	assert.EqualError(t, err, "circuit breaker is open")
	assert.NoError(t, mock.ExpectationsWereMet())
}
