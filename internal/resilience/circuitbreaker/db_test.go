package circuitbreaker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sony/gobreaker"
)

func fastDBConfig() Config {
	cfg := DBConfig()
	cfg.Name = "test-db"
	cfg.Timeout = 50 * time.Millisecond
	return cfg
}

func TestNewDBCircuitBreaker(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer func() { _ = db.Close() }()

	dcb := NewDBCircuitBreaker(db)

	if dcb.Name() != "database" {
		t.Errorf("expected name 'database', got '%s'", dcb.Name())
	}
	if dcb.State() != gobreaker.StateClosed {
		t.Errorf("expected initial state to be Closed, got %s", dcb.State())
	}
}

func TestDBCircuitBreaker_QueryContext_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer func() { _ = db.Close() }()

	dcb := NewDBCircuitBreaker(db)

	mock.ExpectQuery("SELECT (.+) FROM authors").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Ada"))

	rows, err := dcb.QueryContext(context.Background(), "SELECT id, name FROM authors")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		t.Fatal("expected one row")
	}
	var id int64
	var name string
	if err := rows.Scan(&id, &name); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if id != 1 || name != "Ada" {
		t.Errorf("got id=%d name=%s", id, name)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDBCircuitBreaker_ExecContext_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer func() { _ = db.Close() }()

	dcb := NewDBCircuitBreaker(db)

	mock.ExpectExec("UPDATE authors").
		WithArgs("Ada", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := dcb.ExecContext(context.Background(), "UPDATE authors SET name = ? WHERE id = ?", "Ada", int64(1))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if n, _ := res.RowsAffected(); n != 1 {
		t.Errorf("expected 1 row affected, got %d", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDBCircuitBreaker_CircuitOpens_AfterConsecutiveFailures(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer func() { _ = db.Close() }()

	dcb := NewDBCircuitBreakerWithConfig(db, fastDBConfig())
	ctx := context.Background()

	expectedErr := errors.New("database connection failed")
	for i := 0; i < 5; i++ {
		mock.ExpectQuery("SELECT (.+)").WillReturnError(expectedErr)
	}
	for i := 0; i < 5; i++ {
		if _, err := dcb.QueryContext(ctx, "SELECT * FROM posts"); err == nil {
			t.Errorf("attempt %d: expected error, got nil", i+1)
		}
	}

	if !dcb.IsOpen() {
		t.Fatalf("expected circuit to be open, state: %s", dcb.State())
	}

	_, err = dcb.ExecContext(ctx, "UPDATE posts SET title = ?", "Top")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected ErrOpenState, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDBCircuitBreaker_CircuitHalfOpen_AfterTimeout(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer func() { _ = db.Close() }()

	dcb := NewDBCircuitBreakerWithConfig(db, fastDBConfig())
	ctx := context.Background()

	expectedErr := errors.New("database connection failed")
	for i := 0; i < 5; i++ {
		mock.ExpectQuery("SELECT (.+)").WillReturnError(expectedErr)
	}
	for i := 0; i < 5; i++ {
		_, _ = dcb.QueryContext(ctx, "SELECT * FROM posts")
	}
	if !dcb.IsOpen() {
		t.Fatal("expected circuit to be open")
	}

	time.Sleep(100 * time.Millisecond)

	mock.ExpectQuery("SELECT (.+)").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	rows, err := dcb.QueryContext(ctx, "SELECT * FROM posts")
	if err != nil {
		t.Fatalf("expected query to succeed in half-open state, got %v", err)
	}
	_ = rows.Close()
}

func TestDBCircuitBreaker_ClassifiedErrorsDoNotTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer func() { _ = db.Close() }()

	constraintErr := errors.New("UNIQUE constraint failed: authors.name")
	cfg := fastDBConfig()
	cfg.IsSuccessful = func(err error) bool { return err == nil || err == constraintErr }
	dcb := NewDBCircuitBreakerWithConfig(db, cfg)

	for i := 0; i < 6; i++ {
		mock.ExpectExec("INSERT INTO authors").WillReturnError(constraintErr)
	}
	for i := 0; i < 6; i++ {
		_, _ = dcb.ExecContext(context.Background(), "INSERT INTO authors (name) VALUES (?)", "Ada")
	}

	if dcb.IsOpen() {
		t.Error("constraint violations must not open the circuit")
	}
}

func TestDBCircuitBreaker_QueryRowContext(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer func() { _ = db.Close() }()

	dcb := NewDBCircuitBreaker(db)

	mock.ExpectQuery("SELECT (.+) FROM authors WHERE id = ?").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Ada"))

	var id int
	var name string
	if err := dcb.QueryRowContext(context.Background(), "SELECT id, name FROM authors WHERE id = ?", 1).Scan(&id, &name); err != nil {
		t.Fatalf("failed to scan row: %v", err)
	}
	if id != 1 || name != "Ada" {
		t.Errorf("expected id=1, name=Ada, got id=%d, name=%s", id, name)
	}
}

func TestDBCircuitBreaker_QueryRowScan(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer func() { _ = db.Close() }()

	dcb := NewDBCircuitBreaker(db)

	mock.ExpectQuery("INSERT INTO authors (.+) RETURNING id").
		WithArgs("Ada").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	var id int64
	err = dcb.QueryRowScan(context.Background(), []interface{}{&id},
		"INSERT INTO authors (name) VALUES ($1) RETURNING id", "Ada")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != 7 {
		t.Errorf("expected id=7, got %d", id)
	}
}

func TestDBCircuitBreaker_QueryRowScan_FailuresOpenCircuit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer func() { _ = db.Close() }()

	dcb := NewDBCircuitBreakerWithConfig(db, fastDBConfig())
	ctx := context.Background()

	resetErr := errors.New("connection reset by peer")
	for i := 0; i < 5; i++ {
		mock.ExpectQuery("UPDATE authors").WillReturnError(resetErr)
	}
	var updatedAt time.Time
	for i := 0; i < 5; i++ {
		err := dcb.QueryRowScan(ctx, []interface{}{&updatedAt}, "UPDATE authors SET name = $1 RETURNING updated_at", "Ada")
		if !errors.Is(err, resetErr) {
			t.Errorf("attempt %d: expected reset error, got %v", i+1, err)
		}
	}

	if !dcb.IsOpen() {
		t.Fatalf("expected circuit to be open, state: %s", dcb.State())
	}
	err = dcb.QueryRowScan(ctx, []interface{}{&updatedAt}, "UPDATE authors SET name = $1 RETURNING updated_at", "Ada")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected ErrOpenState, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDBCircuitBreaker_QueryRowScan_NoRowsDoNotTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer func() { _ = db.Close() }()

	dcb := NewDBCircuitBreakerWithConfig(db, fastDBConfig())

	for i := 0; i < 6; i++ {
		mock.ExpectQuery("SELECT id FROM authors").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	}
	var id int64
	for i := 0; i < 6; i++ {
		err := dcb.QueryRowScan(context.Background(), []interface{}{&id}, "SELECT id FROM authors WHERE name = $1", "Nobody")
		if !errors.Is(err, sql.ErrNoRows) {
			t.Errorf("attempt %d: expected sql.ErrNoRows, got %v", i+1, err)
		}
	}

	if dcb.IsOpen() {
		t.Error("missing rows must not open the circuit")
	}
}

func TestIsBenignDBError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, true},
		{"no rows", fmt.Errorf("Get: %w", sql.ErrNoRows), true},
		{"canceled", context.Canceled, true},
		{"connection reset", errors.New("connection reset by peer"), false},
		{"deadline", context.DeadlineExceeded, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBenignDBError(tt.err); got != tt.want {
				t.Errorf("IsBenignDBError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDBConfig(t *testing.T) {
	cfg := DBConfig()

	if cfg.Name != "database" {
		t.Errorf("expected name 'database', got '%s'", cfg.Name)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected Timeout 30s, got %v", cfg.Timeout)
	}
	if cfg.MinRequests != 5 {
		t.Errorf("expected MinRequests 5, got %d", cfg.MinRequests)
	}
	if cfg.FailureThreshold != 1.0 {
		t.Errorf("expected FailureThreshold 1.0, got %f", cfg.FailureThreshold)
	}
	if cfg.MaxRequests != DefaultConfig("").MaxRequests {
		t.Errorf("expected MaxRequests from DefaultConfig, got %d", cfg.MaxRequests)
	}
	if cfg.IsSuccessful == nil || !cfg.IsSuccessful(sql.ErrNoRows) {
		t.Error("expected sql.ErrNoRows to be classified as success")
	}
}
