package config

import (
	"fmt"
	"strings"
	"time"

	"blogstore/internal/infra/db"
	"blogstore/internal/observability/logging"
)

// ValidateDriver accepts the database driver names understood by db.ParseDriver.
func ValidateDriver(driver string) error {
	_, err := db.ParseDriver(driver)
	return err
}

// ValidateLogFormat accepts "json" or "text", case-insensitively.
func ValidateLogFormat(format string) error {
	switch strings.ToLower(format) {
	case logging.FormatJSON, logging.FormatText:
		return nil
	default:
		return fmt.Errorf("invalid log format %q: must be %q or %q", format, logging.FormatJSON, logging.FormatText)
	}
}

// ValidateIntRange validates that value lies within [min, max].
func ValidateIntRange(value, min, max int) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%d) cannot be greater than max (%d)", min, max)
	}
	if value < min {
		return fmt.Errorf("value %d is below minimum %d", value, min)
	}
	if value > max {
		return fmt.Errorf("value %d exceeds maximum %d", value, max)
	}
	return nil
}

// MaxPoolSize caps max_open_conns.
const MaxPoolSize = 1000

// ValidatePoolSize accepts a connection count in [1, MaxPoolSize].
func ValidatePoolSize(value int) error {
	return ValidateIntRange(value, 1, MaxPoolSize)
}

// DefaultConnectAttempts and MaxConnectAttempts bound database.connect_attempts.
const (
	DefaultConnectAttempts = 5
	MaxConnectAttempts     = 20
)

// ValidateConnectAttempts accepts an attempt count in [1, MaxConnectAttempts].
func ValidateConnectAttempts(value int) error {
	return ValidateIntRange(value, 1, MaxConnectAttempts)
}

// ValidatePositiveInt rejects zero and negative values.
func ValidatePositiveInt(value int) error {
	if value <= 0 {
		return fmt.Errorf("value must be positive, got %d", value)
	}
	return nil
}

// ValidatePositiveDuration rejects zero and negative durations.
func ValidatePositiveDuration(duration time.Duration) error {
	if duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", duration)
	}
	return nil
}
