// Package config loads blogstore settings from an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"blogstore/internal/infra/db"
	"blogstore/internal/observability/logging"
)

// Config is the full application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Breaker  BreakerConfig  `yaml:"breaker"`
}

// DatabaseConfig selects the store and sizes its connection pool.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"`
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
	// ConnectAttempts bounds how often the initial connection is tried.
	ConnectAttempts int `yaml:"connect_attempts"`
}

// LogConfig controls the log output format ("json" or "text").
type LogConfig struct {
	Format string `yaml:"format"`
}

// BreakerConfig toggles the circuit breaker around store calls.
type BreakerConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when neither file nor environment set a value.
func Default() Config {
	pool := db.DefaultConnectionConfig()
	return Config{
		Database: DatabaseConfig{
			Driver:          string(db.DriverSQLite),
			DSN:             "blogstore.db",
			MaxOpenConns:    pool.MaxOpenConns,
			MaxIdleConns:    pool.MaxIdleConns,
			ConnMaxLifetime: pool.ConnMaxLifetime,
			ConnMaxIdleTime: pool.ConnMaxIdleTime,
			ConnectAttempts: DefaultConnectAttempts,
		},
		Log:     LogConfig{Format: logging.FormatJSON},
		Breaker: BreakerConfig{Enabled: true},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (skipped
// when path is empty), then environment overrides. Invalid environment values
// fall back to the file or default value and are reported as warnings.
// The path parameter is expected to come from a trusted source (command-line argument).
func Load(path string) (*Config, []string, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 -- path is provided by trusted source (CLI arg), not user input
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	warnings := cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, warnings, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, warnings, nil
}

// applyEnv overrides fields from the environment and returns fallback warnings.
func (c *Config) applyEnv() []string {
	var warnings []string
	collect := func(r ConfigLoadResult) ConfigLoadResult {
		warnings = append(warnings, r.Warnings...)
		return r
	}

	c.Database.Driver = collect(LoadEnvWithFallback("DATABASE_DRIVER", c.Database.Driver, ValidateDriver)).Value.(string)
	c.Database.DSN = LoadEnvString("DATABASE_URL", c.Database.DSN)
	c.Database.MaxOpenConns = collect(LoadEnvInt("DB_MAX_OPEN_CONNS", c.Database.MaxOpenConns, ValidatePoolSize)).Value.(int)
	c.Database.MaxIdleConns = collect(LoadEnvInt("DB_MAX_IDLE_CONNS", c.Database.MaxIdleConns, ValidatePositiveInt)).Value.(int)
	c.Database.ConnMaxLifetime = collect(LoadEnvDuration("DB_CONN_MAX_LIFETIME", c.Database.ConnMaxLifetime, ValidatePositiveDuration)).Value.(time.Duration)
	c.Database.ConnMaxIdleTime = collect(LoadEnvDuration("DB_CONN_MAX_IDLE_TIME", c.Database.ConnMaxIdleTime, ValidatePositiveDuration)).Value.(time.Duration)
	c.Database.ConnectAttempts = collect(LoadEnvInt("DB_CONNECT_ATTEMPTS", c.Database.ConnectAttempts, ValidateConnectAttempts)).Value.(int)
	c.Log.Format = collect(LoadEnvWithFallback("LOG_FORMAT", c.Log.Format, ValidateLogFormat)).Value.(string)
	c.Breaker.Enabled = collect(LoadEnvBool("DB_CIRCUIT_BREAKER", c.Breaker.Enabled)).Value.(bool)

	return warnings
}

// Validate checks the assembled configuration.
func (c *Config) Validate() error {
	var errs []error
	if err := ValidateDriver(c.Database.Driver); err != nil {
		errs = append(errs, err)
	}
	if c.Database.DSN == "" {
		errs = append(errs, errors.New("database dsn is required"))
	}
	if err := ValidatePoolSize(c.Database.MaxOpenConns); err != nil {
		errs = append(errs, fmt.Errorf("max_open_conns: %w", err))
	}
	if c.Database.MaxIdleConns < 0 {
		errs = append(errs, fmt.Errorf("max_idle_conns must not be negative, got %d", c.Database.MaxIdleConns))
	}
	if err := ValidateConnectAttempts(c.Database.ConnectAttempts); err != nil {
		errs = append(errs, fmt.Errorf("connect_attempts: %w", err))
	}
	if err := ValidateLogFormat(c.Log.Format); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// DriverName returns the parsed database driver. Call Validate first.
func (c *Config) DriverName() db.Driver {
	d, _ := db.ParseDriver(c.Database.Driver)
	return d
}

// ConnectionConfig converts the pool settings for db.Open.
func (c *Config) ConnectionConfig() db.ConnectionConfig {
	return db.ConnectionConfig{
		MaxOpenConns:    c.Database.MaxOpenConns,
		MaxIdleConns:    c.Database.MaxIdleConns,
		ConnMaxLifetime: c.Database.ConnMaxLifetime,
		ConnMaxIdleTime: c.Database.ConnMaxIdleTime,
	}
}
