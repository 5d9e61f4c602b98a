// Package main provides blogctl, a command-line front end for the blog store.
// Usage: blogctl [-config FILE] [-metrics-out FILE] <command> [flags]
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"blogstore/internal/config"
	pgRepo "blogstore/internal/infra/adapter/persistence/postgres"
	liteRepo "blogstore/internal/infra/adapter/persistence/sqlite"
	"blogstore/internal/infra/db"
	"blogstore/internal/observability/logging"
	"blogstore/internal/observability/metrics"
	"blogstore/internal/repository"
	"blogstore/internal/resilience/circuitbreaker"
	"blogstore/internal/resilience/retry"
	authorUC "blogstore/internal/usecase/author"
	postUC "blogstore/internal/usecase/post"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// app bundles the services a command runs against.
type app struct {
	authors *authorUC.Service
	posts   *postUC.Service
	out     io.Writer
}

// run parses args, wires the store and executes one command. It returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("blogctl", flag.ContinueOnError)
	global.SetOutput(stderr)
	configPath := global.String("config", "", "Path to a YAML config file")
	metricsOut := global.String("metrics-out", "", "Write Prometheus metrics in text format to this file on exit")
	global.Usage = func() { usage(global) }
	if err := global.Parse(args); err != nil {
		return exitUsage
	}

	rest := global.Args()
	if len(rest) == 0 {
		global.Usage()
		return exitUsage
	}
	cmd, ok := commands[rest[0]]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", rest[0])
		global.Usage()
		return exitUsage
	}

	cfg, warnings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load configuration: %v\n", err)
		return exitError
	}

	logger := logging.New(stderr, cfg.Log.Format)
	slog.SetDefault(logger)
	for _, w := range warnings {
		logger.Warn("configuration fallback", slog.String("detail", w))
	}

	ctx = logging.WithInvocationID(ctx, uuid.NewString())
	logger = logging.WithFields(logging.WithInvocation(ctx, logger), map[string]interface{}{
		"command": rest[0],
		"driver":  string(cfg.DriverName()),
	})
	ctx = logging.WithLogger(ctx, logger)

	var database *sql.DB
	err = retry.WithBackoff(ctx, retry.DBConnectConfig(cfg.Database.ConnectAttempts), func() error {
		var openErr error
		database, openErr = db.Open(ctx, cfg.DriverName(), cfg.Database.DSN, cfg.ConnectionConfig())
		return openErr
	})
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		return exitError
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if err := db.MigrateUp(ctx, database, cfg.DriverName()); err != nil {
		logger.Error("failed to bootstrap schema", slog.Any("error", err))
		return exitError
	}

	var (
		q       db.Querier = database
		breaker *circuitbreaker.DBCircuitBreaker
	)
	if cfg.Breaker.Enabled {
		breaker = circuitbreaker.NewDBCircuitBreakerWithConfig(database, breakerConfig())
		q = breaker
	}
	authors, posts := newRepos(cfg.DriverName(), q)
	a := &app{
		authors: &authorUC.Service{Repo: authors},
		posts:   &postUC.Service{Repo: posts},
		out:     stdout,
	}

	code := cmd.run(ctx, a, rest[1:], stderr)
	if breaker != nil && breaker.IsOpen() {
		logger.Warn("database circuit breaker is open",
			slog.String("circuit", breaker.Name()),
			slog.String("state", breaker.State().String()))
	}

	if *metricsOut != "" {
		if err := writeMetrics(*metricsOut, database, prometheus.DefaultGatherer); err != nil {
			logger.Error("failed to write metrics", slog.Any("error", err))
			if code == exitOK {
				code = exitError
			}
		}
	}
	return code
}

// newRepos returns the repository implementations for driver.
func newRepos(driver db.Driver, q db.Querier) (repository.AuthorRepository, repository.PostRepository) {
	if driver == db.DriverPostgres {
		return pgRepo.NewAuthorRepo(q), pgRepo.NewPostRepo(q)
	}
	return liteRepo.NewAuthorRepo(q), liteRepo.NewPostRepo(q)
}

// breakerConfig keeps constraint violations and absent rows from counting as store failures.
func breakerConfig() circuitbreaker.Config {
	cfg := circuitbreaker.DBConfig()
	cfg.IsSuccessful = storeCallSucceeded
	return cfg
}

func storeCallSucceeded(err error) bool {
	return circuitbreaker.IsBenignDBError(err) ||
		pgRepo.IsUniqueViolation(err) ||
		liteRepo.IsUniqueViolation(err)
}

// writeMetrics snapshots the pool gauges and writes every gathered family to path.
func writeMetrics(path string, database *sql.DB, gatherer prometheus.Gatherer) error {
	stats := database.Stats()
	metrics.UpdateDBConnectionStats(stats.InUse, stats.Idle)

	// #nosec G304 -- path is provided by trusted source (CLI arg), not user input
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create metrics file: %w", err)
	}
	if err := metrics.WriteText(f, gatherer); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintln(out, "Usage: blogctl [-config FILE] [-metrics-out FILE] <command> [flags]")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Commands:")
	for _, name := range commandOrder {
		fmt.Fprintf(out, "  %-14s %s\n", name, commands[name].summary)
	}
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Global flags:")
	fs.PrintDefaults()
}
