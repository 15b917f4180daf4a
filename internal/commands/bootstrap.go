package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_app/internal/platform/config"
	"github.com/SscSPs/bookkeeping_app/internal/platform/database"
	"github.com/SscSPs/bookkeeping_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/bookkeeping_app/internal/repositories/database/sqlite"
)

// newLogger builds the JSON logger used by every command.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// migrationDSN returns the connection string golang-migrate expects for the configured driver.
func migrationDSN(cfg *config.Config) string {
	if cfg.DBDriver == config.DriverPostgres {
		return cfg.DatabaseURL
	}
	return cfg.SQLitePath
}

// openRepositories migrates the configured store to the latest schema and wires its repositories.
// The returned func releases the underlying connection.
func openRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	logger.Info("Running database migrations...", slog.String("driver", cfg.DBDriver))
	if err := database.RunMigrations(logger, cfg.DBDriver, migrationDSN(cfg), database.Up); err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}

	switch cfg.DBDriver {
	case config.DriverPostgres:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewRepositoryProvider(dbPool), dbPool.Close, nil
	default:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		logger.Info("SQLite database opened.", slog.String("path", cfg.SQLitePath))
		return sqlite.NewRepositoryProvider(db), func() { db.Close() }, nil
	}
}
