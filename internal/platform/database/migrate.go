package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bookkeeping_app/migrations"
	migrate "github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

// Direction selects which way RunMigrations moves the schema.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// RunMigrations applies the embedded migrations for driver against dsn.
// driver is "sqlite3" (dsn is a file path) or "postgres" (dsn is a URL).
// It opens and closes its own connection.
func RunMigrations(logger *slog.Logger, driver string, dsn string, direction Direction) error {
	m, err := newMigrate(driver, dsn)
	if err != nil {
		return err
	}

	switch direction {
	case Up:
		err = m.Up()
	case Down:
		err = m.Down()
	default:
		err = fmt.Errorf("unknown migration direction %q", direction)
	}

	// Check for source/database errors after running the migration.
	sourceErr, dbErr := m.Close()

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply %s migrations: %w", direction, err)
	}
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.", slog.String("driver", driver))
	} else {
		logger.Info("Database migrations applied successfully.", slog.String("driver", driver), slog.String("direction", string(direction)))
	}
	return nil
}

func newMigrate(driver string, dsn string) (*migrate.Migrate, error) {
	var (
		db       *sql.DB
		instance migratedb.Driver
		dir      string
		err      error
	)

	switch driver {
	case "sqlite3":
		dir = "sqlite"
		if err = ensureParentDir(dsn); err != nil {
			return nil, err
		}
		db, err = sql.Open("sqlite3", SQLiteDSN(dsn))
		if err != nil {
			return nil, fmt.Errorf("failed to open database connection for migrations: %w", err)
		}
		instance, err = sqlite3.WithInstance(db, &sqlite3.Config{})
	case "postgres":
		dir = "postgres"
		db, err = sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open database connection for migrations: %w", err)
		}
		instance, err = postgres.WithInstance(db, &postgres.Config{})
	default:
		return nil, fmt.Errorf("unsupported migration driver %q", driver)
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create %s driver instance for migrations: %w", driver, err)
	}

	source, err := iofs.New(migrations.FS, dir)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, instance)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migrate instance: %w", err)
	}
	return m, nil
}
