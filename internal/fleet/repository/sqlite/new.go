package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // SQLite driver

	"fleet-dispatch/internal/fleet/repository"
	"fleet-dispatch/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the fleet domain.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("fleet/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Open opens (or creates) the fleet database at path and runs migrations.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func migrate(db *sqlx.DB) error {
	migrations := []string{
		migrationStops,
		migrationPaths,
		migrationPathStops,
		migrationRoutes,
		migrationVehicles,
		migrationDrivers,
		migrationDailyTrips,
		migrationDeployments,
		migrationIndexes,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("fleet/repository/sqlite.%s", method)
}
