// Package migrations embeds the schema for each SQL storage driver and applies it
// with golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed postgres/*.sql sqlite/*.sql
var migrationsFS embed.FS

// RunPostgres applies the postgres migrations using db, which must be opened
// with the pgx stdlib driver. It reports whether anything was applied.
func RunPostgres(db *sql.DB) (bool, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return false, fmt.Errorf("create postgres migration driver: %w", err)
	}
	return run(driver, "postgres")
}

// RunSQLite applies the sqlite migrations using db, opened with the modernc driver.
func RunSQLite(db *sql.DB) (bool, error) {
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return false, fmt.Errorf("create sqlite migration driver: %w", err)
	}
	return run(driver, "sqlite")
}

// Files lists the embedded migration files for dialect.
func Files(dialect string) ([]string, error) {
	return fs.Glob(migrationsFS, dialect+"/*.sql")
}

func run(driver database.Driver, dialect string) (bool, error) {
	src, err := iofs.New(migrationsFS, dialect)
	if err != nil {
		return false, fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, dialect, driver)
	if err != nil {
		return false, fmt.Errorf("create migrate instance: %w", err)
	}

	// m.Close would also close the caller's *sql.DB, so only the source is released
	defer src.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return false, nil
		}
		return false, fmt.Errorf("apply %s migrations: %w", dialect, err)
	}
	return true, nil
}
