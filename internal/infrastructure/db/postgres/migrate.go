package postgres

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres driver registration
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/identity migrations/audit
var migrationFS embed.FS

// MigrateIdentity applies the identity store schema (users table with the
// unique username constraint that guards duplicate registrations).
func MigrateIdentity(databaseURL string) error {
	return runMigrations("migrations/identity", databaseURL)
}

// MigrateAudit applies the audit store schema (append-only logs table).
func MigrateAudit(databaseURL string) error {
	return runMigrations("migrations/audit", databaseURL)
}

func runMigrations(dir, databaseURL string) error {
	src, err := iofs.New(migrationFS, dir)
	if err != nil {
		return fmt.Errorf("load migrations %s: %w", dir, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("init migrations %s: %w", dir, err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations %s: %w", dir, err)
	}
	return nil
}
