package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate runs the embedded schema migrations. action is one of up, down, version.
func Migrate(dsn string, action string) (string, error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return "", fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return "", fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	switch action {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return "", err
		}
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return "", err
		}
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			if errors.Is(err, migrate.ErrNilVersion) {
				return "no migration applied", nil
			}
			return "", err
		}
		return fmt.Sprintf("version=%d dirty=%t", version, dirty), nil
	default:
		return "", fmt.Errorf("unsupported action %q", action)
	}

	return action + " completed", nil
}
