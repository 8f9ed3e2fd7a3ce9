package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrate applies (or, with down set, rolls back) the migrations in dir
// against connStr and returns the resulting schema version. A schema with
// nothing applied reports migrate.ErrNilVersion.
func Migrate(dir, connStr string, down bool) (uint, bool, error) {
	m, err := migrate.New("file://"+dir, connStr)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, false, fmt.Errorf("migration failed: %w", err)
	}

	return m.Version()
}
