// Package migrate runs the bundled SQL migrations at startup.
package migrate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	"github.com/cavalryfc/registration-api/internal/config"
)

// Migrate applies all pending migrations from the directory named by
// MIGRATIONS_PATH (default "migrations"). Already-applied migrations
// are skipped.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	path, err := migrationsPath()
	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+path, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

func migrationsPath() (string, error) {
	path, err := filepath.Abs(config.GetEnv("MIGRATIONS_PATH", "migrations"))
	if err != nil {
		return "", fmt.Errorf("failed to resolve migrations path: %w", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("migrations directory does not exist: %s", path)
	}
	return path, nil
}
