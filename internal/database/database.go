// Package database provides database connection management for PostgreSQL.
package database

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cavalryfc/registration-api/internal/config"
	"github.com/cavalryfc/registration-api/pkg/retry"
)

// Config holds database connection configuration.
type Config struct {
	Host     string
	User     string
	Password string
	DBName   string
	Port     string
	SSLMode  string
	TimeZone string
}

// LoadConfigFromEnv loads database configuration from environment variables.
func LoadConfigFromEnv() Config {
	return Config{
		Host:     config.GetEnv("DB_HOST", "localhost"),
		User:     config.GetEnv("DB_USER", "postgres"),
		Password: config.GetEnv("DB_PASSWORD", "postgres"),
		DBName:   config.GetEnv("DB_NAME", "league"),
		Port:     config.GetEnv("DB_PORT", "5432"),
		SSLMode:  config.GetEnv("DB_SSLMODE", "disable"),
		TimeZone: config.GetEnv("DB_TIMEZONE", "UTC"),
	}
}

// buildDSN constructs PostgreSQL DSN string from configuration.
func buildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode, cfg.TimeZone)
}

// New creates a new database connection using environment variables.
func New(ctx context.Context) (*gorm.DB, error) {
	cfg := LoadConfigFromEnv()
	return NewWithConfig(ctx, cfg)
}

// NewWithConfig creates a new database connection with custom configuration.
// The initial connect is retried with exponential backoff so the server can
// start before the database finishes coming up.
func NewWithConfig(ctx context.Context, cfg Config) (*gorm.DB, error) {
	dsn := buildDSN(cfg)

	db, err := retry.DoWithResult(ctx, retry.PostgresConfig(), func() (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// HealthCheck verifies database connection availability.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
