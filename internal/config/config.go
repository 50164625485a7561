// Package config provides application configuration loaded from environment variables.
package config

import "fmt"

// Config holds application configuration.
type Config struct {
	// Server holds HTTP server configuration.
	Server ServerConfig
	// Logger holds logger configuration.
	Logger LoggerConfig
	// Stripe holds payment provider configuration.
	Stripe StripeConfig
	// AdminPassword is the shared secret gating admin endpoints.
	AdminPassword string
	// FrontendURL is the public site base URL used to build checkout return URLs.
	FrontendURL string
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:        LoadServerConfigFromEnv(),
		Logger:        LoadLoggerConfigFromEnv(),
		Stripe:        LoadStripeConfigFromEnv(),
		AdminPassword: GetEnv("ADMIN_PASSWORD", ""),
		FrontendURL:   GetEnv("FRONTEND_URL", "http://localhost:5173"),
		GinMode:       GetEnv("GIN_MODE", "release"),
	}
}

// Validate validates all configuration.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}

	if err := c.Stripe.Validate(); err != nil {
		return fmt.Errorf("stripe config validation failed: %w", err)
	}

	if c.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}

	if c.FrontendURL == "" {
		return fmt.Errorf("FRONTEND_URL must not be empty")
	}

	validGinModes := map[string]bool{
		"debug":   true,
		"release": true,
		"test":    true,
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	return nil
}
