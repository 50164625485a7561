package logger

import (
	"testing"

	"github.com/stretchr/testify/require"

	appConfig "github.com/cavalryfc/registration-api/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("creates logger from environment defaults", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "info")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("LOG_OUTPUT", "stdout")

		logger, err := New()
		require.NoError(t, err)
		require.NotNil(t, logger)
	})
}

func TestNewWithConfig(t *testing.T) {
	t.Run("production logger with info level", func(t *testing.T) {
		cfg := appConfig.LoggerConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		}

		logger, err := NewWithConfig(cfg)
		require.NoError(t, err)
		require.NotNil(t, logger)
	})

	t.Run("development logger with console format", func(t *testing.T) {
		cfg := appConfig.LoggerConfig{
			Level:  "debug",
			Format: "console",
			Output: "stdout",
		}

		logger, err := NewWithConfig(cfg)
		require.NoError(t, err)
		require.NotNil(t, logger)
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		cfg := appConfig.LoggerConfig{
			Level:  "bogus",
			Format: "json",
			Output: "stdout",
		}

		logger, err := NewWithConfig(cfg)
		require.NoError(t, err)
		require.NotNil(t, logger)
	})
}
