// Package logger provides structured logging using zap.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	appConfig "github.com/cavalryfc/registration-api/internal/config"
)

// New creates a logger from the LOG_* environment variables.
func New() (*zap.SugaredLogger, error) {
	return NewWithConfig(appConfig.LoadLoggerConfigFromEnv())
}

// NewWithConfig creates a logger from an explicit configuration.
func NewWithConfig(cfg appConfig.LoggerConfig) (*zap.SugaredLogger, error) {
	zapConfig := baseConfig(cfg)

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		// Unknown levels fall back to info rather than failing startup.
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	zapConfig.OutputPaths = []string{outputPath(cfg.Output)}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}

func baseConfig(cfg appConfig.LoggerConfig) zap.Config {
	zapConfig := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zapConfig = zap.NewProductionConfig()
	}

	if cfg.Format == "console" {
		zapConfig.Encoding = "console"
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zapConfig.Encoding = "json"
	}

	return zapConfig
}

// outputPath maps the configured output to a zap sink. Only stdout and
// stderr are supported; anything else falls back to stdout.
func outputPath(output string) string {
	switch output {
	case "stdout", "stderr":
		return output
	default:
		return "stdout"
	}
}
