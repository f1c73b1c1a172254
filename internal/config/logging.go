package config

import (
	"os"

	"go.uber.org/zap/zapcore"
)

// EnvLogLevel overrides logging.level from the environment.
const EnvLogLevel = "DESKCALC_LOG_LEVEL"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ZapLevel resolves the effective log level: the environment override
// wins over the configured value, and anything unknown falls back to
// info.
func (c *LoggingConfig) ZapLevel() zapcore.Level {
	level := c.Level
	if env := os.Getenv(EnvLogLevel); env != "" {
		level = env
	}
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
