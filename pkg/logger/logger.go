package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerConfig struct {
	Debug bool
}

// NewLogger builds the process-wide zap logger. Debug enables development
// encoding and debug-level output.
func NewLogger(cfg *LoggerConfig) (*zap.Logger, error) {
	if cfg != nil && cfg.Debug {
		c := zap.NewDevelopmentConfig()
		c.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		return c.Build()
	}
	return zap.NewProduction()
}

// NewNopLogger returns a logger that discards everything. Used by tests that
// don't assert on log output.
func NewNopLogger() *zap.Logger {
	return zap.NewNop()
}
