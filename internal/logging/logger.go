// Package logging provides config-driven categorized logging for primefinder.
// Logs are structured zap records written to stderr, so they never mix with the
// listings on stdout. Each category gets a named child logger and can be
// switched off in the logging.categories section of the config.
package logging

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"primefinder/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot      Category = "boot"      // Startup, config loading
	CategoryEnumerate Category = "enumerate" // Sieve and trial division runs
	CategoryFormat    Category = "format"    // Row rendering and reports
	CategoryVerify    Category = "verify"    // Agreement sweeps
	CategoryConfig    Category = "config"    // config init/show
)

// Logger wraps a zap logger with per-category gating and a run ID.
type Logger struct {
	base  *zap.Logger
	cfg   config.LoggingConfig
	runID string
}

// New builds a Logger from cfg. verbose forces debug level.
func New(cfg config.LoggingConfig, verbose bool) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.Format != "json" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	z, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return FromZap(z, cfg), nil
}

// FromZap wraps an existing zap logger. A fresh run ID is attached.
func FromZap(z *zap.Logger, cfg config.LoggingConfig) *Logger {
	id := uuid.NewString()
	return &Logger{
		base:  z.With(zap.String("run_id", id)),
		cfg:   cfg,
		runID: id,
	}
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return &Logger{base: zap.NewNop()}
}

// Get returns the logger for a category, or a no-op logger if the category is disabled.
func (l *Logger) Get(category Category) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	if !l.cfg.IsCategoryEnabled(string(category)) {
		return zap.NewNop()
	}
	return l.base.Named(string(category))
}

// RunID identifies this process run in every record.
func (l *Logger) RunID() string {
	return l.runID
}

// Sync flushes buffered records.
func (l *Logger) Sync() error {
	return l.base.Sync()
}

// ParseLevel maps a config level name to a zap level. Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
}
