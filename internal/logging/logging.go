package logging

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	uberzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels used with logger.V(...). Higher values are chattier.
const (
	DEBUG = 1
	TRACE = 2
)

// Log is the package-global logger. It defaults to a production zap logger
// and can be replaced once at startup via Setup.
var Log logr.Logger = NewLogger("info", false)

// NewLogger creates a logr.Logger backed by zap at the given level.
// Dev mode switches to the human-readable console encoder.
func NewLogger(level string, devMode bool) logr.Logger {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	var cfg uberzap.Config
	if devMode {
		cfg = uberzap.NewDevelopmentConfig()
	} else {
		cfg = uberzap.NewProductionConfig()
	}
	cfg.Level = uberzap.NewAtomicLevelAt(zapLevel)

	zl, err := cfg.Build()
	if err != nil {
		zl = uberzap.NewNop()
	}
	return zapr.NewLogger(zl)
}

// Setup replaces the package-global logger. Call once from main before any
// model work starts.
func Setup(level string, devMode bool) {
	Log = NewLogger(level, devMode)
}
