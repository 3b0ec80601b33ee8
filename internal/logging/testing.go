package logging

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	uberzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewTestLogger creates a dev-mode logger at trace verbosity for use in tests.
func NewTestLogger() logr.Logger {
	cfg := uberzap.NewDevelopmentConfig()
	cfg.Level = uberzap.NewAtomicLevelAt(zapcore.Level(-1 * TRACE))
	zl, err := cfg.Build(uberzap.AddCaller())
	if err != nil {
		zl = uberzap.NewNop()
	}
	return zapr.NewLogger(zl)
}
