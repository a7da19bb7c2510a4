// Package logging is a small leveled logging facade over zap.
// Until Init is called every call is a no-op, which keeps library packages
// quiet in tests.
package logging

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar atomic.Pointer[zap.SugaredLogger]

func init() {
	sugar.Store(zap.NewNop().Sugar())
}

// Config selects the level and encoding of the process logger.
type Config struct {
	Level   string // debug, info, warn, error
	Console bool   // human readable output instead of JSON
}

// Init builds the process logger and installs it.
func Init(cfg Config) error {
	lvl := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
			return fmt.Errorf("logging: bad level %q: %w", cfg.Level, err)
		}
	}

	zc := zap.NewProductionConfig()
	if cfg.Console {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.DisableStacktrace = true

	l, err := zc.Build()
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	Set(l)
	return nil
}

// Set installs an existing zap logger, e.g. zaptest.NewLogger in tests.
func Set(l *zap.Logger) {
	sugar.Store(l.WithOptions(zap.AddCallerSkip(1)).Sugar())
}

func Debugf(format string, args ...any) { sugar.Load().Debugf(format, args...) }

func Infof(format string, args ...any) { sugar.Load().Infof(format, args...) }

func Warnf(format string, args ...any) { sugar.Load().Warnf(format, args...) }

func Errorf(format string, args ...any) { sugar.Load().Errorf(format, args...) }

// Sync flushes buffered entries.
func Sync() error { return sugar.Load().Sync() }
