package callback

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// Logger returns the logger used for trampoline diagnostics.
// It is a no-op logger unless SetLogger was called.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}

// SetLogger replaces the package logger. Passing nil restores the no-op logger.
// Safe to call while callbacks are running.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}
