package ffi

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger   *zap.Logger
	loggerMu sync.RWMutex
)

// Logger returns the ffi package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// SetLogger configures the ffi package's logger. Native log lines from
// blur_lib are forwarded to it as well.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

// forwardNativeLog routes one blur_lib log line into zap.
func forwardNativeLog(level LogLevel, msg string) {
	l := Logger().With(zap.String("source", "blur_lib"))
	switch level {
	case LogError:
		l.Error(msg)
	case LogWarn:
		l.Warn(msg)
	case LogInfo:
		l.Info(msg)
	default:
		l.Debug(msg, zap.Stringer("level", level))
	}
}
