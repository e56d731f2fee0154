package sldsphere

import (
	"sync"

	"go.uber.org/zap"
)

// SetLogger swaps the package logger; nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	Logger = l
}

func DebugLog(format string, args ...interface{}) {
	Logger.Sugar().Debugf(format, args...)
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	once.Do(func() {
		Logger.Sugar().Debugf(format, args...)
	})
}
