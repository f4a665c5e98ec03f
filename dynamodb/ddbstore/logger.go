package ddbstore

import (
	"strings"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

type zapLogger struct {
	s *zap.SugaredLogger
}

// ZapLogger adapts a zap logger to badger.Logger. Badger terminates its
// messages with a newline, which is trimmed.
func ZapLogger(l *zap.Logger) badger.Logger {
	return zapLogger{s: l.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (z zapLogger) Errorf(format string, args ...any) {
	z.s.Errorf(strings.TrimSuffix(format, "\n"), args...)
}

func (z zapLogger) Warningf(format string, args ...any) {
	z.s.Warnf(strings.TrimSuffix(format, "\n"), args...)
}

func (z zapLogger) Infof(format string, args ...any) {
	z.s.Infof(strings.TrimSuffix(format, "\n"), args...)
}

func (z zapLogger) Debugf(format string, args ...any) {
	z.s.Debugf(strings.TrimSuffix(format, "\n"), args...)
}
