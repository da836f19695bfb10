// Package logging wraps logrus with the level-prefixed surface used
// throughout the node and printer services.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is a thin wrapper around a logrus.Entry so call sites never
// import logrus directly.
type Logger struct {
	entry *logrus.Entry
}

// New builds a Logger writing to stderr at the given level name
// ("debug", "info", "warn", "error"). An unrecognized level falls back
// to info.
func New(field string, level string) *Logger {
	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	base.SetLevel(lvl)
	return &Logger{entry: base.WithField("component", field)}
}

// With returns a child logger carrying an additional field, for
// request-scoped annotations like peer id or job id.
func (l *Logger) With(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

func (l *Logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }
func (l *Logger) Fatalf(format string, args ...interface{}) { l.entry.Fatalf(format, args...) }
