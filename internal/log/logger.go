// Package log wraps logrus behind the small package-level surface the rest
// of the application uses, and provides the types.Reporter binding handed to
// the scan/plan/execute pipeline.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"camroll/pkg/types"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// SetVerbose switches debug-level output on or off.
func SetVerbose(verbose bool) {
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// SetOutput redirects log output. Used by tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Debug logs a formatted debug message
func Debug(format string, args ...any) {
	logger.Debugf(format, args...)
}

// Info logs a formatted message
func Info(format string, args ...any) {
	logger.Infof(format, args...)
}

// Warn logs a formatted warning message
func Warn(format string, args ...any) {
	logger.Warnf(format, args...)
}

// Error logs a formatted error message
func Error(format string, args ...any) {
	logger.Errorf(format, args...)
}

// WithField returns a structured entry carrying one field.
func WithField(key string, value any) *logrus.Entry {
	return logger.WithField(key, value)
}

// NewReporter returns a diagnostics sink backed by the package logger.
func NewReporter() types.Reporter {
	return types.ReporterFunc(func(sev types.Severity, format string, args ...any) {
		switch sev {
		case types.SeverityDebug:
			logger.Debugf(format, args...)
		case types.SeverityInfo:
			logger.Infof(format, args...)
		case types.SeverityWarn:
			logger.Warnf(format, args...)
		default:
			logger.Errorf(format, args...)
		}
	})
}
