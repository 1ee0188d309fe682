package logger

import (
	"context"
	"io"
	"strings"

	"github.com/FlorianRuen/langs-usage-chart/config"
	"github.com/sirupsen/logrus"
)

type contextKey struct{}

// Setup will configure logrus logger
func Setup(cfg config.Config, output io.Writer) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if cfg.Logs.OutputLogsAsJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if output != nil {
		logrus.SetOutput(output)
	}

	logrus.SetLevel(StringToLogrusLogType(cfg.Logs.Level))
}

// StringToLogrusLogType will convert string to the right logrus level
func StringToLogrusLogType(logLevel string) logrus.Level {
	logLevelLowerCase := strings.ToLower(strings.TrimSpace(logLevel))
	switch logLevelLowerCase {
	case "error":
		return logrus.ErrorLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}

// WithRequestID store the request id in the context
// so every log of the request can be correlated
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKey{}, requestID)
}

// RequestID returns the request id stored in the context, empty if none
func RequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(contextKey{}).(string); ok {
		return requestID
	}

	return ""
}

// FromContext returns a log entry with the request id field when available
func FromContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(logrus.StandardLogger())

	if requestID := RequestID(ctx); requestID != "" {
		entry = entry.WithField("requestID", requestID)
	}

	return entry.WithContext(ctx)
}
