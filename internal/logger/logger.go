package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type contextKey string

// RequestIDKey is the context key under which the request id middleware stores the id
const RequestIDKey contextKey = "request_id"

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Setup configures the standard logrus logger with JSON output and the given level
func Setup(level string, out io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(out)

	switch strings.ToLower(level) {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "warn", "warning":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// WithRequestID stores a request id in ctx
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// RequestID returns the request id stored in ctx, if any
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// WithContext creates a logger carrying the request id found in ctx
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if id := RequestID(ctx); id != "" {
		logger.Entry = logger.Entry.WithField("request_id", id)
	}
	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches err under the "error" field
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
