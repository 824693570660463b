package logger

import (
	"context"
	"io"
	"os"

	"github.com/ncobase/pager/config"
	"github.com/sirupsen/logrus"
)

// Logger wraps a logrus logger with context-aware, key/value logging.
type Logger struct {
	l *logrus.Logger
}

var std = &Logger{l: logrus.New()}

// StdLogger returns the shared standard logger.
func StdLogger() *Logger {
	return std
}

// New configures the standard logger from config and returns a cleanup
// function releasing any opened output file.
func New(cfg *config.Logger) (func(), error) {
	cleanup := func() {}
	if cfg == nil {
		return cleanup, nil
	}

	if cfg.Level > 0 {
		std.l.SetLevel(logrus.Level(cfg.Level))
	}

	switch cfg.Format {
	case "json":
		std.l.SetFormatter(&logrus.JSONFormatter{})
	default:
		std.l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if cfg.Output == "file" && cfg.OutputFile != "" {
		f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return cleanup, err
		}
		std.l.SetOutput(io.MultiWriter(os.Stdout, f))
		cleanup = func() { _ = f.Close() }
	}

	return cleanup, nil
}

// Debug logs a message at debug level with key/value fields.
func (x *Logger) Debug(ctx context.Context, msg string, kv ...any) {
	x.entry(ctx, kv).Debug(msg)
}

// Info logs a message at info level with key/value fields.
func (x *Logger) Info(ctx context.Context, msg string, kv ...any) {
	x.entry(ctx, kv).Info(msg)
}

// Warn logs a message at warn level with key/value fields.
func (x *Logger) Warn(ctx context.Context, msg string, kv ...any) {
	x.entry(ctx, kv).Warn(msg)
}

// Error logs a message at error level with key/value fields.
func (x *Logger) Error(ctx context.Context, msg string, kv ...any) {
	x.entry(ctx, kv).Error(msg)
}

// entry builds a logrus entry carrying the trace ID and paired fields.
// A trailing unpaired value is recorded under "extra".
func (x *Logger) entry(ctx context.Context, kv []any) *logrus.Entry {
	fields := logrus.Fields{}
	if traceID := getTraceID(ctx); traceID != "" {
		fields["trace_id"] = traceID
	}
	for i := 0; i+1 < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			continue
		}
		fields[k] = kv[i+1]
	}
	if len(kv)%2 != 0 {
		fields["extra"] = kv[len(kv)-1]
	}
	return x.l.WithFields(fields)
}
