package logger

import (
	"context"

	"github.com/ncobase/pager/nanoid"
)

type ctxKey string

const traceKey ctxKey = "trace_id"

// getTraceID gets a trace ID from the context.
func getTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(traceKey).(string); ok {
		return traceID
	}
	return ""
}

// SetTraceID sets a trace ID on the context.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceKey, traceID)
}

// EnsureTraceID ensures that a trace ID exists in the context.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	if traceID := getTraceID(ctx); traceID != "" {
		return ctx, traceID
	}
	traceID := nanoid.Lower(24)
	return SetTraceID(ctx, traceID), traceID
}
