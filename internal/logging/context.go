// svclog - Process-wide structured logging bootstrap
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Context keys for logging.
type contextKey string

const (
	// correlationIDKey is the context key for correlation IDs.
	correlationIDKey contextKey = "correlation_id"

	// requestIDKey is the context key for HTTP request IDs.
	requestIDKey contextKey = "request_id"

	// threadNameKey is the context key for the name shown as thread_name.
	threadNameKey contextKey = "thread_name"

	// callerPCKey carries the program counter of a call site recorded
	// elsewhere, such as an slog.Record.
	callerPCKey contextKey = "caller_pc"
)

// GenerateCorrelationID creates a new unique correlation ID.
// Returns the first 8 characters of a UUID for readability.
func GenerateCorrelationID() string {
	return uuid.New().String()[:8]
}

// GenerateRequestID creates a new unique request ID.
func GenerateRequestID() string {
	return uuid.New().String()
}

// ContextWithCorrelationID returns a new context with the given correlation ID.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationIDFromContext retrieves the correlation ID from context.
// Returns empty string if not present.
func CorrelationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithRequestID returns a new context with the given request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext retrieves the request ID from context.
// Returns empty string if not present.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithThreadName names the work running under ctx. Events logged
// through Ctx(ctx) show the name as thread_name.
//
//	ctx = logging.ContextWithThreadName(ctx, "heartbeat")
//	logging.Ctx(ctx).Info().Msg("tick")
func ContextWithThreadName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, threadNameKey, name)
}

// ThreadNameFromContext returns the thread name bound to ctx, or "".
func ThreadNameFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if name, ok := ctx.Value(threadNameKey).(string); ok {
		return name
	}
	return ""
}

func contextWithCallerPC(ctx context.Context, pc uintptr) context.Context {
	return context.WithValue(ctx, callerPCKey, pc)
}

func callerPCFromContext(ctx context.Context) (uintptr, bool) {
	if ctx == nil {
		return 0, false
	}
	pc, ok := ctx.Value(callerPCKey).(uintptr)
	return pc, ok && pc != 0
}

// Ctx returns a logger bound to ctx with correlation_id and request_id added
// when present. The formatter reads the thread name from the bound context.
//
//	logging.Ctx(ctx).Info().Msg("Processing request")
func Ctx(ctx context.Context) *zerolog.Logger {
	logger := CtxWith(ctx).Logger()
	return &logger
}

// CtxWith returns a logger context builder with context values pre-populated.
//
//	logger := logging.CtxWith(ctx).Str("user_id", uid).Logger()
func CtxWith(ctx context.Context) zerolog.Context {
	logCtx := Logger().With().Ctx(ctx)

	if correlationID := CorrelationIDFromContext(ctx); correlationID != "" {
		logCtx = logCtx.Str("correlation_id", correlationID)
	}
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		logCtx = logCtx.Str("request_id", requestID)
	}

	return logCtx
}
