// Package context carries request-scoped values (request id, logger, acting account)
// from the HTTP edge down to the usecases.
package context

import (
	"context"
	"log/slog"

	"billing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	keyRequestID ctxKey = iota
	keyLogger
	keyActor
)

const (
	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	// HeaderCloudTrace is set by Google front ends on push and scheduler calls.
	HeaderCloudTrace = "X-Cloud-Trace-Context"

	echoKeyRequestID = "request_id"
)

// GetRequestID returns the request ID stored on the echo.Context, or a fresh one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the request ID on the echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestIDFromContext returns the request ID or an empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(keyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to the given one.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// WithActor records the account the caller acts as.
func WithActor(ctx context.Context, actor entity.UserRef) context.Context {
	return context.WithValue(ctx, keyActor, actor)
}

// GetActor returns the acting account, if the request was authenticated.
func GetActor(ctx context.Context) (entity.UserRef, bool) {
	actor, ok := ctx.Value(keyActor).(entity.UserRef)

	return actor, ok
}
