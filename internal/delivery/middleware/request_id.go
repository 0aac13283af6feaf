package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "billing/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxRequestIDLength = 128

// RequestIDMiddleware assigns every request an id and a logger tagged with it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process resolves the request id and installs the request-scoped logger.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := resolveRequestID(c.Request().Header)

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// resolveRequestID prefers the client's X-Request-Id, then the trace id of a
// Google front end ("TRACE_ID/SPAN_ID;o=1"), then a new UUID.
func resolveRequestID(header interface{ Get(string) string }) string {
	if id := strings.TrimSpace(header.Get(deliverycontext.HeaderXRequestID)); id != "" && len(id) <= maxRequestIDLength {
		return id
	}

	if trace := header.Get(deliverycontext.HeaderCloudTrace); trace != "" {
		traceID, _, _ := strings.Cut(trace, "/")
		if traceID != "" && len(traceID) <= maxRequestIDLength {
			return traceID
		}
	}

	return uuid.New().String()
}
