package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"billing/config"
	deliverycontext "billing/internal/delivery/context"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request. Outside debug mode
// only failed requests are logged.
type LoggerMiddleware struct {
	logger     *slog.Logger
	debug      bool
	quietPaths map[string]struct{}
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	quiet := map[string]struct{}{"/health": {}}
	if config.Metrics != nil && config.Metrics.Path != "" {
		quiet[config.Metrics.Path] = struct{}{}
	}

	return &LoggerMiddleware{
		logger:     logger,
		debug:      config.Env.Debug,
		quietPaths: quiet,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		if _, quiet := m.quietPaths[c.Path()]; !quiet {
			m.logRequest(c, start, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	// An error not yet written by the error handler still ends as a 5xx
	status := res.Status
	if err != nil && !res.Committed {
		status = statusFromError(err)
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}
	if !m.debug && level < slog.LevelWarn {
		return
	}

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if actor, ok := deliverycontext.GetActor(req.Context()); ok {
		fields = append(fields, slog.String("actor", actor.String()))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
		LogAttrs(req.Context(), level, "HTTP Request", fields...)
}

func statusFromError(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}
