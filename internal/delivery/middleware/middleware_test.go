package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"billing/config"
	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRequestID(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "client id wins",
			headers: map[string]string{deliverycontext.HeaderXRequestID: "req-1", deliverycontext.HeaderCloudTrace: "abc/1;o=1"},
			want:    "req-1",
		},
		{
			name:    "falls back to the trace id",
			headers: map[string]string{deliverycontext.HeaderCloudTrace: "105445aa7843bc8bf206b12000100000/1;o=1"},
			want:    "105445aa7843bc8bf206b12000100000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			for k, v := range tt.headers {
				header.Set(k, v)
			}
			assert.Equal(t, tt.want, resolveRequestID(header))
		})
	}

	_, err := uuid.Parse(resolveRequestID(http.Header{}))
	assert.NoError(t, err)
}

func newLoggedServer(debug bool) (*echo.Echo, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process, NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/pricing", func(c echo.Context) error {
		actor := entity.MerchantRef(uuid.New())
		c.SetRequest(c.Request().WithContext(deliverycontext.WithActor(c.Request().Context(), actor)))

		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream failed")
	})

	return e, &buf
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestLoggerMiddleware_Debug(t *testing.T) {
	e, buf := newLoggedServer(true)

	rec := get(e, "/pricing")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-7", rec.Body.String())
	assert.Equal(t, "req-7", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, buf.String(), `"request_id":"req-7"`)
	assert.Contains(t, buf.String(), `"actor":"Merchant:`)

	buf.Reset()
	get(e, "/health")
	assert.Empty(t, buf.String())
}

func TestLoggerMiddleware_OnlyFailuresOutsideDebug(t *testing.T) {
	e, buf := newLoggedServer(false)

	get(e, "/pricing")
	assert.Empty(t, buf.String())

	get(e, "/boom")
	assert.Contains(t, buf.String(), `"status":502`)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}
