package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Middleware(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware)
	e.GET("/plans/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	for range 3 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plans/42", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	assert.InDelta(t, 3, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/plans/:id", "204")), 0)
}

func TestMetrics_ObserveJob(t *testing.T) {
	m := New()

	m.ObserveJob("expiry_sweep", time.Now(), nil)
	m.ObserveJob("expiry_sweep", time.Now(), errors.New("boom"))
	m.AddJobItems("expiry_sweep", "deleted", 4)
	m.AddJobItems("expiry_sweep", "failed", 0)

	assert.InDelta(t, 1, testutil.ToFloat64(m.jobRuns.WithLabelValues("expiry_sweep", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.jobRuns.WithLabelValues("expiry_sweep", "error")), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(m.jobItems.WithLabelValues("expiry_sweep", "deleted")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveEvent("subscription.activated", "ok")

	e := echo.New()
	e.GET("/metrics", m.Handler())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "billing_events_handled_total"))
}
