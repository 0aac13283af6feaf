// Package metrics exposes Prometheus metrics for the HTTP servers and batch jobs.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "billing"

// Metrics owns a private registry so every process (and test) starts clean.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	jobRuns         *prometheus.CounterVec
	jobDuration     *prometheus.HistogramVec
	jobItems        *prometheus.CounterVec
	events          *prometheus.CounterVec
}

// New registers the collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		jobRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_runs_total",
			Help:      "Batch job runs by outcome",
		}, []string{"job", "outcome"}),
		jobDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "job_duration_seconds",
			Help:      "Duration of batch job runs in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60, 300},
		}, []string{"job"}),
		jobItems: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_items_total",
			Help:      "Items processed by batch jobs",
		}, []string{"job", "kind"}),
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_handled_total",
			Help:      "Billing events handled by the worker",
		}, []string{"type", "outcome"}),
	}
}

// Middleware counts requests and observes latency per route template.
func (m *Metrics) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		// The error handler runs after the middleware chain, so derive the status from err.
		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = http.StatusInternalServerError
			var httpErr *echo.HTTPError
			var appErr interface{ HTTPCode() int }
			switch {
			case errors.As(err, &httpErr):
				status = httpErr.Code
			case errors.As(err, &appErr):
				status = appErr.HTTPCode()
			}
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request().Method

		m.requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry}))
}

// ObserveJob records one run of a batch job.
func (m *Metrics) ObserveJob(job string, started time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}

	m.jobRuns.WithLabelValues(job, outcome).Inc()
	m.jobDuration.WithLabelValues(job).Observe(time.Since(started).Seconds())
}

// AddJobItems adds n processed items of a kind (deleted, failed, upserted...) to a job.
func (m *Metrics) AddJobItems(job, kind string, n int) {
	if n <= 0 {
		return
	}

	m.jobItems.WithLabelValues(job, kind).Add(float64(n))
}

// ObserveEvent records the outcome of handling one pushed billing event.
func (m *Metrics) ObserveEvent(eventType, outcome string) {
	m.events.WithLabelValues(eventType, outcome).Inc()
}

// RegisterDB exports connection pool statistics of a database handle.
func (m *Metrics) RegisterDB(db *sql.DB, name string) error {
	if err := m.registry.Register(collectors.NewDBStatsCollector(db, name)); err != nil {
		return errors.Wrapf(err, "failed to register %s pool stats", name)
	}

	return nil
}
