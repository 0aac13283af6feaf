package handler

import (
	"log/slog"
	"net/http"
	"time"

	"billing/config"
	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/constants"
	"billing/internal/infra/metrics"
	"billing/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	jobExpirySweep   = "expiry_sweep"
	jobRevenueRollup = "revenue_rollup"
	jobActivityPurge = "activity_purge"
)

// JobHandler runs the scheduled batch jobs. The scheduler retries a run that
// answers with a 5xx; every job is safe to run again.
type JobHandler struct {
	verifyAuth bool
	audience   string
	logger     *slog.Logger
	expiryUC   usecase.ExpiryUsecase
	revenueUC  usecase.RevenueUsecase
	metrics    *metrics.Metrics
}

// JobHandlerParams holds dependencies for the JobHandler
type JobHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	ExpiryUC  usecase.ExpiryUsecase
	RevenueUC usecase.RevenueUsecase
	Metrics   *metrics.Metrics
}

// NewJobHandler creates the scheduler trigger handler
func NewJobHandler(params JobHandlerParams) *JobHandler {
	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &JobHandler{
		verifyAuth: params.Config.Env.Env != constants.EnvDevelop,
		audience:   audience,
		logger:     params.Logger,
		expiryUC:   params.ExpiryUC,
		revenueUC:  params.RevenueUC,
		metrics:    params.Metrics,
	}
}

// Authorize rejects scheduler calls without a valid OIDC token outside development.
func (h *JobHandler) Authorize(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.verifyAuth {
			if err := verifyOIDCToken(c.Request(), h.audience); err != nil {
				h.logger.Warn("[Worker] Invalid scheduler token", slog.String("path", c.Path()), slog.Any("error", err))

				return c.NoContent(http.StatusUnauthorized)
			}
		}

		return next(c)
	}
}

// ExpirySweep handles POST /jobs/expiry-sweep
func (h *JobHandler) ExpirySweep(c echo.Context) error {
	started := time.Now()
	report, err := h.expiryUC.Sweep(c.Request().Context())
	h.metrics.ObserveJob(jobExpirySweep, started, err)
	if report != nil {
		h.metrics.AddJobItems(jobExpirySweep, "deleted", int(report.Deleted()))
		h.metrics.AddJobItems(jobExpirySweep, "failed", int(report.Failed))
	}

	return h.respond(c, jobExpirySweep, report, err)
}

// RevenueRollup handles POST /jobs/revenue-rollup
func (h *JobHandler) RevenueRollup(c echo.Context) error {
	started := time.Now()
	report, err := h.revenueUC.Rollup(c.Request().Context())
	h.metrics.ObserveJob(jobRevenueRollup, started, err)
	if report != nil {
		h.metrics.AddJobItems(jobRevenueRollup, "upserted", report.MerchantSummaries+1)
		h.metrics.AddJobItems(jobRevenueRollup, "reset", int(report.MerchantsReset))
	}

	return h.respond(c, jobRevenueRollup, report, err)
}

// ActivityPurge handles POST /jobs/activity-purge
func (h *JobHandler) ActivityPurge(c echo.Context) error {
	started := time.Now()
	deleted, err := h.expiryUC.PurgeActivityLogs(c.Request().Context())
	h.metrics.ObserveJob(jobActivityPurge, started, err)
	h.metrics.AddJobItems(jobActivityPurge, "deleted", int(deleted))

	return h.respond(c, jobActivityPurge, map[string]int64{"deleted": deleted}, err)
}

func (h *JobHandler) respond(c echo.Context, job string, report any, err error) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
	if err != nil {
		logger.Error("[Worker] Job finished with errors", slog.String("job", job), slog.Any("error", err))

		return c.JSON(http.StatusInternalServerError, map[string]any{
			"job":    job,
			"report": report,
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"job":    job,
		"report": report,
	})
}
