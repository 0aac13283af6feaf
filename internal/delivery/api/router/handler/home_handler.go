package handler

import (
	"net/http"
	"time"

	"billing/config"
	"billing/internal/delivery/api/response"
	"billing/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HomeHandlerParams holds dependencies for HomeHandler, injected by Fx.
type HomeHandlerParams struct {
	fx.In

	HomeUC usecase.HomeUsecase
	Config *config.Config
}

// HomeHandler serves the home screen figures.
type HomeHandler struct {
	homeUC   usecase.HomeUsecase
	location *time.Location
}

// NewHomeHandler is the constructor for HomeHandler
func NewHomeHandler(params HomeHandlerParams) *HomeHandler {
	return &HomeHandler{
		homeUC:   params.HomeUC,
		location: params.Config.Billing.Location(),
	}
}

// Realtime handles GET /admin/home/realtime
func (h *HomeHandler) Realtime(c echo.Context) error {
	stats, err := h.homeUC.Realtime(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// Revenue handles GET /admin/home/revenue?from=&to=
func (h *HomeHandler) Revenue(c echo.Context) error {
	from, to, err := dateRange(c, h.location)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summaries, err := h.homeUC.RevenueSummaries(c.Request().Context(), from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summaries)
}

// MerchantRevenue handles GET /merchant/home/revenue?from=&to=
func (h *HomeHandler) MerchantRevenue(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	from, to, err := dateRange(c, h.location)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summaries, err := h.homeUC.MerchantRevenueSummaries(c.Request().Context(), user.ID, from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summaries)
}
