package handler

import (
	"net/http"

	"billing/internal/delivery/api/response"
	"billing/internal/domain/entity"
	"billing/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ActivityHandlerParams holds dependencies for ActivityHandler, injected by Fx.
type ActivityHandlerParams struct {
	fx.In

	ActivityUC usecase.ActivityUsecase
}

// ActivityHandler serves the admin audit trail.
type ActivityHandler struct {
	activityUC usecase.ActivityUsecase
}

// NewActivityHandler is the constructor for ActivityHandler
func NewActivityHandler(params ActivityHandlerParams) *ActivityHandler {
	return &ActivityHandler{activityUC: params.ActivityUC}
}

// ActivityQuery holds the listing filters.
type ActivityQuery struct {
	UserType string `query:"user_type" validate:"omitempty,oneof=Merchant Customer Admin"`
	Page     int    `query:"page" validate:"gte=0"`
	Limit    int    `query:"limit" validate:"gte=0"`
}

// ListActivityLogs handles GET /admin/activity-logs
func (h *ActivityHandler) ListActivityLogs(c echo.Context) error {
	var query ActivityQuery
	if err := bindAndValidate(c, &query); err != nil {
		return response.HandleAppError(c, err)
	}

	filter := entity.ActivityLogFilter{Page: query.Page, Limit: query.Limit}
	if query.UserType != "" {
		userType := entity.UserType(query.UserType)
		filter.UserType = &userType
	}

	page, err := h.activityUC.List(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// PurgeActivityLogs handles DELETE /admin/activity-logs
func (h *ActivityHandler) PurgeActivityLogs(c echo.Context) error {
	deleted, err := h.activityUC.PurgeAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": deleted})
}
