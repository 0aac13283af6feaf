package handler

import (
	"net/http"

	"billing/internal/delivery/api/response"
	"billing/internal/domain/entity"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// PlanHandlerParams holds dependencies for PlanHandler, injected by Fx.
type PlanHandlerParams struct {
	fx.In

	PlanUC usecase.PlanUsecase
}

// PlanHandler serves the subscription plan catalog.
type PlanHandler struct {
	planUC usecase.PlanUsecase
}

// NewPlanHandler is the constructor for PlanHandler
func NewPlanHandler(params PlanHandlerParams) *PlanHandler {
	return &PlanHandler{planUC: params.PlanUC}
}

// PlanRequest is the body of plan create and update requests.
type PlanRequest struct {
	Audience     string          `json:"audience" validate:"required,oneof=Merchant Customer"`
	Name         string          `json:"name" validate:"required,max=120"`
	Amount       decimal.Decimal `json:"amount"`
	DurationDays int             `json:"duration_days" validate:"required,gt=0"`
	TaxID        *uuid.UUID      `json:"tax_id"`
	Description  string          `json:"description" validate:"max=1000"`
	IsActive     *bool           `json:"is_active"`
}

func (r *PlanRequest) input() *usecase.PlanInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}

	return &usecase.PlanInput{
		Audience:     entity.UserType(r.Audience),
		Name:         r.Name,
		Amount:       r.Amount,
		DurationDays: r.DurationDays,
		TaxID:        r.TaxID,
		Description:  r.Description,
		IsActive:     active,
	}
}

// CreatePlan handles POST /admin/subscription-plans
func (h *PlanHandler) CreatePlan(c echo.Context) error {
	var req PlanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	plan, err := h.planUC.CreatePlan(c.Request().Context(), req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, plan)
}

// ListPlans handles GET /admin/subscription-plans?audience=
func (h *PlanHandler) ListPlans(c echo.Context) error {
	var audience *entity.UserType
	if raw := c.QueryParam("audience"); raw != "" {
		userType := entity.UserType(raw)
		audience = &userType
	}

	plans, err := h.planUC.ListPlans(c.Request().Context(), audience)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plans)
}

// GetPlan handles GET /admin/subscription-plans/:id
func (h *PlanHandler) GetPlan(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	plan, err := h.planUC.GetPlan(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plan)
}

// UpdatePlan handles PUT /admin/subscription-plans/:id
func (h *PlanHandler) UpdatePlan(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PlanRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	plan, err := h.planUC.UpdatePlan(c.Request().Context(), id, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plan)
}

// DeletePlan handles DELETE /admin/subscription-plans/:id
func (h *PlanHandler) DeletePlan(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.planUC.DeletePlan(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return messageOK(c, "Subscription plan deleted")
}
