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

// CommissionHandlerParams holds dependencies for CommissionHandler, injected by Fx.
type CommissionHandlerParams struct {
	fx.In

	CommissionUC usecase.CommissionUsecase
	PricingUC    usecase.PricingUsecase
}

// CommissionHandler serves commission administration and pricing lookups.
type CommissionHandler struct {
	commissionUC usecase.CommissionUsecase
	pricingUC    usecase.PricingUsecase
}

// NewCommissionHandler is the constructor for CommissionHandler
func NewCommissionHandler(params CommissionHandlerParams) *CommissionHandler {
	return &CommissionHandler{
		commissionUC: params.CommissionUC,
		pricingUC:    params.PricingUC,
	}
}

// AddCommissionRequest represents the request body for putting a merchant on commission
type AddCommissionRequest struct {
	MerchantID      uuid.UUID       `json:"merchant_id" validate:"required"`
	CommissionType  string          `json:"commission_type" validate:"required,oneof=Fixed Percentage"`
	CommissionValue decimal.Decimal `json:"commission_value"`
}

// EditCommissionRequest represents the request body for editing a commission
type EditCommissionRequest struct {
	CommissionType  string          `json:"commission_type" validate:"required,oneof=Fixed Percentage"`
	CommissionValue decimal.Decimal `json:"commission_value"`
}

// AddCommission handles POST /admin/commissions
func (h *CommissionHandler) AddCommission(c echo.Context) error {
	var req AddCommissionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	commission, err := h.commissionUC.AddCommission(c.Request().Context(), req.MerchantID, &usecase.CommissionInput{
		CommissionType:  entity.CommissionType(req.CommissionType),
		CommissionValue: req.CommissionValue,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, commission)
}

// EditCommission handles PUT /admin/commissions/:id
func (h *CommissionHandler) EditCommission(c echo.Context) error {
	commissionID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req EditCommissionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	commission, err := h.commissionUC.EditCommission(c.Request().Context(), commissionID, &usecase.CommissionInput{
		CommissionType:  entity.CommissionType(req.CommissionType),
		CommissionValue: req.CommissionValue,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, commission)
}

// GetCommission handles GET /admin/merchants/:merchantId/commission
func (h *CommissionHandler) GetCommission(c echo.Context) error {
	merchantID, err := uuidParam(c, "merchantId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	commission, err := h.commissionUC.GetCommission(c.Request().Context(), merchantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, commission)
}

// MerchantPricing handles GET /admin/merchants/:merchantId/pricing
func (h *CommissionHandler) MerchantPricing(c echo.Context) error {
	merchantID, err := uuidParam(c, "merchantId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	state, err := h.pricingUC.CurrentPricing(c.Request().Context(), entity.MerchantRef(merchantID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

// MyPricing handles GET /merchant/pricing and /customer/pricing
func (h *CommissionHandler) MyPricing(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	state, err := h.pricingUC.CurrentPricing(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

// QuoteRequest carries the order subtotal to price.
type QuoteRequest struct {
	Subtotal string `query:"subtotal" validate:"required,numeric"`
}

// Quote handles GET /merchant/pricing/quote?subtotal=
func (h *CommissionHandler) Quote(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req QuoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	subtotal, err := decimal.NewFromString(req.Subtotal)
	if err != nil {
		return response.BadRequest(c, "INVALID_SUBTOTAL", "Subtotal must be a decimal number")
	}

	quote, err := h.pricingUC.QuoteOrderCharge(c.Request().Context(), user.ID, subtotal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}
