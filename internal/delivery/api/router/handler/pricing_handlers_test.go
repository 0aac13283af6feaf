package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"billing/config"
	"billing/internal/domain/entity"
	mockUsecase "billing/internal/mocks/usecase"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCommissionHandler_Quote(t *testing.T) {
	merchantID := uuid.New()
	e, auth := newTestServer(t, merchantID, "merchant")
	pricingUC := mockUsecase.NewMockPricingUsecase(t)
	h := NewCommissionHandler(CommissionHandlerParams{
		CommissionUC: mockUsecase.NewMockCommissionUsecase(t),
		PricingUC:    pricingUC,
	})
	e.GET("/quote", h.Quote, auth.Authenticate, auth.RequireRole(entity.RoleMerchant))

	subtotal := decimal.RequireFromString("1250.50")
	pricingUC.On("QuoteOrderCharge", mock.Anything, merchantID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(subtotal)
	})).Return(&usecase.ChargeQuote{
		MerchantID: merchantID,
		Subtotal:   subtotal,
		Mode:       entity.PricingModelCommission,
		Commission: decimal.RequireFromString("100.04"),
	}, nil)

	rec := doRequest(e, http.MethodGet, "/quote?subtotal=1250.50", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data usecase.ChargeQuote `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, decimal.RequireFromString("100.04").Equal(body.Data.Commission))

	rec = doRequest(e, http.MethodGet, "/quote?subtotal=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDiscountHandler_ScopesMerchantRoutesToCaller(t *testing.T) {
	merchantID := uuid.New()
	e, auth := newTestServer(t, merchantID, "merchant")
	discountUC := mockUsecase.NewMockDiscountUsecase(t)
	h := NewDiscountHandler(DiscountHandlerParams{DiscountUC: discountUC})
	e.POST("/merchant/discounts", h.CreateMerchantDiscount, auth.Authenticate, auth.RequireRole(entity.RoleMerchant))
	e.DELETE("/merchant/discounts/:id", h.DeleteMerchantDiscount, auth.Authenticate, auth.RequireRole(entity.RoleMerchant))

	discountUC.On("CreateMerchantDiscount", mock.Anything, merchantID, mock.MatchedBy(func(in *usecase.MerchantDiscountInput) bool {
		// Status defaults to active when omitted.
		return in.Title == "Monsoon sale" && in.Status && in.DiscountType == entity.DiscountPercentage
	})).Return(&entity.MerchantDiscount{ID: uuid.New(), MerchantID: merchantID, Title: "Monsoon sale"}, nil)

	rec := doRequest(e, http.MethodPost, "/merchant/discounts", `{
		"title": "Monsoon sale",
		"discount_type": "Percentage",
		"value": "10",
		"max_discount": "50",
		"min_order_value": "200",
		"valid_from": "2026-07-01T00:00:00+05:30",
		"valid_to": "2026-07-31T23:59:59+05:30"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	discountID := uuid.New()
	discountUC.On("DeleteMerchantDiscount", mock.Anything, mock.MatchedBy(func(owner *uuid.UUID) bool {
		return owner != nil && *owner == merchantID
	}), discountID).Return(nil)

	rec = doRequest(e, http.MethodDelete, "/merchant/discounts/"+discountID.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDiscountHandler_AdminActsOnPathMerchant(t *testing.T) {
	adminID, merchantID := uuid.New(), uuid.New()
	e, auth := newTestServer(t, adminID, "admin")
	discountUC := mockUsecase.NewMockDiscountUsecase(t)
	h := NewDiscountHandler(DiscountHandlerParams{DiscountUC: discountUC})
	e.GET("/admin/merchants/:merchantId/discounts", h.ListMerchantDiscounts, auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
	e.DELETE("/admin/discounts/:id", h.DeleteMerchantDiscount, auth.Authenticate, auth.RequireRole(entity.RoleAdmin))

	discountUC.On("ListMerchantDiscounts", mock.Anything, merchantID).Return([]*entity.MerchantDiscount{}, nil)
	rec := doRequest(e, http.MethodGet, "/admin/merchants/"+merchantID.String()+"/discounts", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Admins skip the ownership check.
	discountID := uuid.New()
	discountUC.On("DeleteMerchantDiscount", mock.Anything, (*uuid.UUID)(nil), discountID).Return(nil)
	rec = doRequest(e, http.MethodDelete, "/admin/discounts/"+discountID.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/admin/merchants/not-a-uuid/discounts", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHomeHandler_Revenue(t *testing.T) {
	e, auth := newTestServer(t, uuid.New(), "admin")
	homeUC := mockUsecase.NewMockHomeUsecase(t)
	h := NewHomeHandler(HomeHandlerParams{
		HomeUC: homeUC,
		Config: &config.Config{Billing: &config.BillingConfig{Timezone: "Asia/Kolkata"}},
	})
	e.GET("/revenue", h.Revenue, auth.Authenticate, auth.RequireRole(entity.RoleAdmin))

	homeUC.On("RevenueSummaries", mock.Anything,
		mock.MatchedBy(func(from time.Time) bool { return from.Format(time.RFC3339) == "2026-08-01T00:00:00+05:30" }),
		mock.MatchedBy(func(to time.Time) bool { return to.Format(time.DateOnly) == "2026-08-07" }),
	).Return([]*entity.RevenueSummary{}, nil)

	rec := doRequest(e, http.MethodGet, "/revenue?from=2026-08-01&to=2026-08-07", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/revenue?from=01-08-2026&to=2026-08-07", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
