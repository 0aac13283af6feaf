package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	mockUsecase "billing/internal/mocks/usecase"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func TestSubscriptionHandler_Purchase(t *testing.T) {
	merchantID := uuid.New()
	e, auth := newTestServer(t, merchantID, "merchant")
	subscriptionUC := mockUsecase.NewMockSubscriptionUsecase(t)
	h := NewSubscriptionHandler(SubscriptionHandlerParams{SubscriptionUC: subscriptionUC})
	e.POST("/pay", h.Purchase, auth.Authenticate, auth.RequireRole(entity.RoleMerchant))

	planID := uuid.New()
	subscriptionUC.On("Purchase", mock.Anything, entity.MerchantRef(merchantID), planID, entity.PaymentModeOnline).
		Return(&usecase.PurchaseResult{
			Mode:  entity.PaymentModeOnline,
			Order: &entity.GatewayOrder{OrderID: "order_Q1w2e3r4", Amount: decimal.NewFromInt(500), Currency: "INR"},
		}, nil)

	rec := doRequest(e, http.MethodPost, "/pay", `{"plan_id":"`+planID.String()+`","payment_mode":"Online"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data usecase.PurchaseResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "order_Q1w2e3r4", body.Data.Order.OrderID)
}

func TestSubscriptionHandler_Purchase_ValidationDetails(t *testing.T) {
	e, auth := newTestServer(t, uuid.New(), "merchant")
	h := NewSubscriptionHandler(SubscriptionHandlerParams{SubscriptionUC: mockUsecase.NewMockSubscriptionUsecase(t)})
	e.POST("/pay", h.Purchase, auth.Authenticate, auth.RequireRole(entity.RoleMerchant))

	rec := doRequest(e, http.MethodPost, "/pay", `{"plan_id":"`+uuid.New().String()+`","payment_mode":"Card"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Contains(t, string(body.Error.Details), `"field":"payment_mode"`)
}

func TestSubscriptionHandler_VerifyPayment_InvalidSignature(t *testing.T) {
	customerID := uuid.New()
	e, auth := newTestServer(t, customerID, "customer")
	subscriptionUC := mockUsecase.NewMockSubscriptionUsecase(t)
	h := NewSubscriptionHandler(SubscriptionHandlerParams{SubscriptionUC: subscriptionUC})
	e.POST("/verify", h.VerifyPayment, auth.Authenticate, auth.RequireRole(entity.RoleCustomer))

	planID := uuid.New()
	subscriptionUC.On("VerifyPayment", mock.Anything, entity.CustomerRef(customerID), &usecase.PaymentVerification{
		PlanID:    planID,
		OrderID:   "order_Q1w2e3r4",
		PaymentID: "pay_Z9y8x7w6",
		Signature: "deadbeef",
	}).Return(nil, errors.Wrap(domainerrors.ErrInvalidPaymentSignature, "signature mismatch"))

	rec := doRequest(e, http.MethodPost, "/verify", `{"plan_id":"`+planID.String()+
		`","razorpay_order_id":"order_Q1w2e3r4","razorpay_payment_id":"pay_Z9y8x7w6","razorpay_signature":"deadbeef"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domainerrors.ErrInvalidPaymentSignature.ErrorCode(), body.Error.Code)
}

func TestSubscriptionHandler_CheckoutQR(t *testing.T) {
	merchantID := uuid.New()
	e, auth := newTestServer(t, merchantID, "merchant")
	subscriptionUC := mockUsecase.NewMockSubscriptionUsecase(t)
	h := NewSubscriptionHandler(SubscriptionHandlerParams{SubscriptionUC: subscriptionUC})
	e.GET("/orders/:orderId/qr", h.CheckoutQR, auth.Authenticate, auth.RequireRole(entity.RoleMerchant))

	png := []byte{0x89, 'P', 'N', 'G'}
	subscriptionUC.On("CheckoutQR", mock.Anything, entity.MerchantRef(merchantID), "order_Q1w2e3r4").Return(png, nil)

	rec := doRequest(e, http.MethodGet, "/orders/order_Q1w2e3r4/qr", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestSubscriptionHandler_RoleMismatch(t *testing.T) {
	e, auth := newTestServer(t, uuid.New(), "customer")
	h := NewSubscriptionHandler(SubscriptionHandlerParams{SubscriptionUC: mockUsecase.NewMockSubscriptionUsecase(t)})
	e.GET("/logs", h.ListLogs, auth.Authenticate, auth.RequireRole(entity.RoleMerchant))

	rec := doRequest(e, http.MethodGet, "/logs", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
