package handler

import (
	"net/http"

	"billing/internal/delivery/api/response"
	"billing/internal/domain/entity"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
}

// SubscriptionHandler serves plan purchases and the subscription ledger.
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionUC: params.SubscriptionUC}
}

// PurchaseRequest represents the request body for buying a plan
type PurchaseRequest struct {
	PlanID      uuid.UUID `json:"plan_id" validate:"required"`
	PaymentMode string    `json:"payment_mode" validate:"required,oneof=Online Cash"`
}

// AdminPurchaseRequest records a cash purchase on behalf of a merchant
type AdminPurchaseRequest struct {
	MerchantID uuid.UUID `json:"merchant_id" validate:"required"`
	PlanID     uuid.UUID `json:"plan_id" validate:"required"`
}

// VerifyPaymentRequest carries the checkout callback fields
type VerifyPaymentRequest struct {
	PlanID    uuid.UUID `json:"plan_id" validate:"required"`
	OrderID   string    `json:"razorpay_order_id" validate:"required"`
	PaymentID string    `json:"razorpay_payment_id" validate:"required"`
	Signature string    `json:"razorpay_signature" validate:"required,hexadecimal"`
}

// Purchase handles POST /merchant-subscription-payment and /customer-subscription-payment
func (h *SubscriptionHandler) Purchase(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PurchaseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.subscriptionUC.Purchase(c.Request().Context(), user, req.PlanID, entity.PaymentMode(req.PaymentMode))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// AdminPurchase handles POST /admin/merchant-subscription-payment
func (h *SubscriptionHandler) AdminPurchase(c echo.Context) error {
	var req AdminPurchaseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.subscriptionUC.Purchase(c.Request().Context(), entity.MerchantRef(req.MerchantID), req.PlanID, entity.PaymentModeCash)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// VerifyPayment handles POST .../payment-verification
func (h *SubscriptionHandler) VerifyPayment(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req VerifyPaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	entry, err := h.subscriptionUC.VerifyPayment(c.Request().Context(), user, &usecase.PaymentVerification{
		PlanID:    req.PlanID,
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entry)
}

// ConfirmCashPayment handles PATCH /admin/subscription-logs/:id/confirm-payment
func (h *SubscriptionHandler) ConfirmCashPayment(c echo.Context) error {
	logID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	entry, err := h.subscriptionUC.ConfirmCashPayment(c.Request().Context(), logID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entry)
}

// ListLogs handles GET /merchant/subscription-logs and /customer/subscription-logs
func (h *SubscriptionHandler) ListLogs(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	logs, err := h.subscriptionUC.ListLogs(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs)
}

// CheckoutQR handles GET /merchant-subscription-payment/:orderId/qr
func (h *SubscriptionHandler) CheckoutQR(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.subscriptionUC.CheckoutQR(c.Request().Context(), user, c.Param("orderId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
