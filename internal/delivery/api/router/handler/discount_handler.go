package handler

import (
	"net/http"
	"time"

	"billing/internal/delivery/api/response"
	"billing/internal/domain/entity"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// DiscountHandlerParams holds dependencies for DiscountHandler, injected by Fx.
type DiscountHandlerParams struct {
	fx.In

	DiscountUC usecase.DiscountUsecase
}

// DiscountHandler serves discounts and promo codes for admins and merchants.
// Admin routes name the merchant in the path; merchant routes act on the caller's own store.
type DiscountHandler struct {
	discountUC usecase.DiscountUsecase
}

// NewDiscountHandler is the constructor for DiscountHandler
func NewDiscountHandler(params DiscountHandlerParams) *DiscountHandler {
	return &DiscountHandler{discountUC: params.DiscountUC}
}

// TermsRequest holds the fields shared by every discount body.
type TermsRequest struct {
	DiscountType  string          `json:"discount_type" validate:"required,oneof=Flat Percentage"`
	Value         decimal.Decimal `json:"value"`
	MaxDiscount   decimal.Decimal `json:"max_discount"`
	MinOrderValue decimal.Decimal `json:"min_order_value"`
	ValidFrom     time.Time       `json:"valid_from" validate:"required"`
	ValidTo       time.Time       `json:"valid_to" validate:"required"`
	Status        *bool           `json:"status"`
}

func (r *TermsRequest) terms() entity.DiscountTerms {
	status := true
	if r.Status != nil {
		status = *r.Status
	}

	return entity.DiscountTerms{
		DiscountType:  entity.DiscountType(r.DiscountType),
		Value:         r.Value,
		MaxDiscount:   r.MaxDiscount,
		MinOrderValue: r.MinOrderValue,
		ValidFrom:     r.ValidFrom,
		ValidTo:       r.ValidTo,
		Status:        status,
	}
}

// MerchantDiscountRequest is the body of merchant discount create and update requests
type MerchantDiscountRequest struct {
	Title string `json:"title" validate:"required,max=120"`
	TermsRequest
}

// ProductDiscountRequest is the body of a product discount create request
type ProductDiscountRequest struct {
	Title      string      `json:"title" validate:"required,max=120"`
	ProductIDs []uuid.UUID `json:"product_ids" validate:"required,min=1"`
	TermsRequest
}

// PromoCodeRequest is the body of promo code create and update requests
type PromoCodeRequest struct {
	Code string `json:"code" validate:"required,alphanum,min=3,max=32"`
	TermsRequest
}

// StatusRequest toggles a discount on or off
type StatusRequest struct {
	Status *bool `json:"status" validate:"required"`
}

// merchantScope resolves the merchant a discount route acts on: the path
// parameter on admin routes, the caller on merchant routes.
func merchantScope(c echo.Context) (uuid.UUID, error) {
	if c.Param("merchantId") != "" {
		return uuidParam(c, "merchantId")
	}

	user, err := currentUser(c)
	if err != nil {
		return uuid.Nil, err
	}

	return user.ID, nil
}

// ownerScope is the ownership filter for item routes: nil for admins.
func ownerScope(c echo.Context) (*uuid.UUID, error) {
	user, err := currentUser(c)
	if err != nil {
		return nil, err
	}
	if !user.IsMerchant() {
		return nil, nil
	}

	return &user.ID, nil
}

// CreateMerchantDiscount handles POST /admin/merchants/:merchantId/discounts and /merchant/discounts
func (h *DiscountHandler) CreateMerchantDiscount(c echo.Context) error {
	merchantID, err := merchantScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req MerchantDiscountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	discount, err := h.discountUC.CreateMerchantDiscount(c.Request().Context(), merchantID, &usecase.MerchantDiscountInput{
		Title:         req.Title,
		DiscountTerms: req.terms(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, discount)
}

// ListMerchantDiscounts handles GET /admin/merchants/:merchantId/discounts and /merchant/discounts
func (h *DiscountHandler) ListMerchantDiscounts(c echo.Context) error {
	merchantID, err := merchantScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	discounts, err := h.discountUC.ListMerchantDiscounts(c.Request().Context(), merchantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, discounts)
}

// GetMerchantDiscount handles GET /merchant/discounts/:id
func (h *DiscountHandler) GetMerchantDiscount(c echo.Context) error {
	owner, id, err := h.itemScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	discount, err := h.discountUC.GetMerchantDiscount(c.Request().Context(), owner, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, discount)
}

// UpdateMerchantDiscount handles PUT /admin/discounts/:id and /merchant/discounts/:id
func (h *DiscountHandler) UpdateMerchantDiscount(c echo.Context) error {
	owner, id, err := h.itemScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req MerchantDiscountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	discount, err := h.discountUC.UpdateMerchantDiscount(c.Request().Context(), owner, id, &usecase.MerchantDiscountInput{
		Title:         req.Title,
		DiscountTerms: req.terms(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, discount)
}

// SetMerchantDiscountStatus handles PATCH /merchant/discounts/:id/status
func (h *DiscountHandler) SetMerchantDiscountStatus(c echo.Context) error {
	owner, id, err := h.itemScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req StatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.discountUC.SetMerchantDiscountStatus(c.Request().Context(), owner, id, *req.Status); err != nil {
		return response.HandleAppError(c, err)
	}

	return messageOK(c, "Discount status updated")
}

// DeleteMerchantDiscount handles DELETE /admin/discounts/:id and /merchant/discounts/:id
func (h *DiscountHandler) DeleteMerchantDiscount(c echo.Context) error {
	owner, id, err := h.itemScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.discountUC.DeleteMerchantDiscount(c.Request().Context(), owner, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return messageOK(c, "Discount deleted")
}

// CreateProductDiscount handles POST /admin/merchants/:merchantId/product-discounts and /merchant/product-discounts
func (h *DiscountHandler) CreateProductDiscount(c echo.Context) error {
	merchantID, err := merchantScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ProductDiscountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	discount, err := h.discountUC.CreateProductDiscount(c.Request().Context(), merchantID, &usecase.ProductDiscountInput{
		Title:         req.Title,
		ProductIDs:    req.ProductIDs,
		DiscountTerms: req.terms(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, discount)
}

// DeleteProductDiscount handles DELETE /admin/product-discounts/:id and /merchant/product-discounts/:id
func (h *DiscountHandler) DeleteProductDiscount(c echo.Context) error {
	owner, id, err := h.itemScope(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.discountUC.DeleteProductDiscount(c.Request().Context(), owner, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return messageOK(c, "Product discount deleted")
}

// CreatePromoCode handles POST /admin/promo-codes
func (h *DiscountHandler) CreatePromoCode(c echo.Context) error {
	var req PromoCodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	code, err := h.discountUC.CreatePromoCode(c.Request().Context(), &usecase.PromoCodeInput{
		Code:          req.Code,
		DiscountTerms: req.terms(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, code)
}

// ListPromoCodes handles GET /admin/promo-codes
func (h *DiscountHandler) ListPromoCodes(c echo.Context) error {
	codes, err := h.discountUC.ListPromoCodes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, codes)
}

// UpdatePromoCode handles PUT /admin/promo-codes/:id
func (h *DiscountHandler) UpdatePromoCode(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PromoCodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	code, err := h.discountUC.UpdatePromoCode(c.Request().Context(), id, &usecase.PromoCodeInput{
		Code:          req.Code,
		DiscountTerms: req.terms(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, code)
}

// DeletePromoCode handles DELETE /admin/promo-codes/:id
func (h *DiscountHandler) DeletePromoCode(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.discountUC.DeletePromoCode(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return messageOK(c, "Promo code deleted")
}

func (h *DiscountHandler) itemScope(c echo.Context) (*uuid.UUID, uuid.UUID, error) {
	owner, err := ownerScope(c)
	if err != nil {
		return nil, uuid.Nil, err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return nil, uuid.Nil, err
	}

	return owner, id, nil
}
