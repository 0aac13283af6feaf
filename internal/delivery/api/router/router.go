// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"billing/config"
	"billing/internal/delivery/api/middleware"
	"billing/internal/delivery/api/router/handler"
	"billing/internal/domain/entity"
	"billing/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CommissionHandler   *handler.CommissionHandler
	PlanHandler         *handler.PlanHandler
	SubscriptionHandler *handler.SubscriptionHandler
	DiscountHandler     *handler.DiscountHandler
	ActivityHandler     *handler.ActivityHandler
	HomeHandler         *handler.HomeHandler
	DeviceHandler       *handler.DeviceHandler
	WebhookHandler      *handler.WebhookHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Metrics             *metrics.Metrics
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	commissionHandler   *handler.CommissionHandler
	planHandler         *handler.PlanHandler
	subscriptionHandler *handler.SubscriptionHandler
	discountHandler     *handler.DiscountHandler
	activityHandler     *handler.ActivityHandler
	homeHandler         *handler.HomeHandler
	deviceHandler       *handler.DeviceHandler
	webhookHandler      *handler.WebhookHandler
	authMiddleware      *middleware.AuthMiddleware
	metrics             *metrics.Metrics
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		commissionHandler:   params.CommissionHandler,
		planHandler:         params.PlanHandler,
		subscriptionHandler: params.SubscriptionHandler,
		discountHandler:     params.DiscountHandler,
		activityHandler:     params.ActivityHandler,
		homeHandler:         params.HomeHandler,
		deviceHandler:       params.DeviceHandler,
		webhookHandler:      params.WebhookHandler,
		authMiddleware:      params.AuthMiddleware,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, r.metrics.Handler())
	}

	// Messaging platform webhook, authenticated by the verify token handshake
	e.GET("/webhook", r.webhookHandler.Verify)
	e.POST("/webhook", r.webhookHandler.Receive)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication
	apiV1.GET("/me", handler.WhoAmI)

	merchantOnly := r.authMiddleware.RequireRole(entity.RoleMerchant)
	customerOnly := r.authMiddleware.RequireRole(entity.RoleCustomer)

	r.registerAdminRoutes(apiV1.Group("/admin", r.authMiddleware.RequireRole(entity.RoleAdmin)))
	r.registerMerchantRoutes(apiV1.Group("/merchant", merchantOnly), apiV1.Group("/merchant-subscription-payment", merchantOnly))
	r.registerCustomerRoutes(apiV1.Group("/customer", customerOnly), apiV1.Group("/customer-subscription-payment", customerOnly))

	// Device management routes
	devicesGroup := apiV1.Group("/devices", r.authMiddleware.RequireRole(entity.RoleMerchant, entity.RoleCustomer))
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetDevices)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}

func (r *router) registerAdminRoutes(admin *echo.Group) {
	// Commissions and pricing
	admin.POST("/commissions", r.commissionHandler.AddCommission)
	admin.PUT("/commissions/:id", r.commissionHandler.EditCommission)
	admin.GET("/merchants/:merchantId/commission", r.commissionHandler.GetCommission)
	admin.GET("/merchants/:merchantId/pricing", r.commissionHandler.MerchantPricing)

	// Plan catalog
	plans := admin.Group("/subscription-plans")
	{
		plans.POST("", r.planHandler.CreatePlan)
		plans.GET("", r.planHandler.ListPlans)
		plans.GET("/:id", r.planHandler.GetPlan)
		plans.PUT("/:id", r.planHandler.UpdatePlan)
		plans.DELETE("/:id", r.planHandler.DeletePlan)
	}

	// Cash payments
	admin.POST("/merchant-subscription-payment", r.subscriptionHandler.AdminPurchase)
	admin.PATCH("/subscription-logs/:id/confirm-payment", r.subscriptionHandler.ConfirmCashPayment)

	// Discounts
	admin.POST("/merchants/:merchantId/discounts", r.discountHandler.CreateMerchantDiscount)
	admin.GET("/merchants/:merchantId/discounts", r.discountHandler.ListMerchantDiscounts)
	admin.PUT("/discounts/:id", r.discountHandler.UpdateMerchantDiscount)
	admin.DELETE("/discounts/:id", r.discountHandler.DeleteMerchantDiscount)
	admin.POST("/merchants/:merchantId/product-discounts", r.discountHandler.CreateProductDiscount)
	admin.DELETE("/product-discounts/:id", r.discountHandler.DeleteProductDiscount)

	promoCodes := admin.Group("/promo-codes")
	{
		promoCodes.POST("", r.discountHandler.CreatePromoCode)
		promoCodes.GET("", r.discountHandler.ListPromoCodes)
		promoCodes.PUT("/:id", r.discountHandler.UpdatePromoCode)
		promoCodes.DELETE("/:id", r.discountHandler.DeletePromoCode)
	}

	// Audit trail and home screen
	admin.GET("/activity-logs", r.activityHandler.ListActivityLogs)
	admin.DELETE("/activity-logs", r.activityHandler.PurgeActivityLogs)
	admin.GET("/home/realtime", r.homeHandler.Realtime)
	admin.GET("/home/revenue", r.homeHandler.Revenue)
}

func (r *router) registerMerchantRoutes(merchant, payments *echo.Group) {
	merchant.GET("/pricing", r.commissionHandler.MyPricing)
	merchant.GET("/pricing/quote", r.commissionHandler.Quote)

	payments.POST("", r.subscriptionHandler.Purchase)
	payments.POST("/payment-verification", r.subscriptionHandler.VerifyPayment)
	payments.GET("/:orderId/qr", r.subscriptionHandler.CheckoutQR)
	merchant.GET("/subscription-logs", r.subscriptionHandler.ListLogs)

	discounts := merchant.Group("/discounts")
	{
		discounts.POST("", r.discountHandler.CreateMerchantDiscount)
		discounts.GET("", r.discountHandler.ListMerchantDiscounts)
		discounts.GET("/:id", r.discountHandler.GetMerchantDiscount)
		discounts.PUT("/:id", r.discountHandler.UpdateMerchantDiscount)
		discounts.PATCH("/:id/status", r.discountHandler.SetMerchantDiscountStatus)
		discounts.DELETE("/:id", r.discountHandler.DeleteMerchantDiscount)
	}
	merchant.POST("/product-discounts", r.discountHandler.CreateProductDiscount)
	merchant.DELETE("/product-discounts/:id", r.discountHandler.DeleteProductDiscount)

	merchant.GET("/home/revenue", r.homeHandler.MerchantRevenue)
}

func (r *router) registerCustomerRoutes(customer, payments *echo.Group) {
	payments.POST("", r.subscriptionHandler.Purchase)
	payments.POST("/payment-verification", r.subscriptionHandler.VerifyPayment)
	customer.GET("/subscription-logs", r.subscriptionHandler.ListLogs)
	customer.GET("/pricing", r.commissionHandler.MyPricing)
}
