package errors

import (
	"net/http"

	"billing/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Account-related errors
	ErrMerchantNotFound = NewBaseError(
		http.StatusNotFound,
		"MERCHANT_NOT_FOUND",
		"Merchant not found",
		"",
	)

	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Customer not found",
		"",
	)

	// Pricing-related errors
	ErrNoPricingConfigured = NewBaseError(
		http.StatusNotFound,
		"PRICING_NOT_CONFIGURED",
		"No pricing configured for this user",
		"",
	)

	ErrPricingConflict = NewBaseError(
		http.StatusConflict,
		"PRICING_CONFLICT",
		"Pricing changed concurrently, please retry",
		"",
	)

	ErrCommissionNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMISSION_NOT_FOUND",
		"Commission not found",
		"",
	)

	ErrCommissionExists = NewBaseError(
		http.StatusConflict,
		"COMMISSION_EXISTS",
		"Merchant already has a commission",
		"",
	)

	ErrMerchantOnSubscription = NewBaseError(
		http.StatusConflict,
		"MERCHANT_ON_SUBSCRIPTION",
		"Merchant is billed by subscription",
		"",
	)

	// Plan-related errors
	ErrPlanNotFound = NewBaseError(
		http.StatusNotFound,
		"PLAN_NOT_FOUND",
		"Subscription plan not found",
		"",
	)

	ErrPlanInactive = NewBaseError(
		http.StatusBadRequest,
		"PLAN_INACTIVE",
		"Subscription plan is not available",
		"",
	)

	ErrPlanAudienceMismatch = NewBaseError(
		http.StatusBadRequest,
		"PLAN_AUDIENCE_MISMATCH",
		"Subscription plan is not offered to this user type",
		"",
	)

	ErrPlanInUse = NewBaseError(
		http.StatusConflict,
		"PLAN_IN_USE",
		"Subscription plan is referenced by ledger entries",
		"",
	)

	// Ledger and payment errors
	ErrSubscriptionLogNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIPTION_LOG_NOT_FOUND",
		"Subscription log not found",
		"",
	)

	ErrInvalidPaymentSignature = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAYMENT_SIGNATURE",
		"Payment verification failed",
		"",
	)

	ErrInvalidPaymentMode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAYMENT_MODE",
		"Unsupported payment mode",
		"",
	)

	ErrPaymentGatewayFailed = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_GATEWAY_FAILED",
		"Payment gateway request failed",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Payment order not found",
		"",
	)

	ErrOrderMismatch = NewBaseError(
		http.StatusBadRequest,
		"ORDER_MISMATCH",
		"Payment order does not match the plan",
		"",
	)

	// Discount-related errors
	ErrDiscountNotFound = NewBaseError(
		http.StatusNotFound,
		"DISCOUNT_NOT_FOUND",
		"Discount not found",
		"",
	)

	ErrPromoCodeNotFound = NewBaseError(
		http.StatusNotFound,
		"PROMO_CODE_NOT_FOUND",
		"Promo code not found",
		"",
	)

	ErrPromoCodeExists = NewBaseError(
		http.StatusConflict,
		"PROMO_CODE_EXISTS",
		"Promo code already exists",
		"",
	)

	ErrInvalidDiscountWindow = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DISCOUNT_WINDOW",
		"Discount start must be before its end",
		"",
	)

	ErrInvalidDiscountValue = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DISCOUNT_VALUE",
		"Discount value is out of range",
		"",
	)

	ErrProductOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"PRODUCT_OWNERSHIP_VIOLATION",
		"Products must belong to the discount's merchant",
		"",
	)

	ErrProductAlreadyDiscounted = NewBaseError(
		http.StatusConflict,
		"PRODUCT_ALREADY_DISCOUNTED",
		"Product already has a discount",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidCommissionValue = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COMMISSION_VALUE",
		"Commission value is out of range",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the underlying driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
