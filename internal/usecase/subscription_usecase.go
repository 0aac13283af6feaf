package usecase

import (
	"context"

	"billing/internal/domain/entity"

	"github.com/google/uuid"
)

// PurchaseResult is the outcome of a purchase: a ledger entry for cash,
// a gateway order for online payment.
type PurchaseResult struct {
	Mode  entity.PaymentMode      `json:"mode"`
	Log   *entity.SubscriptionLog `json:"log,omitempty"`
	Order *entity.GatewayOrder    `json:"order,omitempty"`
}

// PaymentVerification carries what the checkout returns after an online payment.
type PaymentVerification struct {
	PlanID    uuid.UUID
	OrderID   string
	PaymentID string
	Signature string
}

// SubscriptionUsecase is the subscription ledger.
type SubscriptionUsecase interface {
	// Purchase starts buying a plan. Cash creates an unpaid entry; online opens a gateway order.
	Purchase(ctx context.Context, user entity.UserRef, planID uuid.UUID, mode entity.PaymentMode) (*PurchaseResult, error)

	// VerifyPayment records a paid online period once the checkout signature checks out.
	// Repeating a verification for the same order returns the recorded entry.
	VerifyPayment(ctx context.Context, user entity.UserRef, input *PaymentVerification) (*entity.SubscriptionLog, error)

	// ConfirmCashPayment settles an unpaid cash entry and activates it.
	ConfirmCashPayment(ctx context.Context, logID uuid.UUID) (*entity.SubscriptionLog, error)

	// ListLogs returns the user's ledger, newest first.
	ListLogs(ctx context.Context, user entity.UserRef) ([]*entity.SubscriptionLog, error)

	// CheckoutQR renders a QR code for one of the user's open gateway orders.
	CheckoutQR(ctx context.Context, user entity.UserRef, orderID string) ([]byte, error)
}
