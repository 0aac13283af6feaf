package service

import (
	"context"

	"github.com/shopspring/decimal"

	"billing/internal/domain/entity"
)

// PaymentGateway creates checkout orders and verifies their completion.
type PaymentGateway interface {
	// CreateOrder opens a gateway order for amount (major currency units).
	// Notes are stored on the order and returned by FetchOrder.
	CreateOrder(ctx context.Context, amount decimal.Decimal, receipt string, notes map[string]string) (*entity.GatewayOrder, error)

	// FetchOrder looks up an order previously created on the gateway.
	FetchOrder(ctx context.Context, orderID string) (*entity.GatewayOrder, error)

	// VerifySignature checks the checkout signature for an order and payment.
	// It performs no I/O and fails closed on empty input.
	VerifySignature(orderID, paymentID, signature string) bool
}
