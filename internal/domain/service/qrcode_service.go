package service

import (
	"billing/internal/domain/entity"
)

// CheckoutPayload is what a checkout QR code encodes.
type CheckoutPayload struct {
	OrderID  string `json:"order_id"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
	Type     string `json:"type"`
}

// QRCodeService defines the interface for checkout QR code generation and parsing
type QRCodeService interface {
	// GenerateCheckoutQR renders a PNG QR code that opens the checkout for a gateway order
	GenerateCheckoutQR(order *entity.GatewayOrder) ([]byte, error)

	// ParseCheckoutQR parses QR code data back into its checkout payload
	ParseCheckoutQR(qrData string) (*CheckoutPayload, error)
}
