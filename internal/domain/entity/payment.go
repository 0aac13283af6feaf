package entity

import "github.com/shopspring/decimal"

// GatewayOrder is the handle a client needs to open the payment gateway checkout.
type GatewayOrder struct {
	OrderID  string            `json:"order_id"`
	Amount   decimal.Decimal   `json:"amount"`
	Currency string            `json:"currency"`
	KeyID    string            `json:"key_id"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"` // Free-form tags stored on the gateway order.
}
