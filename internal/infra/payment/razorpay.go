// Package payment adapts the Razorpay gateway to the domain's PaymentGateway port.
package payment

import (
	"context"
	"fmt"
	"log/slog"

	"billing/config"
	"billing/internal/domain/entity"
	"billing/internal/domain/service"
	"billing/internal/errors"

	"github.com/razorpay/razorpay-go"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var paisePerRupee = decimal.NewFromInt(100)

// orderAPI is the part of the Razorpay SDK the gateway uses.
type orderAPI interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
	Fetch(orderID string, queryParams map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type razorpayGateway struct {
	orders   orderAPI
	signer   *Signer
	keyID    string
	currency string
	logger   *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewRazorpayGateway creates the Razorpay-backed payment gateway.
func NewRazorpayGateway(params Params) (service.PaymentGateway, error) {
	cfg := params.Config.Razorpay
	if cfg == nil || cfg.KeyID == "" || cfg.KeySecret == "" {
		return nil, errors.New("razorpay key id and secret must be provided")
	}

	client := razorpay.NewClient(cfg.KeyID, cfg.KeySecret)

	return newRazorpayGateway(client.Order, NewSigner(cfg.KeySecret), cfg.KeyID, cfg.Currency, params.Logger), nil
}

func newRazorpayGateway(orders orderAPI, signer *Signer, keyID, currency string, logger *slog.Logger) *razorpayGateway {
	return &razorpayGateway{
		orders:   orders,
		signer:   signer,
		keyID:    keyID,
		currency: currency,
		logger:   logger,
	}
}

// CreateOrder opens a gateway order. The SDK is synchronous; ctx is only checked before the call.
func (g *razorpayGateway) CreateOrder(ctx context.Context, amount decimal.Decimal, receipt string, notes map[string]string) (*entity.GatewayOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	data := map[string]interface{}{
		"amount":   amount.Mul(paisePerRupee).Round(0).IntPart(),
		"currency": g.currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	resp, err := g.orders.Create(data, nil)
	if err != nil {
		g.logger.Error("Razorpay order creation failed",
			slog.String("receipt", receipt),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "razorpay create order")
	}

	return g.toGatewayOrder(resp)
}

// FetchOrder looks up an order previously created on the gateway.
func (g *razorpayGateway) FetchOrder(ctx context.Context, orderID string) (*entity.GatewayOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := g.orders.Fetch(orderID, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "razorpay fetch order")
	}

	return g.toGatewayOrder(resp)
}

// VerifySignature checks the checkout signature for an order and payment.
func (g *razorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return g.signer.Verify(orderID, paymentID, signature)
}

func (g *razorpayGateway) toGatewayOrder(resp map[string]interface{}) (*entity.GatewayOrder, error) {
	orderID, _ := resp["id"].(string)
	if orderID == "" {
		return nil, errors.New("razorpay response has no order id")
	}

	paise, err := toDecimal(resp["amount"])
	if err != nil {
		return nil, err
	}

	currency, _ := resp["currency"].(string)
	if currency == "" {
		currency = g.currency
	}
	receipt, _ := resp["receipt"].(string)

	return &entity.GatewayOrder{
		OrderID:  orderID,
		Amount:   paise.Div(paisePerRupee),
		Currency: currency,
		KeyID:    g.keyID,
		Receipt:  receipt,
		Notes:    toNotes(resp["notes"]),
	}, nil
}

// toNotes reads the notes object. Razorpay returns an empty array when an order has none.
func toNotes(v any) map[string]string {
	raw, ok := v.(map[string]interface{})
	if !ok || len(raw) == 0 {
		return nil
	}

	notes := make(map[string]string, len(raw))
	for key, value := range raw {
		if s, ok := value.(string); ok {
			notes[key] = s
		}
	}

	return notes
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case string:
		return decimal.NewFromString(n)
	default:
		return decimal.Zero, fmt.Errorf("unexpected amount type %T", v)
	}
}
