package qrcode

import (
	"encoding/json"

	"billing/config"
	"billing/internal/domain/entity"
	"billing/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	checkoutType = "checkout"
	defaultSize  = 256
)

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService creates the checkout QR renderer from config, falling back to 256px at level M.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return newQRCodeService(defaultSize, "M")
	}

	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newQRCodeService(size int, errorCorrectionLevel string) *qrcodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:  size,
		level: recoveryLevel(errorCorrectionLevel),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateCheckoutQR renders a PNG that carries the gateway order a wallet app needs to pay.
func (s *qrcodeService) GenerateCheckoutQR(order *entity.GatewayOrder) ([]byte, error) {
	if order == nil || order.OrderID == "" {
		return nil, errors.New("gateway order is required")
	}

	payload, err := json.Marshal(service.CheckoutPayload{
		OrderID:  order.OrderID,
		Amount:   order.Amount.StringFixed(2),
		Currency: order.Currency,
		KeyID:    order.KeyID,
		Type:     checkoutType,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	code, err := qrcode.New(string(payload), s.level)
	if err != nil {
		return nil, errors.Wrap(err, "create qr code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "encode qr png")
	}

	return png, nil
}

// ParseCheckoutQR decodes the content of a checkout QR code.
func (s *qrcodeService) ParseCheckoutQR(qrData string) (*service.CheckoutPayload, error) {
	var payload service.CheckoutPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return nil, errors.Wrap(err, "decode qr payload")
	}

	if payload.Type != checkoutType {
		return nil, errors.Errorf("invalid QR code type: %s", payload.Type)
	}
	if payload.OrderID == "" {
		return nil, errors.New("qr payload has no order id")
	}

	return &payload, nil
}
