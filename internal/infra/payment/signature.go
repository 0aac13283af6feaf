package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signer computes and checks checkout signatures: hex(HMAC-SHA256(secret, orderID + "|" + paymentID)).
type Signer struct {
	secret []byte
}

// NewSigner creates a signer for the gateway key secret.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign returns the expected signature for an order and payment.
func (s *Signer) Sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(orderID + "|" + paymentID))

	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature matches. Any empty input, or an empty secret, fails.
func (s *Signer) Verify(orderID, paymentID, signature string) bool {
	if len(s.secret) == 0 || orderID == "" || paymentID == "" || signature == "" {
		return false
	}

	expected := s.Sign(orderID, paymentID)

	return hmac.Equal([]byte(expected), []byte(signature))
}
