package usecase

import "context"

// InboundMessage is one text message received from the messaging platform.
type InboundMessage struct {
	From string
	Body string
}

// WebhookUsecase handles the messaging platform webhook.
type WebhookUsecase interface {
	// VerifySubscription answers the subscription handshake. ok is false when the token does not match.
	VerifySubscription(mode, token, challenge string) (reply string, ok bool)

	// HandleInbound replies to each inbound text message and returns how many replies were sent.
	HandleInbound(ctx context.Context, messages []InboundMessage) int
}
