package service

import "context"

// MessagingClient sends outbound chat messages through the messaging platform.
type MessagingClient interface {
	// SendText sends a plain text message to a phone number.
	SendText(ctx context.Context, to, body string) error
}
