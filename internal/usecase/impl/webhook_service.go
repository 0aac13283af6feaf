package impl

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"

	"billing/config"
	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/service"
	"billing/internal/usecase"

	"go.uber.org/fx"
)

const subscribeMode = "subscribe"

type webhookService struct {
	client      service.MessagingClient
	verifyToken string
	logger      *slog.Logger
}

// WebhookServiceParams holds dependencies for WebhookService, injected by Fx.
type WebhookServiceParams struct {
	fx.In

	Client service.MessagingClient
	Config *config.Config
	Logger *slog.Logger
}

// NewWebhookService creates the messaging webhook handler.
func NewWebhookService(params WebhookServiceParams) usecase.WebhookUsecase {
	var verifyToken string
	if params.Config.Messaging != nil {
		verifyToken = params.Config.Messaging.VerifyToken
	}

	return &webhookService{
		client:      params.Client,
		verifyToken: verifyToken,
		logger:      params.Logger,
	}
}

func (srv *webhookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// VerifySubscription never succeeds while no verify token is configured.
func (srv *webhookService) VerifySubscription(mode, token, challenge string) (string, bool) {
	if mode != subscribeMode || srv.verifyToken == "" {
		return "", false
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(srv.verifyToken)) != 1 {
		return "", false
	}

	return challenge, true
}

func (srv *webhookService) HandleInbound(ctx context.Context, messages []usecase.InboundMessage) int {
	replied := 0
	for _, msg := range messages {
		body := strings.TrimSpace(msg.Body)
		if msg.From == "" || body == "" {
			continue
		}

		if err := srv.client.SendText(ctx, msg.From, replyText(body)); err != nil {
			srv.log(ctx).Warn("Failed to reply to inbound message", slog.String("from", msg.From), slog.Any("error", err))

			continue
		}
		replied++
	}

	srv.log(ctx).Info("Inbound messages handled", slog.Int("received", len(messages)), slog.Int("replied", replied))

	return replied
}

func replyText(body string) string {
	return fmt.Sprintf("Thanks, we received your message: %q. Our team will get back to you shortly.", body)
}
