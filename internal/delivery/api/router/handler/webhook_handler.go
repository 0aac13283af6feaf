package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "billing/internal/delivery/context"
	"billing/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	WebhookUC usecase.WebhookUsecase
	Logger    *slog.Logger
}

// WebhookHandler receives the messaging platform webhook.
type WebhookHandler struct {
	webhookUC usecase.WebhookUsecase
	logger    *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		webhookUC: params.WebhookUC,
		logger:    params.Logger,
	}
}

// inboundPayload is the subset of the platform's notification body the relay reads.
type inboundPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Messages []struct {
					From string `json:"from"`
					Type string `json:"type"`
					Text struct {
						Body string `json:"body"`
					} `json:"text"`
				} `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

func (p *inboundPayload) textMessages() []usecase.InboundMessage {
	var messages []usecase.InboundMessage
	for _, entry := range p.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				if msg.Type != "text" {
					continue
				}
				messages = append(messages, usecase.InboundMessage{From: msg.From, Body: msg.Text.Body})
			}
		}
	}

	return messages
}

// Verify handles GET /webhook, the subscription handshake.
func (h *WebhookHandler) Verify(c echo.Context) error {
	challenge, ok := h.webhookUC.VerifySubscription(
		c.QueryParam("hub.mode"),
		c.QueryParam("hub.verify_token"),
		c.QueryParam("hub.challenge"),
	)
	if !ok {
		return c.NoContent(http.StatusForbidden)
	}

	return c.String(http.StatusOK, challenge)
}

// Receive handles POST /webhook. The platform always gets a 200 so it does not redeliver.
func (h *WebhookHandler) Receive(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	var payload inboundPayload
	if err := c.Bind(&payload); err != nil {
		logger.Warn("Ignoring malformed webhook payload", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	if messages := payload.textMessages(); len(messages) > 0 {
		h.webhookUC.HandleInbound(c.Request().Context(), messages)
	}

	return c.NoContent(http.StatusOK)
}
