// Package messaging sends outbound chat messages through the WhatsApp Cloud (Graph) API.
package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"billing/config"
	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultAPIBaseURL = "https://graph.facebook.com/v19.0"

type textMessage struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

type graphClient struct {
	endpoint    string
	accessToken string
	httpClient  *http.Client
	logger      *slog.Logger
}

// Params holds the dependencies of the Graph API client
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGraphClient creates the messaging client. Without an access token replies are only logged.
func NewGraphClient(params Params) service.MessagingClient {
	cfg := params.Config.Messaging
	if cfg == nil || cfg.AccessToken == "" || cfg.PhoneNumberID == "" {
		return &logOnlyClient{logger: params.Logger}
	}

	baseURL := strings.TrimRight(cfg.APIBaseURL, "/")
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}

	return &graphClient{
		endpoint:    baseURL + "/" + cfg.PhoneNumberID + "/messages",
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		logger:      params.Logger,
	}
}

// SendText posts a text message to the recipient's phone number.
func (g *graphClient) SendText(ctx context.Context, to, body string) error {
	msg := textMessage{MessagingProduct: "whatsapp", To: to, Type: "text"}
	msg.Text.Body = body

	payload, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.accessToken)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "send message")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return errors.Errorf("graph api returned %d: %s", resp.StatusCode, detail)
	}

	deliverycontext.GetLoggerOrDefault(ctx, g.logger).Info("Message sent", slog.String("to", to))

	return nil
}

type logOnlyClient struct {
	logger *slog.Logger
}

func (c *logOnlyClient) SendText(ctx context.Context, to, body string) error {
	deliverycontext.GetLoggerOrDefault(ctx, c.logger).Info("Messaging not configured, reply dropped",
		slog.String("to", to),
		slog.Int("length", len(body)),
	)

	return nil
}
