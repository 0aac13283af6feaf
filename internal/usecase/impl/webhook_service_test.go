package impl

import (
	"context"
	"testing"

	"billing/config"
	mockSvc "billing/internal/mocks/service"
	"billing/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestWebhookService(t *testing.T, verifyToken string) (usecase.WebhookUsecase, *mockSvc.MockMessagingClient) {
	client := mockSvc.NewMockMessagingClient(t)
	cfg := newTestConfig()
	cfg.Messaging = &config.MessagingConfig{VerifyToken: verifyToken}

	return NewWebhookService(WebhookServiceParams{
		Client: client,
		Config: cfg,
		Logger: newDiscardLogger(),
	}), client
}

func TestWebhookService_VerifySubscription(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		mode       string
		token      string
		wantOK     bool
	}{
		{name: "matching token", configured: "s3cret", mode: "subscribe", token: "s3cret", wantOK: true},
		{name: "wrong token", configured: "s3cret", mode: "subscribe", token: "guess"},
		{name: "wrong mode", configured: "s3cret", mode: "unsubscribe", token: "s3cret"},
		{name: "no token configured", configured: "", mode: "subscribe", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := createTestWebhookService(t, tt.configured)

			reply, ok := service.VerifySubscription(tt.mode, tt.token, "1158201444")
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "1158201444", reply)
			} else {
				assert.Empty(t, reply)
			}
		})
	}
}

func TestWebhookService_HandleInbound(t *testing.T) {
	service, client := createTestWebhookService(t, "s3cret")

	ctx := context.Background()
	client.On("SendText", ctx, "919800000001", mock.MatchedBy(func(body string) bool {
		return assert.ObjectsAreEqual(replyText("menu"), body)
	})).Return(nil)
	client.On("SendText", ctx, "919800000002", mock.Anything).Return(errors.New("rate limited"))

	replied := service.HandleInbound(ctx, []usecase.InboundMessage{
		{From: "919800000001", Body: " menu "},
		{From: "919800000002", Body: "hello"},
		{From: "919800000003", Body: "   "},
	})
	assert.Equal(t, 1, replied)
}
