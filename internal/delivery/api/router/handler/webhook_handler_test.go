package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mockUsecase "billing/internal/mocks/usecase"
	"billing/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newWebhookServer(t *testing.T) (*echo.Echo, *mockUsecase.MockWebhookUsecase) {
	webhookUC := mockUsecase.NewMockWebhookUsecase(t)
	h := NewWebhookHandler(WebhookHandlerParams{
		WebhookUC: webhookUC,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	e := echo.New()
	e.GET("/webhook", h.Verify)
	e.POST("/webhook", h.Receive)

	return e, webhookUC
}

func TestWebhookHandler_Verify(t *testing.T) {
	e, webhookUC := newWebhookServer(t)
	webhookUC.On("VerifySubscription", "subscribe", "s3cret", "1158201444").Return("1158201444", true)
	webhookUC.On("VerifySubscription", "subscribe", "guess", "1158201444").Return("", false)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/webhook?hub.mode=subscribe&hub.verify_token=s3cret&hub.challenge=1158201444", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1158201444", rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/webhook?hub.mode=subscribe&hub.verify_token=guess&hub.challenge=1158201444", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestWebhookHandler_Receive_RelaysTextMessages(t *testing.T) {
	e, webhookUC := newWebhookServer(t)
	webhookUC.On("HandleInbound", mock.Anything, []usecase.InboundMessage{{From: "919800000001", Body: "menu"}}).Return(1)

	payload := `{"object":"whatsapp_business_account","entry":[{"changes":[{"value":{"messages":[
		{"from":"919800000001","type":"text","text":{"body":"menu"}},
		{"from":"919800000002","type":"image"}]}}]}]}`
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhookHandler_Receive_AlwaysAcknowledges(t *testing.T) {
	e, _ := newWebhookServer(t)

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
