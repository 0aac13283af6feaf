package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"billing/internal/delivery/api/middleware"
	"billing/internal/delivery/api/validator"
	domainservice "billing/internal/domain/service"
	mockSvc "billing/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const testToken = "test-token"

// newTestServer returns an echo instance wired like the API server and an auth middleware
// that accepts testToken as userID with roles.
func newTestServer(t *testing.T, userID uuid.UUID, roles ...string) (*echo.Echo, *middleware.AuthMiddleware) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := mockSvc.NewMockTokenService(t)
	tokens.On("ValidateToken", testToken).Return(&domainservice.Claims{UserID: userID, Roles: roles}, nil).Maybe()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e, middleware.NewAuthMiddleware(tokens, logger)
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}
