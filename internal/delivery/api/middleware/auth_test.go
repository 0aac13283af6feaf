package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/entity"
	domainservice "billing/internal/domain/service"
	mockSvc "billing/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthServer(t *testing.T, tokens *mockSvc.MockTokenService, roles ...entity.Role) *echo.Echo {
	auth := NewAuthMiddleware(tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	e.GET("/whoami", func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		if actor, ok := deliverycontext.GetActor(c.Request().Context()); !ok || actor != user {
			return c.NoContent(http.StatusInternalServerError)
		}

		return c.String(http.StatusOK, user.String())
	}, auth.Authenticate, auth.RequireRole(roles...))

	return e
}

func request(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_RejectsMissingOrMalformedHeader(t *testing.T) {
	e := newAuthServer(t, mockSvc.NewMockTokenService(t), entity.RoleMerchant)

	assert.Equal(t, http.StatusUnauthorized, request(e, "").Code)
	assert.Equal(t, http.StatusUnauthorized, request(e, "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, request(e, "Bearer ").Code)
}

func TestAuthMiddleware_RejectsInvalidToken(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	tokens.On("ValidateToken", "expired").Return(nil, errors.New("token is expired"))
	e := newAuthServer(t, tokens, entity.RoleMerchant)

	assert.Equal(t, http.StatusUnauthorized, request(e, "Bearer expired").Code)
}

func TestAuthMiddleware_ResolvesActingAccount(t *testing.T) {
	userID := uuid.New()
	tokens := mockSvc.NewMockTokenService(t)
	tokens.On("ValidateToken", "valid").Return(&domainservice.Claims{UserID: userID, Roles: []string{"customer", "merchant"}}, nil)

	// The first allowed role the caller holds decides the account.
	e := newAuthServer(t, tokens, entity.RoleMerchant, entity.RoleCustomer)
	rec := request(e, "Bearer valid")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.MerchantRef(userID).String(), rec.Body.String())
}

func TestAuthMiddleware_ForbidsMissingRole(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	tokens.On("ValidateToken", "valid").Return(&domainservice.Claims{UserID: uuid.New(), Roles: []string{"customer"}}, nil)

	e := newAuthServer(t, tokens, entity.RoleAdmin)
	assert.Equal(t, http.StatusForbidden, request(e, "Bearer valid").Code)
}
