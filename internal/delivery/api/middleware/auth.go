package middleware

import (
	"log/slog"
	"strings"

	"billing/internal/delivery/api/response"
	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/entity"
	"billing/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keyUserID = "userID"
	keyRoles  = "roles"
	keyUser   = "user"

	bearerPrefix = "Bearer "
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer access token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(keyUserID, claims.UserID)
		c.Set(keyRoles, entity.RolesFromStrings(claims.Roles))

		return next(c)
	}
}

// RequireRole lets the request through when the caller holds one of the roles.
// The first matching role decides which account the caller acts as.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := GetUserID(c)
			if !ok {
				return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
			}
			roles, _ := GetRoles(c)

			for _, role := range allowed {
				if roles.Contains(role) {
					actor := entity.UserRef{Type: role.UserType(), ID: userID}
					c.Set(keyUser, actor)

					c.SetRequest(c.Request().WithContext(deliverycontext.WithActor(c.Request().Context(), actor)))

					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Permission denied for this role")
		}
	}
}

// GetUserID returns the authenticated user id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(keyUserID).(uuid.UUID)

	return userID, ok
}

// GetRoles returns the roles carried by the access token.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(keyRoles).(entity.Roles)

	return roles, ok
}

// CurrentUser returns the account the caller acts as, resolved by RequireRole.
func CurrentUser(c echo.Context) (entity.UserRef, bool) {
	user, ok := c.Get(keyUser).(entity.UserRef)

	return user, ok
}
