package handler

import (
	"net/http"

	"billing/internal/delivery/api/middleware"
	"billing/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// WhoAmI echoes the caller as the auth middleware resolved it.
func WhoAmI(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}
	roles, _ := middleware.GetRoles(c)

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id": userID,
		"roles":   roles,
	})
}
