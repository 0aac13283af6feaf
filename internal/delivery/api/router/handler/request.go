package handler

import (
	"net/http"
	"time"

	"billing/internal/delivery/api/middleware"
	"billing/internal/delivery/api/response"
	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate binds the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "malformed request")
	}

	return c.Validate(req)
}

// uuidParam parses a path parameter as a UUID.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid %s", name)
	}

	return id, nil
}

// currentUser returns the account the caller acts as, resolved by RequireRole.
func currentUser(c echo.Context) (entity.UserRef, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return entity.UserRef{}, domainerrors.ErrUnauthorized
	}

	return user, nil
}

// dateRange parses the from/to query parameters (YYYY-MM-DD) as days in loc.
func dateRange(c echo.Context, loc *time.Location) (time.Time, time.Time, error) {
	from, err := time.ParseInLocation(time.DateOnly, c.QueryParam("from"), loc)
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrap(domainerrors.ErrValidationFailed, "from must be a YYYY-MM-DD date")
	}
	to, err := time.ParseInLocation(time.DateOnly, c.QueryParam("to"), loc)
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrap(domainerrors.ErrValidationFailed, "to must be a YYYY-MM-DD date")
	}

	return from, to, nil
}

func messageOK(c echo.Context, message string) error {
	return response.Success(c, http.StatusOK, map[string]string{"message": message})
}
