// Package handler defines the HTTP handlers.  Handlers parse and
// validate transport concerns only; every business decision is made by
// the engines, whose error kinds map onto HTTP status codes here.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/transport-ticketing/internal/model"
	"github.com/iliyamo/transport-ticketing/internal/repository"
	"github.com/iliyamo/transport-ticketing/internal/service"
)

// currentActor loads the authenticated user from the id stored by the
// JWT middleware.  The full record is loaded fresh so a deactivation
// takes effect on the very next request, not at token expiry.
func currentActor(c echo.Context, users repository.UserRepository) (*model.User, error) {
	id, ok := c.Get("user_id").(string)
	if !ok || id == "" {
		return nil, errors.New("missing user_id in context")
	}
	u, err := users.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// respondErr maps engine error kinds to HTTP statuses.
func respondErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrAccessDenied):
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound), errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}

// parseWindow reads optional RFC 3339 "from"/"to" query parameters.
func parseWindow(c echo.Context) (from, to *time.Time, err error) {
	if s := c.QueryParam("from"); s != "" {
		t, perr := time.Parse(time.RFC3339, s)
		if perr != nil {
			return nil, nil, perr
		}
		from = &t
	}
	if s := c.QueryParam("to"); s != "" {
		t, perr := time.Parse(time.RFC3339, s)
		if perr != nil {
			return nil, nil, perr
		}
		to = &t
	}
	return from, to, nil
}
