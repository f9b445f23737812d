package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/transport-ticketing/internal/repository"
	"github.com/iliyamo/transport-ticketing/internal/service"
)

// ReportHandler exposes the role-scoped report listings.  Reports take
// an optional RFC 3339 from/to window via query parameters.
type ReportHandler struct {
	Reports service.ReportService
	Users   repository.UserRepository
}

func NewReportHandler(reports service.ReportService, users repository.UserRepository) *ReportHandler {
	return &ReportHandler{Reports: reports, Users: users}
}

func (h *ReportHandler) Companies(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	from, to, err := parseWindow(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid time window"})
	}
	out, err := h.Reports.CompaniesWithAvailableTrips(actor, from, to)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) Distributors(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	out, err := h.Reports.Distributors(actor)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) Cashiers(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	out, err := h.Reports.Cashiers(actor, c.QueryParam("distributor_id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) Tickets(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	from, to, err := parseWindow(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid time window"})
	}
	out, err := h.Reports.Tickets(actor, c.Param("id"), from, to)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) Trips(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	from, to, err := parseWindow(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid time window"})
	}
	out, err := h.Reports.Trips(actor, from, to)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
