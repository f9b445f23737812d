package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/transport-ticketing/internal/repository"
	"github.com/iliyamo/transport-ticketing/internal/service"
)

// TripHandler exposes the trip lifecycle: publish, request, decide,
// cancel, browse.
type TripHandler struct {
	Trips service.TripService
	Users repository.UserRepository
}

func NewTripHandler(trips service.TripService, users repository.UserRepository) *TripHandler {
	return &TripHandler{Trips: trips, Users: users}
}

type addTripReq struct {
	CompanyID      string    `json:"company_id"`
	Type           string    `json:"type"`
	Destination    string    `json:"destination"`
	Departure      time.Time `json:"departure"`
	Arrival        time.Time `json:"arrival"`
	SeatsTotal     int       `json:"seats_total"`
	PerPersonLimit int       `json:"per_person_limit"`
	TransportTypes []string  `json:"transport_types"`
}

type requestTripReq struct {
	DistributorID string `json:"distributor_id"`
}

type decideReq struct {
	Approve bool `json:"approve"`
}

// Add publishes a new trip for the actor's company.
func (h *TripHandler) Add(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	var req addTripReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	trip, err := h.Trips.AddTrip(actor, service.AddTripInput{
		CompanyID:      req.CompanyID,
		Type:           req.Type,
		Destination:    req.Destination,
		Departure:      req.Departure,
		Arrival:        req.Arrival,
		SeatsTotal:     req.SeatsTotal,
		PerPersonLimit: req.PerPersonLimit,
		TransportTypes: req.TransportTypes,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, trip)
}

// Request submits a distributor's ask for selling rights on a trip.
func (h *TripHandler) Request(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	var req requestTripReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	tr, err := h.Trips.RequestTrip(actor, req.DistributorID, c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, tr)
}

// Decide approves or rejects a pending trip request.
func (h *TripHandler) Decide(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	var req decideReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	trip, err := h.Trips.DecideRequest(actor, c.Param("id"), req.Approve)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, trip)
}

// Cancel cancels a trip.
func (h *TripHandler) Cancel(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	trip, err := h.Trips.CancelTrip(actor, c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, trip)
}

// Get returns one trip.  Public.
func (h *TripHandler) Get(c echo.Context) error {
	trip, err := h.Trips.GetTrip(c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, trip)
}

// ListSellable returns trips currently open for sale.  Public.
func (h *TripHandler) ListSellable(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Trips.ListSellable())
}
