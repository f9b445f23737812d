package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/transport-ticketing/internal/repository"
	"github.com/iliyamo/transport-ticketing/internal/service"
)

// TicketHandler exposes seat sales.
type TicketHandler struct {
	Tickets service.TicketService
	Users   repository.UserRepository
}

func NewTicketHandler(tickets service.TicketService, users repository.UserRepository) *TicketHandler {
	return &TicketHandler{Tickets: tickets, Users: users}
}

type sellReq struct {
	CashierID    string `json:"cashier_id"`
	SeatNumber   int    `json:"seat_number"`
	BuyerName    string `json:"buyer_name"`
	BuyerContact string `json:"buyer_contact"`
}

// Sell sells one seat on a trip.
func (h *TicketHandler) Sell(c echo.Context) error {
	actor, err := currentActor(c, h.Users)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown user"})
	}
	var req sellReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.BuyerName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "buyer_name required"})
	}
	ticket, err := h.Tickets.SellTicket(actor, req.CashierID, c.Param("id"), req.SeatNumber, req.BuyerName, req.BuyerContact)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, ticket)
}

// ListByTrip lists the tickets sold on a trip.
func (h *TicketHandler) ListByTrip(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Tickets.ListByTrip(c.Param("id")))
}
