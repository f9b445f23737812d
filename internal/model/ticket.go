package model

import "time"

// Ticket status values.  Tickets are created CONFIRMED and are never
// deleted; cancelling a trip blocks further sales but leaves sold
// tickets untouched.
const (
	TicketStatusConfirmed = "CONFIRMED"
)

// Ticket records the sale of a single seat on a trip.  The pair
// (TripID, SeatNumber) is unique across all tickets; the repository
// enforces this atomically at insert time.
type Ticket struct {
	ID           string
	TripID       string
	SeatNumber   int
	CashierID    string
	BuyerName    string
	BuyerContact string
	SoldAt       time.Time
	Status       string
}
