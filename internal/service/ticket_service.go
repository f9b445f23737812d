package service

import (
	"errors"

	"github.com/iliyamo/transport-ticketing/internal/model"
	"github.com/iliyamo/transport-ticketing/internal/repository"
)

// TicketService owns the seat-assignment invariants at sale time.
type TicketService interface {
	// SellTicket sells one seat.  Preconditions, each a distinct
	// failure kind, checked in order:
	//   1. actor holds role CASHIER
	//   2. the cashier exists and is operated by the actor
	//   3. the trip exists and is in a sellable status
	//   4. the cashier's distributor is in the approved set
	//   5. the seat number is within [1, seatsTotal]
	//   6. the seat is not already sold
	//   7. the buyer has not reached the per-person limit
	SellTicket(actor *model.User, cashierID, tripID string, seatNumber int, buyerName, buyerContact string) (model.Ticket, error)
	ListByTrip(tripID string) []model.Ticket
}

type ticketService struct {
	tickets      repository.TicketRepository
	trips        repository.TripRepository
	cashiers     repository.CashierRepository
	distributors repository.DistributorRepository
	companies    repository.CompanyRepository
	notifier     Notifier
	locks        *tripLocks
}

// NewTicketService builds the sale engine.  notifier is required; pass
// NopNotifier to discard fan-out.
func NewTicketService(
	tickets repository.TicketRepository,
	trips repository.TripRepository,
	cashiers repository.CashierRepository,
	distributors repository.DistributorRepository,
	companies repository.CompanyRepository,
	notifier Notifier,
) TicketService {
	return &ticketService{
		tickets:      tickets,
		trips:        trips,
		cashiers:     cashiers,
		distributors: distributors,
		companies:    companies,
		notifier:     notifier,
		locks:        newTripLocks(),
	}
}

func (s *ticketService) SellTicket(actor *model.User, cashierID, tripID string, seatNumber int, buyerName, buyerContact string) (model.Ticket, error) {
	if err := RequireRole(actor, model.RoleCashier); err != nil {
		return model.Ticket{}, err
	}
	cashier, err := s.cashiers.FindByID(cashierID)
	if err != nil {
		return model.Ticket{}, lookupErr(err, "cashier")
	}
	if cashier.UserID != actor.ID {
		return model.Ticket{}, accessDenied("cashier not operated by actor")
	}
	trip, err := s.trips.FindByID(tripID)
	if err != nil {
		return model.Ticket{}, lookupErr(err, "trip")
	}
	if !trip.IsSellable() {
		return model.Ticket{}, invalid("trip not sellable in status %s", trip.Status)
	}
	distributor, err := s.distributors.FindByID(cashier.DistributorID)
	if err != nil {
		return model.Ticket{}, lookupErr(err, "distributor")
	}
	if !trip.IsDistributorApproved(distributor.ID) {
		return model.Ticket{}, accessDenied("distributor not approved for this trip")
	}
	if seatNumber < 1 || seatNumber > trip.SeatsTotal {
		return model.Ticket{}, invalid("seat number %d out of range 1..%d", seatNumber, trip.SeatsTotal)
	}

	// The seat-free check, the buyer-limit count and the insert must be
	// one atomic step per trip, otherwise two concurrent sales could
	// both pass the checks and oversell.
	lock := s.locks.lock(trip.ID)
	defer lock.Unlock()

	if _, err := s.tickets.FindByTripAndSeat(trip.ID, seatNumber); err == nil {
		return model.Ticket{}, invalid("seat already sold")
	}
	if s.tickets.CountByTripAndBuyer(trip.ID, buyerName) >= trip.PerPersonLimit {
		return model.Ticket{}, invalid("buyer reached per-person limit of %d", trip.PerPersonLimit)
	}
	ticket, err := s.tickets.CreateIfSeatFree(model.Ticket{
		TripID:       trip.ID,
		SeatNumber:   seatNumber,
		CashierID:    cashier.ID,
		BuyerName:    buyerName,
		BuyerContact: buyerContact,
		Status:       model.TicketStatusConfirmed,
	})
	if err != nil {
		if errors.Is(err, repository.ErrSeatTaken) {
			return model.Ticket{}, invalid("seat already sold")
		}
		return model.Ticket{}, err
	}

	if company, cerr := s.companies.FindByID(trip.CompanyID); cerr == nil {
		s.notifier.TicketsSoldSummary(trip, company.OwnerUserID)
	}
	return ticket, nil
}

func (s *ticketService) ListByTrip(tripID string) []model.Ticket {
	return s.tickets.FindByTripID(tripID)
}
