package repository

import (
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/transport-ticketing/internal/model"
)

// TicketRepository stores sold tickets and owns the composite
// (tripID, seatNumber) uniqueness index.  CreateIfSeatFree checks and
// inserts under a single lock, giving callers the atomic
// insert-if-absent primitive the seat invariant needs.  Tickets are
// never deleted.
type TicketRepository interface {
	// CreateIfSeatFree inserts the ticket unless its (trip, seat) pair
	// is already occupied, in which case ErrSeatTaken is returned.
	CreateIfSeatFree(t model.Ticket) (model.Ticket, error)
	FindByID(id string) (model.Ticket, error)
	FindByTripID(tripID string) []model.Ticket
	FindByTripAndSeat(tripID string, seat int) (model.Ticket, error)
	// CountByTripAndBuyer counts tickets on the trip held by the buyer
	// name, compared case-insensitively.
	CountByTripAndBuyer(tripID, buyerName string) int
	FindAll() []model.Ticket
}

type seatKey struct {
	tripID string
	seat   int
}

type ticketRepo struct {
	mu     sync.RWMutex
	byID   map[string]model.Ticket
	bySeat map[seatKey]string // composite index -> ticket id
	gen    IDGenerator
}

// NewTicketRepository returns an empty in-memory ticket store.
func NewTicketRepository(gen IDGenerator) TicketRepository {
	return &ticketRepo{
		byID:   make(map[string]model.Ticket),
		bySeat: make(map[seatKey]string),
		gen:    gen,
	}
}

func (r *ticketRepo) CreateIfSeatFree(t model.Ticket) (model.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := seatKey{tripID: t.TripID, seat: t.SeatNumber}
	if _, taken := r.bySeat[key]; taken {
		return model.Ticket{}, ErrSeatTaken
	}
	t.ID = r.gen.NextID("ticket")
	t.SoldAt = time.Now().UTC()
	r.byID[t.ID] = t
	r.bySeat[key] = t.ID
	return t, nil
}

func (r *ticketRepo) FindByID(id string) (model.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byID[id]
	if !ok {
		return model.Ticket{}, ErrNotFound
	}
	return t, nil
}

func (r *ticketRepo) FindByTripID(tripID string) []model.Ticket {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Ticket
	for _, t := range r.byID {
		if t.TripID == tripID {
			out = append(out, t)
		}
	}
	return out
}

func (r *ticketRepo) FindByTripAndSeat(tripID string, seat int) (model.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.bySeat[seatKey{tripID: tripID, seat: seat}]
	if !ok {
		return model.Ticket{}, ErrNotFound
	}
	return r.byID[id], nil
}

func (r *ticketRepo) CountByTripAndBuyer(tripID, buyerName string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, t := range r.byID {
		if t.TripID == tripID && strings.EqualFold(t.BuyerName, buyerName) {
			n++
		}
	}
	return n
}

func (r *ticketRepo) FindAll() []model.Ticket {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Ticket, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t)
	}
	return out
}
