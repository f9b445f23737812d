package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/transport-ticketing/internal/model"
)

func TestSellTicket(t *testing.T) {
	e := newEnv(t)
	companyOwner, company := e.companyPair(t)
	distOwner, dist := e.distributorPair(t, company.ID)
	cashierUser, cashier := e.cashierPair(t, dist.ID)

	trip := e.publishTrip(t, companyOwner, company.ID, 2, 1)
	trip = e.approveDistributor(t, companyOwner, distOwner, dist.ID, trip.ID)

	t.Run("first sale succeeds and notifies the organizer", func(t *testing.T) {
		ticket, err := e.ticketSvc.SellTicket(cashierUser, cashier.ID, trip.ID, 1, "Alice", "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, model.TicketStatusConfirmed, ticket.Status)
		assert.Equal(t, 1, ticket.SeatNumber)
		assertHasType(t, e.inboxSvc.GetForUser(companyOwner.ID), model.NotificationTicketsSoldSummary)
	})

	t.Run("the same seat cannot be sold twice", func(t *testing.T) {
		_, err := e.ticketSvc.SellTicket(cashierUser, cashier.ID, trip.ID, 1, "Bob", "")
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("per-person limit counts buyer names case-insensitively", func(t *testing.T) {
		_, err := e.ticketSvc.SellTicket(cashierUser, cashier.ID, trip.ID, 2, "ALICE", "")
		assert.True(t, errors.Is(err, ErrValidation))

		// A different buyer takes the remaining seat.
		_, err = e.ticketSvc.SellTicket(cashierUser, cashier.ID, trip.ID, 2, "Bob", "")
		assert.NoError(t, err)
	})
}

func TestSellTicketPreconditions(t *testing.T) {
	e := newEnv(t)
	companyOwner, company := e.companyPair(t)
	distOwner, dist := e.distributorPair(t, company.ID)
	cashierUser, cashier := e.cashierPair(t, dist.ID)
	trip := e.publishTrip(t, companyOwner, company.ID, 10, 3)

	t.Run("unapproved distributor may not sell", func(t *testing.T) {
		_, err := e.ticketSvc.SellTicket(cashierUser, cashier.ID, trip.ID, 1, "Alice", "")
		assert.True(t, errors.Is(err, ErrAccessDenied))
	})

	trip = e.approveDistributor(t, companyOwner, distOwner, dist.ID, trip.ID)

	t.Run("only the operating user may act as the cashier", func(t *testing.T) {
		other := e.user(t, model.RoleCashier)
		_, err := e.ticketSvc.SellTicket(other, cashier.ID, trip.ID, 1, "Alice", "")
		assert.True(t, errors.Is(err, ErrAccessDenied))
	})

	t.Run("seat number must be inside the inventory", func(t *testing.T) {
		_, err := e.ticketSvc.SellTicket(cashierUser, cashier.ID, trip.ID, 0, "Alice", "")
		assert.True(t, errors.Is(err, ErrValidation))
		_, err = e.ticketSvc.SellTicket(cashierUser, cashier.ID, trip.ID, 11, "Alice", "")
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("non-cashier roles are refused outright", func(t *testing.T) {
		_, err := e.ticketSvc.SellTicket(companyOwner, cashier.ID, trip.ID, 1, "Alice", "")
		assert.True(t, errors.Is(err, ErrAccessDenied))
	})

	t.Run("sales stop once the trip is cancelled", func(t *testing.T) {
		_, err := e.tripSvc.CancelTrip(companyOwner, trip.ID)
		require.NoError(t, err)
		_, err = e.ticketSvc.SellTicket(cashierUser, cashier.ID, trip.ID, 1, "Alice", "")
		assert.True(t, errors.Is(err, ErrValidation))
	})
}

// Two cashiers racing for the same seat must produce exactly one
// ticket.
func TestSellTicketSeatRace(t *testing.T) {
	e := newEnv(t)
	companyOwner, company := e.companyPair(t)
	distOwner, dist := e.distributorPair(t, company.ID)
	trip := e.publishTrip(t, companyOwner, company.ID, 50, 50)
	trip = e.approveDistributor(t, companyOwner, distOwner, dist.ID, trip.ID)

	const racers = 16
	users := make([]*model.User, racers)
	ids := make([]string, racers)
	for i := range users {
		u, c := e.cashierPair(t, dist.ID)
		users[i], ids[i] = u, c.ID
	}

	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = e.ticketSvc.SellTicket(users[i], ids[i], trip.ID, 7, "Buyer", "")
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			assert.True(t, errors.Is(err, ErrValidation))
		}
	}
	assert.Equal(t, 1, won, "exactly one racer gets the seat")
	assert.Len(t, e.ticketSvc.ListByTrip(trip.ID), 1)
}
