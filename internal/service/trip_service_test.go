package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/transport-ticketing/internal/model"
)

func TestAddTrip(t *testing.T) {
	e := newEnv(t)
	owner, company := e.companyPair(t)

	t.Run("publishes an active trip for the owning company", func(t *testing.T) {
		trip := e.publishTrip(t, owner, company.ID, 40, 4)
		assert.Equal(t, model.TripStatusActive, trip.Status)
		assert.Equal(t, company.ID, trip.CompanyID)
		assert.True(t, trip.IsSellable())
	})

	t.Run("rejects a non-owner", func(t *testing.T) {
		stranger := e.user(t, model.RoleCompany)
		_, err := e.tripSvc.AddTrip(stranger, AddTripInput{
			CompanyID: company.ID, SeatsTotal: 10, PerPersonLimit: 1,
			Departure: time.Now().Add(time.Hour), Arrival: time.Now().Add(2 * time.Hour),
		})
		assert.True(t, errors.Is(err, ErrAccessDenied))
	})

	t.Run("rejects non-positive inventory", func(t *testing.T) {
		_, err := e.tripSvc.AddTrip(owner, AddTripInput{CompanyID: company.ID, SeatsTotal: 0, PerPersonLimit: 1})
		assert.True(t, errors.Is(err, ErrValidation))

		_, err = e.tripSvc.AddTrip(owner, AddTripInput{CompanyID: company.ID, SeatsTotal: 5, PerPersonLimit: 0})
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("rejects unknown company", func(t *testing.T) {
		_, err := e.tripSvc.AddTrip(owner, AddTripInput{CompanyID: "nope", SeatsTotal: 5, PerPersonLimit: 1})
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestRequestTrip(t *testing.T) {
	e := newEnv(t)
	companyOwner, company := e.companyPair(t)
	distOwner, dist := e.distributorPair(t, company.ID)
	trip := e.publishTrip(t, companyOwner, company.ID, 20, 2)

	t.Run("creates a pending request and notifies the organizer", func(t *testing.T) {
		req, err := e.tripSvc.RequestTrip(distOwner, dist.ID, trip.ID)
		require.NoError(t, err)
		assert.Equal(t, model.RequestStatusRequested, req.Status)

		inbox := e.inboxSvc.GetForUser(companyOwner.ID)
		require.NotEmpty(t, inbox)
		assert.Equal(t, model.NotificationTripRequested, inbox[0].Type)
	})

	t.Run("repeat requests are not de-duplicated", func(t *testing.T) {
		_, err := e.tripSvc.RequestTrip(distOwner, dist.ID, trip.ID)
		require.NoError(t, err)
		assert.Len(t, e.requests.FindByTripID(trip.ID), 2)
	})

	t.Run("rejects a distributor not owned by the actor", func(t *testing.T) {
		other := e.user(t, model.RoleDistributor)
		_, err := e.tripSvc.RequestTrip(other, dist.ID, trip.ID)
		assert.True(t, errors.Is(err, ErrAccessDenied))
	})

	t.Run("rejects requests on a terminal trip", func(t *testing.T) {
		cancelled := e.publishTrip(t, companyOwner, company.ID, 5, 1)
		_, err := e.tripSvc.CancelTrip(companyOwner, cancelled.ID)
		require.NoError(t, err)

		_, err = e.tripSvc.RequestTrip(distOwner, dist.ID, cancelled.ID)
		assert.True(t, errors.Is(err, ErrValidation))
	})
}

func TestDecideRequest(t *testing.T) {
	e := newEnv(t)
	companyOwner, company := e.companyPair(t)
	distOwner, dist := e.distributorPair(t, company.ID)
	trip := e.publishTrip(t, companyOwner, company.ID, 20, 2)

	t.Run("approval grants membership and advances the status once", func(t *testing.T) {
		req, err := e.tripSvc.RequestTrip(distOwner, dist.ID, trip.ID)
		require.NoError(t, err)

		updated, err := e.tripSvc.DecideRequest(companyOwner, req.ID, true)
		require.NoError(t, err)
		assert.Equal(t, model.TripStatusApproved, updated.Status)
		assert.True(t, updated.IsDistributorApproved(dist.ID))
	})

	t.Run("approving a second distributor keeps the status and grows the set", func(t *testing.T) {
		otherOwner, otherDist := e.distributorPair(t, company.ID)
		req, err := e.tripSvc.RequestTrip(otherOwner, otherDist.ID, trip.ID)
		require.NoError(t, err)

		updated, err := e.tripSvc.DecideRequest(companyOwner, req.ID, true)
		require.NoError(t, err)
		assert.Equal(t, model.TripStatusApproved, updated.Status)
		assert.True(t, updated.IsDistributorApproved(dist.ID))
		assert.True(t, updated.IsDistributorApproved(otherDist.ID))
	})

	t.Run("a decided request is terminal", func(t *testing.T) {
		req, err := e.tripSvc.RequestTrip(distOwner, dist.ID, trip.ID)
		require.NoError(t, err)
		_, err = e.tripSvc.DecideRequest(companyOwner, req.ID, false)
		require.NoError(t, err)

		_, err = e.tripSvc.DecideRequest(companyOwner, req.ID, true)
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("rejection leaves the trip untouched", func(t *testing.T) {
		fresh := e.publishTrip(t, companyOwner, company.ID, 8, 1)
		req, err := e.tripSvc.RequestTrip(distOwner, dist.ID, fresh.ID)
		require.NoError(t, err)

		updated, err := e.tripSvc.DecideRequest(companyOwner, req.ID, false)
		require.NoError(t, err)
		assert.Equal(t, model.TripStatusActive, updated.Status)
		assert.False(t, updated.IsDistributorApproved(dist.ID))
	})

	t.Run("only the organizing company may decide", func(t *testing.T) {
		req, err := e.tripSvc.RequestTrip(distOwner, dist.ID, trip.ID)
		require.NoError(t, err)

		stranger, _ := e.companyPair(t)
		_, err = e.tripSvc.DecideRequest(stranger, req.ID, true)
		assert.True(t, errors.Is(err, ErrAccessDenied))
	})
}

func TestCancelTrip(t *testing.T) {
	e := newEnv(t)
	companyOwner, company := e.companyPair(t)
	distOwner, dist := e.distributorPair(t, company.ID)
	cashierUser, cashier := e.cashierPair(t, dist.ID)

	setup := func(t *testing.T) model.Trip {
		trip := e.publishTrip(t, companyOwner, company.ID, 10, 2)
		return e.approveDistributor(t, companyOwner, distOwner, dist.ID, trip.ID)
	}

	t.Run("admin cancel freezes the approved set and notifies the chain", func(t *testing.T) {
		trip := setup(t)
		_, err := e.ticketSvc.SellTicket(cashierUser, cashier.ID, trip.ID, 1, "Alice", "alice@example.com")
		require.NoError(t, err)

		cancelled, err := e.tripSvc.CancelTrip(e.admin(t), trip.ID)
		require.NoError(t, err)
		assert.Equal(t, model.TripStatusCancelled, cancelled.Status)
		assert.True(t, cancelled.IsDistributorApproved(dist.ID), "approved set freezes, it is not cleared")

		// Sold tickets stay confirmed.
		tickets := e.ticketSvc.ListByTrip(trip.ID)
		require.Len(t, tickets, 1)
		assert.Equal(t, model.TicketStatusConfirmed, tickets[0].Status)

		// Distributor owner and their cashiers hear about it.
		assertHasType(t, e.inboxSvc.GetForUser(distOwner.ID), model.NotificationTripCancelled)
		assertHasType(t, e.inboxSvc.GetForUser(cashierUser.ID), model.NotificationTripCancelled)
	})

	t.Run("owning company may cancel", func(t *testing.T) {
		trip := setup(t)
		cancelled, err := e.tripSvc.CancelTrip(companyOwner, trip.ID)
		require.NoError(t, err)
		assert.Equal(t, model.TripStatusCancelled, cancelled.Status)
	})

	t.Run("another company may not cancel", func(t *testing.T) {
		trip := setup(t)
		stranger, _ := e.companyPair(t)
		_, err := e.tripSvc.CancelTrip(stranger, trip.ID)
		assert.True(t, errors.Is(err, ErrAccessDenied))
	})

	t.Run("cancelled trip disappears from sellable listing", func(t *testing.T) {
		trip := setup(t)
		_, err := e.tripSvc.CancelTrip(companyOwner, trip.ID)
		require.NoError(t, err)
		for _, s := range e.tripSvc.ListSellable() {
			assert.NotEqual(t, trip.ID, s.ID)
		}
	})
}

func assertHasType(t *testing.T, inbox []model.Notification, kind string) {
	t.Helper()
	for _, n := range inbox {
		if n.Type == kind {
			return
		}
	}
	t.Fatalf("no notification of type %s in inbox of %d entries", kind, len(inbox))
}
