package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/transport-ticketing/internal/model"
)

func TestCompaniesWithAvailableTrips(t *testing.T) {
	e := newEnv(t)
	ownerA, companyA := e.companyPair(t)
	ownerB, companyB := e.companyPair(t)
	distOwner, _ := e.distributorPair(t, companyA.ID)

	e.publishTrip(t, ownerA, companyA.ID, 10, 1)
	e.publishTrip(t, ownerA, companyA.ID, 10, 1) // second trip, company listed once
	cancelled := e.publishTrip(t, ownerB, companyB.ID, 10, 1)
	_, err := e.tripSvc.CancelTrip(ownerB, cancelled.ID)
	require.NoError(t, err)

	t.Run("lists each company with sellable trips once", func(t *testing.T) {
		out, err := e.reportSvc.CompaniesWithAvailableTrips(distOwner, nil, nil)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, companyA.ID, out[0].ID)
	})

	t.Run("window excludes trips outside it", func(t *testing.T) {
		past := time.Now().UTC().Add(-time.Hour)
		out, err := e.reportSvc.CompaniesWithAvailableTrips(distOwner, nil, &past)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("only distributors may ask", func(t *testing.T) {
		_, err := e.reportSvc.CompaniesWithAvailableTrips(ownerA, nil, nil)
		assert.True(t, errors.Is(err, ErrAccessDenied))
	})
}

func TestDistributorsReport(t *testing.T) {
	e := newEnv(t)
	ownerA, companyA := e.companyPair(t)
	_, companyB := e.companyPair(t)
	e.distributorPair(t, companyA.ID)
	e.distributorPair(t, companyA.ID)
	e.distributorPair(t, companyB.ID)

	t.Run("admin sees all", func(t *testing.T) {
		out, err := e.reportSvc.Distributors(e.admin(t))
		require.NoError(t, err)
		assert.Len(t, out, 3)
	})

	t.Run("company sees only its own", func(t *testing.T) {
		out, err := e.reportSvc.Distributors(ownerA)
		require.NoError(t, err)
		assert.Len(t, out, 2)
	})

	t.Run("cashier role is refused", func(t *testing.T) {
		_, err := e.reportSvc.Distributors(e.user(t, model.RoleCashier))
		assert.True(t, errors.Is(err, ErrAccessDenied))
	})
}

func TestTicketsReport(t *testing.T) {
	e := newEnv(t)
	companyOwner, company := e.companyPair(t)
	distOwner, dist := e.distributorPair(t, company.ID)
	cashierUser, cashier := e.cashierPair(t, dist.ID)

	trip := e.publishTrip(t, companyOwner, company.ID, 10, 5)
	trip = e.approveDistributor(t, companyOwner, distOwner, dist.ID, trip.ID)
	_, err := e.ticketSvc.SellTicket(cashierUser, cashier.ID, trip.ID, 1, "Alice", "")
	require.NoError(t, err)
	_, err = e.ticketSvc.SellTicket(cashierUser, cashier.ID, trip.ID, 2, "Bob", "")
	require.NoError(t, err)

	t.Run("owning company sees the trip's tickets", func(t *testing.T) {
		out, err := e.reportSvc.Tickets(companyOwner, trip.ID, nil, nil)
		require.NoError(t, err)
		assert.Len(t, out, 2)
	})

	t.Run("another company is refused", func(t *testing.T) {
		strangerOwner, _ := e.companyPair(t)
		_, err := e.reportSvc.Tickets(strangerOwner, trip.ID, nil, nil)
		assert.True(t, errors.Is(err, ErrAccessDenied))
	})

	t.Run("window filters by sale time", func(t *testing.T) {
		future := time.Now().UTC().Add(time.Hour)
		out, err := e.reportSvc.Tickets(companyOwner, trip.ID, &future, nil)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestTripsReportVisibility(t *testing.T) {
	e := newEnv(t)
	ownerA, companyA := e.companyPair(t)
	ownerB, companyB := e.companyPair(t)
	e.publishTrip(t, ownerA, companyA.ID, 10, 1)
	e.publishTrip(t, ownerB, companyB.ID, 10, 1)

	t.Run("company sees only its own trips", func(t *testing.T) {
		out, err := e.reportSvc.Trips(ownerA, nil, nil)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, companyA.ID, out[0].CompanyID)
	})

	t.Run("admin sees everything", func(t *testing.T) {
		out, err := e.reportSvc.Trips(e.admin(t), nil, nil)
		require.NoError(t, err)
		assert.Len(t, out, 2)
	})
}
