package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/transport-ticketing/internal/model"
)

func TestRatingBounds(t *testing.T) {
	e := newEnv(t)
	admin := e.admin(t)
	_, company := e.companyPair(t)

	for _, bad := range []float64{0, 0.9, 5.1, -3} {
		_, err := e.ratingSvc.RateCompany(admin, company.ID, bad)
		assert.True(t, errors.Is(err, ErrValidation), "rating %v must fail", bad)
	}

	got, err := e.ratingSvc.RateCompany(admin, company.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.Rating)
}

func TestRateCompanyEligibility(t *testing.T) {
	e := newEnv(t)
	companyOwner, company := e.companyPair(t)
	distOwner, dist := e.distributorPair(t, company.ID)

	t.Run("distributor without any approved trip may not rate", func(t *testing.T) {
		_, err := e.ratingSvc.RateCompany(distOwner, company.ID, 4)
		assert.True(t, errors.Is(err, ErrAccessDenied))
	})

	t.Run("distributor with an approved trip may rate", func(t *testing.T) {
		trip := e.publishTrip(t, companyOwner, company.ID, 10, 1)
		e.approveDistributor(t, companyOwner, distOwner, dist.ID, trip.ID)

		got, err := e.ratingSvc.RateCompany(distOwner, company.ID, 4)
		require.NoError(t, err)
		assert.Equal(t, 4.0, got.Rating)
	})

	t.Run("ratings are last-write-wins", func(t *testing.T) {
		got, err := e.ratingSvc.RateCompany(distOwner, company.ID, 2)
		require.NoError(t, err)
		assert.Equal(t, 2.0, got.Rating)
	})

	t.Run("company role may not rate companies", func(t *testing.T) {
		_, err := e.ratingSvc.RateCompany(companyOwner, company.ID, 3)
		assert.True(t, errors.Is(err, ErrAccessDenied))
	})
}

func TestRateDistributorEligibility(t *testing.T) {
	e := newEnv(t)
	companyOwner, company := e.companyPair(t)
	distOwner, dist := e.distributorPair(t, company.ID)

	t.Run("company without an approved request may not rate", func(t *testing.T) {
		_, err := e.ratingSvc.RateDistributor(companyOwner, dist.ID, 4)
		assert.True(t, errors.Is(err, ErrAccessDenied))
	})

	t.Run("company that approved the distributor may rate", func(t *testing.T) {
		trip := e.publishTrip(t, companyOwner, company.ID, 10, 1)
		e.approveDistributor(t, companyOwner, distOwner, dist.ID, trip.ID)

		got, err := e.ratingSvc.RateDistributor(companyOwner, dist.ID, 5)
		require.NoError(t, err)
		assert.Equal(t, 5.0, got.Rating)
	})

	t.Run("an unrelated company may not rate", func(t *testing.T) {
		otherOwner, _ := e.companyPair(t)
		_, err := e.ratingSvc.RateDistributor(otherOwner, dist.ID, 3)
		assert.True(t, errors.Is(err, ErrAccessDenied))
	})

	t.Run("a rejected request does not qualify", func(t *testing.T) {
		strangerOwner, strangerCo := e.companyPair(t)
		trip := e.publishTrip(t, strangerOwner, strangerCo.ID, 4, 1)
		_, otherDist := e.distributorPair(t, strangerCo.ID)
		req, err := e.tripSvc.RequestTrip(e.findUser(t, otherDist.OwnerUserID), otherDist.ID, trip.ID)
		require.NoError(t, err)
		_, err = e.tripSvc.DecideRequest(strangerOwner, req.ID, false)
		require.NoError(t, err)

		_, err = e.ratingSvc.RateDistributor(strangerOwner, otherDist.ID, 3)
		assert.True(t, errors.Is(err, ErrAccessDenied))
	})
}

func TestRateCashierEligibility(t *testing.T) {
	e := newEnv(t)
	_, company := e.companyPair(t)
	distOwner, dist := e.distributorPair(t, company.ID)
	_, cashier := e.cashierPair(t, dist.ID)

	t.Run("owning distributor may rate their cashier", func(t *testing.T) {
		got, err := e.ratingSvc.RateCashier(distOwner, cashier.ID, 4)
		require.NoError(t, err)
		assert.Equal(t, 4.0, got.Rating)
	})

	t.Run("a different distributor may not", func(t *testing.T) {
		otherOwner, _ := e.distributorPair(t, company.ID)
		_, err := e.ratingSvc.RateCashier(otherOwner, cashier.ID, 2)
		assert.True(t, errors.Is(err, ErrAccessDenied))
	})

	t.Run("admin always may", func(t *testing.T) {
		got, err := e.ratingSvc.RateCashier(e.admin(t), cashier.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, 1.0, got.Rating)
	})

	t.Run("cashiers may not rate anyone", func(t *testing.T) {
		u := &model.User{ID: cashier.UserID, Role: model.RoleCashier, IsActive: true}
		_, err := e.ratingSvc.RateCashier(u, cashier.ID, 3)
		assert.True(t, errors.Is(err, ErrAccessDenied))
	})
}

// findUser loads a user record by id for acting on behalf of an
// already created owner.
func (e *env) findUser(t *testing.T, id string) *model.User {
	t.Helper()
	u, err := e.users.FindByID(id)
	require.NoError(t, err)
	return &u
}
