package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/transport-ticketing/internal/model"
)

func TestTripStoreValueSemantics(t *testing.T) {
	r := NewTripRepository(NewSequenceGenerator())
	created, err := r.Create(model.Trip{
		CompanyID:              "co-1",
		Status:                 model.TripStatusActive,
		SeatsTotal:             10,
		TransportTypes:         []string{"bus"},
		ApprovedDistributorIDs: []string{"d-1"},
	})
	require.NoError(t, err)

	// Mutating the returned copy must not leak into the store.
	created.ApprovedDistributorIDs[0] = "tampered"
	created.TransportTypes = append(created.TransportTypes, "ferry")

	stored, err := r.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"d-1"}, stored.ApprovedDistributorIDs)
	assert.Equal(t, []string{"bus"}, stored.TransportTypes)
}

func TestSaveUnknownTrip(t *testing.T) {
	r := NewTripRepository(NewSequenceGenerator())
	_, err := r.Save(model.Trip{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindDepartingWithin(t *testing.T) {
	r := NewTripRepository(NewSequenceGenerator())
	now := time.Now().UTC()

	soon, err := r.Create(model.Trip{Status: model.TripStatusActive, Departure: now.Add(2 * time.Hour)})
	require.NoError(t, err)
	_, err = r.Create(model.Trip{Status: model.TripStatusActive, Departure: now.Add(72 * time.Hour)})
	require.NoError(t, err)
	_, err = r.Create(model.Trip{Status: model.TripStatusCancelled, Departure: now.Add(2 * time.Hour)})
	require.NoError(t, err)

	got := r.FindDepartingWithin(now, now.Add(24*time.Hour), model.TripStatusActive, model.TripStatusApproved)
	require.Len(t, got, 1)
	assert.Equal(t, soon.ID, got[0].ID)
}
