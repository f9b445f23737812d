package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/transport-ticketing/internal/model"
)

func TestUserEmailUniqueness(t *testing.T) {
	r := NewUserRepository(NewSequenceGenerator())
	_, err := r.Create(model.User{Email: "Pat@Example.com", Role: model.RoleAdmin})
	require.NoError(t, err)

	// Uniqueness ignores case.
	_, err = r.Create(model.User{Email: "pat@example.com", Role: model.RoleAdmin})
	assert.ErrorIs(t, err, ErrEmailTaken)

	got, err := r.FindByEmail("PAT@EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, "Pat@Example.com", got.Email)
}

func TestSequenceGenerator(t *testing.T) {
	gen := NewSequenceGenerator()
	assert.Equal(t, "trip-1", gen.NextID("trip"))
	assert.Equal(t, "trip-2", gen.NextID("trip"))
	assert.Equal(t, "user-3", gen.NextID("user"))
}
