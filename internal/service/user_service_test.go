package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/transport-ticketing/internal/model"
)

func TestCreateUser(t *testing.T) {
	e := newEnv(t)

	t.Run("creates an active account", func(t *testing.T) {
		u, err := e.userSvc.CreateUser("pat@example.com", "Pat", model.RoleCompany, "hash")
		require.NoError(t, err)
		assert.True(t, u.IsActive)
		assert.NotEmpty(t, u.ID)
	})

	t.Run("refuses a duplicate email", func(t *testing.T) {
		_, err := e.userSvc.CreateUser("pat@example.com", "Other", model.RoleAdmin, "hash")
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("refuses an unknown role", func(t *testing.T) {
		_, err := e.userSvc.CreateUser("new@example.com", "New", "WIZARD", "hash")
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("refuses a blank email", func(t *testing.T) {
		_, err := e.userSvc.CreateUser("   ", "New", model.RoleAdmin, "hash")
		assert.True(t, errors.Is(err, ErrValidation))
	})
}

func TestDeactivate(t *testing.T) {
	e := newEnv(t)
	admin := e.admin(t)
	victim := e.user(t, model.RoleDistributor)

	t.Run("admin deactivates and the account fails authorization", func(t *testing.T) {
		u, err := e.userSvc.Deactivate(admin, victim.ID)
		require.NoError(t, err)
		assert.False(t, u.IsActive)
		assert.True(t, errors.Is(RequireRole(&u, model.RoleDistributor), ErrAccessDenied))
	})

	t.Run("non-admin is refused", func(t *testing.T) {
		_, err := e.userSvc.Deactivate(victim, admin.ID)
		assert.True(t, errors.Is(err, ErrAccessDenied))
	})
}
