package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/transport-ticketing/internal/model"
)

func TestRequireRole(t *testing.T) {
	active := &model.User{ID: "u-1", Role: model.RoleCompany, IsActive: true}
	inactive := &model.User{ID: "u-2", Role: model.RoleAdmin, IsActive: false}

	t.Run("allows matching role", func(t *testing.T) {
		assert.NoError(t, RequireRole(active, model.RoleCompany))
		assert.NoError(t, RequireRole(active, model.RoleAdmin, model.RoleCompany))
	})

	t.Run("denies nil actor", func(t *testing.T) {
		err := RequireRole(nil, model.RoleAdmin)
		assert.True(t, errors.Is(err, ErrAccessDenied))
	})

	t.Run("denies inactive actor regardless of role", func(t *testing.T) {
		err := RequireRole(inactive, model.RoleAdmin)
		assert.True(t, errors.Is(err, ErrAccessDenied))
	})

	t.Run("denies role outside the allowed set", func(t *testing.T) {
		err := RequireRole(active, model.RoleCashier, model.RoleDistributor)
		assert.True(t, errors.Is(err, ErrAccessDenied))
	})
}
