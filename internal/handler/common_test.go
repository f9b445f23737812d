package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/transport-ticketing/internal/model"
	"github.com/iliyamo/transport-ticketing/internal/repository"
	"github.com/iliyamo/transport-ticketing/internal/service"
)

func newCtx(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRespondErrMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"access denied", service.ErrAccessDenied, http.StatusForbidden},
		{"engine not found", service.ErrNotFound, http.StatusNotFound},
		{"store not found", repository.ErrNotFound, http.StatusNotFound},
		{"validation", service.ErrValidation, http.StatusUnprocessableEntity},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newCtx(t)
			require.NoError(t, respondErr(c, tc.err))
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestCurrentActor(t *testing.T) {
	users := repository.NewUserRepository(repository.NewSequenceGenerator())
	u, err := users.Create(model.User{Email: "pat@example.com", Role: model.RoleAdmin, IsActive: true})
	require.NoError(t, err)

	t.Run("loads the live record", func(t *testing.T) {
		c, _ := newCtx(t)
		c.Set("user_id", u.ID)
		actor, err := currentActor(c, users)
		require.NoError(t, err)
		assert.Equal(t, u.ID, actor.ID)
	})

	t.Run("fails without a user_id", func(t *testing.T) {
		c, _ := newCtx(t)
		_, err := currentActor(c, users)
		assert.Error(t, err)
	})

	t.Run("fails for an unknown id", func(t *testing.T) {
		c, _ := newCtx(t)
		c.Set("user_id", "ghost")
		_, err := currentActor(c, users)
		assert.Error(t, err)
	})
}
