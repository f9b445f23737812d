package repository

import (
	"sync"
	"time"

	"github.com/iliyamo/transport-ticketing/internal/model"
)

// RefreshTokenRepository stores hashed refresh tokens.  Like everything
// else in this process, sessions do not survive a restart.
type RefreshTokenRepository interface {
	Create(t model.RefreshToken) (model.RefreshToken, error)
	// FindActiveByHash returns the token with the given hash if it is
	// neither revoked nor expired.
	FindActiveByHash(hash string) (model.RefreshToken, error)
	Revoke(id string) error
}

type tokenRepo struct {
	mu     sync.RWMutex
	byID   map[string]model.RefreshToken
	byHash map[string]string
	gen    IDGenerator
}

// NewRefreshTokenRepository returns an empty in-memory token store.
func NewRefreshTokenRepository(gen IDGenerator) RefreshTokenRepository {
	return &tokenRepo{
		byID:   make(map[string]model.RefreshToken),
		byHash: make(map[string]string),
		gen:    gen,
	}
}

func (r *tokenRepo) Create(t model.RefreshToken) (model.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = r.gen.NextID("rt")
	t.CreatedAt = time.Now().UTC()
	r.byID[t.ID] = t
	r.byHash[t.TokenHash] = t.ID
	return t, nil
}

func (r *tokenRepo) FindActiveByHash(hash string) (model.RefreshToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byHash[hash]
	if !ok {
		return model.RefreshToken{}, ErrNotFound
	}
	t := r.byID[id]
	if t.RevokedAt != nil || time.Now().UTC().After(t.ExpiresAt) {
		return model.RefreshToken{}, ErrNotFound
	}
	return t, nil
}

func (r *tokenRepo) Revoke(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	if t.RevokedAt == nil {
		now := time.Now().UTC()
		t.RevokedAt = &now
		r.byID[id] = t
	}
	return nil
}
