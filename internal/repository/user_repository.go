package repository

import (
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/transport-ticketing/internal/model"
)

// UserRepository stores user accounts and enforces email uniqueness at
// creation time.
type UserRepository interface {
	Create(u model.User) (model.User, error)
	Save(u model.User) (model.User, error)
	FindByID(id string) (model.User, error)
	FindByEmail(email string) (model.User, error)
	FindAll() []model.User
}

type userRepo struct {
	mu      sync.RWMutex
	byID    map[string]model.User
	byEmail map[string]string // lowercased email -> user id
	gen     IDGenerator
}

// NewUserRepository returns an empty in-memory user store.
func NewUserRepository(gen IDGenerator) UserRepository {
	return &userRepo{
		byID:    make(map[string]model.User),
		byEmail: make(map[string]string),
		gen:     gen,
	}
}

func (r *userRepo) Create(u model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(u.Email)
	if _, exists := r.byEmail[key]; exists {
		return model.User{}, ErrEmailTaken
	}
	now := time.Now().UTC()
	u.ID = r.gen.NextID("user")
	u.CreatedAt = now
	u.UpdatedAt = now
	r.byID[u.ID] = u
	r.byEmail[key] = u.ID
	return u, nil
}

func (r *userRepo) Save(u model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[u.ID]; !ok {
		return model.User{}, ErrNotFound
	}
	u.UpdatedAt = time.Now().UTC()
	r.byID[u.ID] = u
	return u, nil
}

func (r *userRepo) FindByID(id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return u, nil
}

func (r *userRepo) FindByEmail(email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return r.byID[id], nil
}

func (r *userRepo) FindAll() []model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out
}
