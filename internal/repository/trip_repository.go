package repository

import (
	"sync"
	"time"

	"github.com/iliyamo/transport-ticketing/internal/model"
)

// TripRepository stores trips.  Trips carry slices (transport types,
// approved distributors), so every read hands out a deep copy; callers
// mutate their copy and persist it with Save.
type TripRepository interface {
	Create(t model.Trip) (model.Trip, error)
	Save(t model.Trip) (model.Trip, error)
	FindByID(id string) (model.Trip, error)
	FindAll() []model.Trip
	// FindDepartingWithin returns trips in one of the given statuses
	// whose departure falls inside [from, to].
	FindDepartingWithin(from, to time.Time, statuses ...string) []model.Trip
}

type tripRepo struct {
	mu   sync.RWMutex
	byID map[string]model.Trip
	gen  IDGenerator
}

// NewTripRepository returns an empty in-memory trip store.
func NewTripRepository(gen IDGenerator) TripRepository {
	return &tripRepo{byID: make(map[string]model.Trip), gen: gen}
}

func (r *tripRepo) Create(t model.Trip) (model.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	t.ID = r.gen.NextID("trip")
	t.CreatedAt = now
	t.UpdatedAt = now
	r.byID[t.ID] = t.Clone()
	return t, nil
}

func (r *tripRepo) Save(t model.Trip) (model.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[t.ID]; !ok {
		return model.Trip{}, ErrNotFound
	}
	t.UpdatedAt = time.Now().UTC()
	r.byID[t.ID] = t.Clone()
	return t, nil
}

func (r *tripRepo) FindByID(id string) (model.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byID[id]
	if !ok {
		return model.Trip{}, ErrNotFound
	}
	return t.Clone(), nil
}

func (r *tripRepo) FindAll() []model.Trip {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Trip, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t.Clone())
	}
	return out
}

func (r *tripRepo) FindDepartingWithin(from, to time.Time, statuses ...string) []model.Trip {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Trip
	for _, t := range r.byID {
		if t.Departure.Before(from) || t.Departure.After(to) {
			continue
		}
		for _, s := range statuses {
			if t.Status == s {
				out = append(out, t.Clone())
				break
			}
		}
	}
	return out
}
