package repository

import (
	"sync"
	"time"

	"github.com/iliyamo/transport-ticketing/internal/model"
)

// TripRequestRepository stores distributor requests for selling rights.
type TripRequestRepository interface {
	Create(req model.TripRequest) (model.TripRequest, error)
	Save(req model.TripRequest) (model.TripRequest, error)
	FindByID(id string) (model.TripRequest, error)
	FindByTripID(tripID string) []model.TripRequest
	FindAll() []model.TripRequest
}

type tripRequestRepo struct {
	mu   sync.RWMutex
	byID map[string]model.TripRequest
	gen  IDGenerator
}

// NewTripRequestRepository returns an empty in-memory request store.
func NewTripRequestRepository(gen IDGenerator) TripRequestRepository {
	return &tripRequestRepo{byID: make(map[string]model.TripRequest), gen: gen}
}

func (r *tripRequestRepo) Create(req model.TripRequest) (model.TripRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	req.ID = r.gen.NextID("req")
	req.CreatedAt = now
	req.UpdatedAt = now
	r.byID[req.ID] = req
	return req, nil
}

func (r *tripRequestRepo) Save(req model.TripRequest) (model.TripRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[req.ID]; !ok {
		return model.TripRequest{}, ErrNotFound
	}
	req.UpdatedAt = time.Now().UTC()
	r.byID[req.ID] = req
	return req, nil
}

func (r *tripRequestRepo) FindByID(id string) (model.TripRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.byID[id]
	if !ok {
		return model.TripRequest{}, ErrNotFound
	}
	return req, nil
}

func (r *tripRequestRepo) FindByTripID(tripID string) []model.TripRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.TripRequest
	for _, req := range r.byID {
		if req.TripID == tripID {
			out = append(out, req)
		}
	}
	return out
}

func (r *tripRequestRepo) FindAll() []model.TripRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.TripRequest, 0, len(r.byID))
	for _, req := range r.byID {
		out = append(out, req)
	}
	return out
}
