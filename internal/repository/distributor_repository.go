package repository

import (
	"sync"
	"time"

	"github.com/iliyamo/transport-ticketing/internal/model"
)

// DistributorRepository stores distributors.
type DistributorRepository interface {
	Create(d model.Distributor) (model.Distributor, error)
	Save(d model.Distributor) (model.Distributor, error)
	FindByID(id string) (model.Distributor, error)
	FindByOwnerUserID(userID string) (model.Distributor, error)
	FindByCompanyID(companyID string) []model.Distributor
	FindAll() []model.Distributor
}

type distributorRepo struct {
	mu   sync.RWMutex
	byID map[string]model.Distributor
	gen  IDGenerator
}

// NewDistributorRepository returns an empty in-memory distributor store.
func NewDistributorRepository(gen IDGenerator) DistributorRepository {
	return &distributorRepo{byID: make(map[string]model.Distributor), gen: gen}
}

func (r *distributorRepo) Create(d model.Distributor) (model.Distributor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	d.ID = r.gen.NextID("dist")
	d.CreatedAt = now
	d.UpdatedAt = now
	r.byID[d.ID] = d
	return d, nil
}

func (r *distributorRepo) Save(d model.Distributor) (model.Distributor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[d.ID]; !ok {
		return model.Distributor{}, ErrNotFound
	}
	d.UpdatedAt = time.Now().UTC()
	r.byID[d.ID] = d
	return d, nil
}

func (r *distributorRepo) FindByID(id string) (model.Distributor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	if !ok {
		return model.Distributor{}, ErrNotFound
	}
	return d, nil
}

func (r *distributorRepo) FindByOwnerUserID(userID string) (model.Distributor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.byID {
		if d.OwnerUserID == userID {
			return d, nil
		}
	}
	return model.Distributor{}, ErrNotFound
}

func (r *distributorRepo) FindByCompanyID(companyID string) []model.Distributor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Distributor
	for _, d := range r.byID {
		if d.CompanyID == companyID {
			out = append(out, d)
		}
	}
	return out
}

func (r *distributorRepo) FindAll() []model.Distributor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Distributor, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, d)
	}
	return out
}
