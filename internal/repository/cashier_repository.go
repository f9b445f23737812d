package repository

import (
	"sync"
	"time"

	"github.com/iliyamo/transport-ticketing/internal/model"
)

// CashierRepository stores cashiers.
type CashierRepository interface {
	Create(c model.Cashier) (model.Cashier, error)
	Save(c model.Cashier) (model.Cashier, error)
	FindByID(id string) (model.Cashier, error)
	FindByUserID(userID string) (model.Cashier, error)
	FindByDistributorID(distributorID string) []model.Cashier
	FindAll() []model.Cashier
}

type cashierRepo struct {
	mu   sync.RWMutex
	byID map[string]model.Cashier
	gen  IDGenerator
}

// NewCashierRepository returns an empty in-memory cashier store.
func NewCashierRepository(gen IDGenerator) CashierRepository {
	return &cashierRepo{byID: make(map[string]model.Cashier), gen: gen}
}

func (r *cashierRepo) Create(c model.Cashier) (model.Cashier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	c.ID = r.gen.NextID("cashier")
	c.CreatedAt = now
	c.UpdatedAt = now
	r.byID[c.ID] = c
	return c, nil
}

func (r *cashierRepo) Save(c model.Cashier) (model.Cashier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[c.ID]; !ok {
		return model.Cashier{}, ErrNotFound
	}
	c.UpdatedAt = time.Now().UTC()
	r.byID[c.ID] = c
	return c, nil
}

func (r *cashierRepo) FindByID(id string) (model.Cashier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return model.Cashier{}, ErrNotFound
	}
	return c, nil
}

func (r *cashierRepo) FindByUserID(userID string) (model.Cashier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.byID {
		if c.UserID == userID {
			return c, nil
		}
	}
	return model.Cashier{}, ErrNotFound
}

func (r *cashierRepo) FindByDistributorID(distributorID string) []model.Cashier {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Cashier
	for _, c := range r.byID {
		if c.DistributorID == distributorID {
			out = append(out, c)
		}
	}
	return out
}

func (r *cashierRepo) FindAll() []model.Cashier {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Cashier, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out
}
