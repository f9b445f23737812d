package repository

import (
	"sync"
	"time"

	"github.com/iliyamo/transport-ticketing/internal/model"
)

// CompanyRepository stores organizer companies.
type CompanyRepository interface {
	Create(c model.Company) (model.Company, error)
	Save(c model.Company) (model.Company, error)
	FindByID(id string) (model.Company, error)
	FindByOwnerUserID(userID string) (model.Company, error)
	FindAll() []model.Company
}

type companyRepo struct {
	mu   sync.RWMutex
	byID map[string]model.Company
	gen  IDGenerator
}

// NewCompanyRepository returns an empty in-memory company store.
func NewCompanyRepository(gen IDGenerator) CompanyRepository {
	return &companyRepo{byID: make(map[string]model.Company), gen: gen}
}

func (r *companyRepo) Create(c model.Company) (model.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	c.ID = r.gen.NextID("company")
	c.CreatedAt = now
	c.UpdatedAt = now
	r.byID[c.ID] = c
	return c, nil
}

func (r *companyRepo) Save(c model.Company) (model.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[c.ID]; !ok {
		return model.Company{}, ErrNotFound
	}
	c.UpdatedAt = time.Now().UTC()
	r.byID[c.ID] = c
	return c, nil
}

func (r *companyRepo) FindByID(id string) (model.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return model.Company{}, ErrNotFound
	}
	return c, nil
}

// FindByOwnerUserID resolves the company a user acts for.  The design
// assumes one owning user per company.
func (r *companyRepo) FindByOwnerUserID(userID string) (model.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.byID {
		if c.OwnerUserID == userID {
			return c, nil
		}
	}
	return model.Company{}, ErrNotFound
}

func (r *companyRepo) FindAll() []model.Company {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Company, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out
}
