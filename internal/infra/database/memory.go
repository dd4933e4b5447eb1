package database

import (
	"context"
	"sync"
	"time"

	"github.com/xavierca1/lead-intake/internal/entity"
)

// InMemoryLeadRepository backs the service when no DATABASE_URL is set.
// A single mutex makes every operation atomic; order holds insertion order
// so listings come back in creation order.
type InMemoryLeadRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Lead
	order []string
}

func NewInMemoryLeadRepository() *InMemoryLeadRepository {
	return &InMemoryLeadRepository{
		byID: make(map[string]*entity.Lead),
	}
}

func (r *InMemoryLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[lead.ID]; exists {
		return entity.ErrDuplicateLead
	}

	r.byID[lead.ID] = lead.Clone()
	r.order = append(r.order, lead.ID)
	return nil
}

func (r *InMemoryLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lead, ok := r.byID[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}
	return lead.Clone(), nil
}

func (r *InMemoryLeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	leads := make([]*entity.Lead, 0, len(r.order))
	for _, id := range r.order {
		leads = append(leads, r.byID[id].Clone())
	}
	return leads, nil
}

func (r *InMemoryLeadRepository) UpdateStatus(ctx context.Context, id string, status entity.LeadStatus, updatedAt time.Time) (*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lead, ok := r.byID[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}

	lead.Status = status
	lead.UpdatedAt = updatedAt
	return lead.Clone(), nil
}

// Len reports the number of stored leads. Handy in tests asserting that a
// failed submission wrote nothing.
func (r *InMemoryLeadRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
