package personas

import (
	"context"
	"time"

	"github.com/dmitrijs2005/linkfo/internal/common"
	"github.com/dmitrijs2005/linkfo/internal/dbx"
	"github.com/dmitrijs2005/linkfo/internal/server/models"
)

type MemoryTable struct {
	byOwner map[string]*models.Persona
}

func NewMemoryTable() *MemoryTable {
	return &MemoryTable{byOwner: make(map[string]*models.Persona)}
}

type MemoryRepository struct {
	mu dbx.RWLocker
	t  *MemoryTable
}

func NewMemoryRepository(t *MemoryTable, mu dbx.RWLocker) *MemoryRepository {
	return &MemoryRepository{mu: mu, t: t}
}

// Get returns a shallow copy; maps inside are shared with the table and
// must be treated as read-only.
func (r *MemoryRepository) Get(ctx context.Context, ownerID string) (*models.Persona, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.t.byOwner[ownerID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *p
	return &out, nil
}

func (r *MemoryRepository) Save(ctx context.Context, p *models.Persona) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *p
	r.t.byOwner[p.OwnerID] = &cp
	return nil
}

func (r *MemoryRepository) Touch(ctx context.Context, ownerID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.t.byOwner[ownerID]
	if !ok {
		return common.ErrorNotFound
	}
	p.UpdatedAt = at
	return nil
}
