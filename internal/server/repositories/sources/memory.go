package sources

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/linkfo/internal/dbx"
	"github.com/dmitrijs2005/linkfo/internal/server/models"
)

type MemoryTable struct {
	byOwner map[string][]models.ContentSource
}

func NewMemoryTable() *MemoryTable {
	return &MemoryTable{byOwner: make(map[string][]models.ContentSource)}
}

type MemoryRepository struct {
	mu dbx.RWLocker
	t  *MemoryTable
}

func NewMemoryRepository(t *MemoryTable, mu dbx.RWLocker) *MemoryRepository {
	return &MemoryRepository{mu: mu, t: t}
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.ContentSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src := r.t.byOwner[ownerID]
	out := make([]models.ContentSource, len(src))
	copy(out, src)
	return out, nil
}

func (r *MemoryRepository) Create(ctx context.Context, s *models.ContentSource) (*models.ContentSource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cs := *s
	cs.ID = strconv.Itoa(len(r.t.byOwner[s.OwnerID]) + 1)
	r.t.byOwner[s.OwnerID] = append(r.t.byOwner[s.OwnerID], cs)
	return &cs, nil
}
