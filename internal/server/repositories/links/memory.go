package links

import (
	"context"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/linkfo/internal/common"
	"github.com/dmitrijs2005/linkfo/internal/dbx"
	"github.com/dmitrijs2005/linkfo/internal/server/models"
)

// MemoryTable holds links keyed by owner.
type MemoryTable struct {
	byOwner map[string][]*models.Link
}

func NewMemoryTable() *MemoryTable {
	return &MemoryTable{byOwner: make(map[string][]*models.Link)}
}

type MemoryRepository struct {
	mu dbx.RWLocker
	t  *MemoryTable
}

func NewMemoryRepository(t *MemoryTable, mu dbx.RWLocker) *MemoryRepository {
	return &MemoryRepository{mu: mu, t: t}
}

func (r *MemoryRepository) find(ownerID, id string) (int, *models.Link) {
	for i, l := range r.t.byOwner[ownerID] {
		if l.ID == id {
			return i, l
		}
	}
	return -1, nil
}

// LockOwner is a no-op: the in-memory manager runs every transaction under
// its write lock.
func (r *MemoryRepository) LockOwner(ctx context.Context, ownerID string) error {
	return nil
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src := r.t.byOwner[ownerID]
	out := make([]models.Link, 0, len(src))
	for _, l := range src {
		out = append(out, *l)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, ownerID, id string) (*models.Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, l := r.find(ownerID, id)
	if l == nil {
		return nil, common.ErrorNotFound
	}
	out := *l
	return &out, nil
}

func (r *MemoryRepository) Create(ctx context.Context, link *models.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, l := r.find(link.OwnerID, link.ID); l != nil {
		return common.ErrorConflict
	}
	l := *link
	r.t.byOwner[link.OwnerID] = append(r.t.byOwner[link.OwnerID], &l)
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, link *models.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, l := r.find(link.OwnerID, link.ID)
	if l == nil {
		return common.ErrorNotFound
	}
	l.Title = link.Title
	l.URL = link.URL
	l.Icon = link.Icon
	l.Color = link.Color
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, l := r.find(ownerID, id)
	if l == nil {
		return common.ErrorNotFound
	}
	list := r.t.byOwner[ownerID]
	r.t.byOwner[ownerID] = append(list[:i], list[i+1:]...)
	return nil
}

func (r *MemoryRepository) SetPositions(ctx context.Context, ownerID string, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.t.byOwner[ownerID]
	if len(ids) != len(list) {
		return fmt.Errorf("set positions: got %d ids for %d links", len(ids), len(list))
	}

	byID := make(map[string]*models.Link, len(list))
	for _, l := range list {
		byID[l.ID] = l
	}

	ordered := make([]*models.Link, 0, len(ids))
	for _, id := range ids {
		l, ok := byID[id]
		if !ok {
			return fmt.Errorf("set positions: %w: link %s", common.ErrorNotFound, id)
		}
		delete(byID, id)
		ordered = append(ordered, l)
	}

	for i, l := range ordered {
		l.Position = i + 1
	}
	r.t.byOwner[ownerID] = ordered
	return nil
}

func (r *MemoryRepository) IncrementClicks(ctx context.Context, ownerID, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, l := r.find(ownerID, id)
	if l == nil {
		return 0, common.ErrorNotFound
	}
	l.ClickCount++
	return l.ClickCount, nil
}
