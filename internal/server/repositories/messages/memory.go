package messages

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/linkfo/internal/dbx"
	"github.com/dmitrijs2005/linkfo/internal/server/models"
)

type MemoryTable struct {
	byOwner map[string][]models.ChatMessage
}

func NewMemoryTable() *MemoryTable {
	return &MemoryTable{byOwner: make(map[string][]models.ChatMessage)}
}

type MemoryRepository struct {
	mu dbx.RWLocker
	t  *MemoryTable
}

func NewMemoryRepository(t *MemoryTable, mu dbx.RWLocker) *MemoryRepository {
	return &MemoryRepository{mu: mu, t: t}
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src := r.t.byOwner[ownerID]
	out := make([]models.ChatMessage, len(src))
	copy(out, src)
	return out, nil
}

func (r *MemoryRepository) Append(ctx context.Context, m *models.ChatMessage) (*models.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg := *m
	msg.ID = strconv.Itoa(len(r.t.byOwner[m.OwnerID]) + 1)
	r.t.byOwner[m.OwnerID] = append(r.t.byOwner[m.OwnerID], msg)
	return &msg, nil
}

func (r *MemoryRepository) CountBySender(ctx context.Context, ownerID, sender string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, m := range r.t.byOwner[ownerID] {
		if m.Sender == sender {
			n++
		}
	}
	return n, nil
}
