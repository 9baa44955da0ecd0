package users

import (
	"context"
	"strconv"
	"time"

	"github.com/dmitrijs2005/linkfo/internal/common"
	"github.com/dmitrijs2005/linkfo/internal/dbx"
	"github.com/dmitrijs2005/linkfo/internal/server/models"
)

// MemoryTable holds the accounts of an in-memory store.
type MemoryTable struct {
	byID    map[string]*models.User
	byEmail map[string]string
}

func NewMemoryTable() *MemoryTable {
	return &MemoryTable{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]string),
	}
}

type MemoryRepository struct {
	mu dbx.RWLocker
	t  *MemoryTable
}

func NewMemoryRepository(t *MemoryTable, mu dbx.RWLocker) *MemoryRepository {
	return &MemoryRepository{mu: mu, t: t}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.t.byEmail[user.Email]; ok {
		return nil, common.ErrorConflict
	}

	u := *user
	if u.ID == "" {
		u.ID = strconv.Itoa(len(r.t.byID) + 1)
	}
	if _, ok := r.t.byID[u.ID]; ok {
		return nil, common.ErrorConflict
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	r.t.byID[u.ID] = &u
	r.t.byEmail[u.Email] = u.ID

	out := u
	return &out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.t.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *u
	return &out, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.t.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *r.t.byID[id]
	return &out, nil
}

func (r *MemoryRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.t.byID[user.ID]
	if !ok {
		return common.ErrorNotFound
	}
	u.Name = user.Name
	u.Bio = user.Bio
	u.AvatarURL = user.AvatarURL
	return nil
}

func (r *MemoryRepository) IncrementProfileViews(ctx context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.t.byID[id]
	if !ok {
		return 0, common.ErrorNotFound
	}
	u.ProfileViews++
	return u.ProfileViews, nil
}
