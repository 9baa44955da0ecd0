// Package links stores the ordered links of every owner.
package links

import (
	"context"

	"github.com/dmitrijs2005/linkfo/internal/server/models"
)

type Repository interface {
	// LockOwner serializes transactions that read and rewrite one owner's
	// positions. It holds until the transaction ends.
	LockOwner(ctx context.Context, ownerID string) error
	// ListByOwner returns the owner's links ordered by position. An owner
	// without links gets an empty slice.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Link, error)
	Get(ctx context.Context, ownerID, id string) (*models.Link, error)
	Create(ctx context.Context, link *models.Link) error
	// Update writes title, url, icon and color. Positions change only
	// through SetPositions.
	Update(ctx context.Context, link *models.Link) error
	Delete(ctx context.Context, ownerID, id string) error
	// SetPositions renumbers the owner's links 1..N in the order of ids.
	// ids must name every link of the owner exactly once.
	SetPositions(ctx context.Context, ownerID string, ids []string) error
	IncrementClicks(ctx context.Context, ownerID, id string) (int64, error)
}
