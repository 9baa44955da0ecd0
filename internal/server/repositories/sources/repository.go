// Package sources stores the content sources connected to each owner's
// persona.
package sources

import (
	"context"

	"github.com/dmitrijs2005/linkfo/internal/server/models"
)

type Repository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.ContentSource, error)
	// Create assigns the source the id count+1 within its owner.
	Create(ctx context.Context, s *models.ContentSource) (*models.ContentSource, error)
}
