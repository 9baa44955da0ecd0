// Package personas stores one persona profile per owner.
package personas

import (
	"context"
	"time"

	"github.com/dmitrijs2005/linkfo/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context, ownerID string) (*models.Persona, error)
	// Save creates or replaces the owner's persona.
	Save(ctx context.Context, p *models.Persona) error
	// Touch sets UpdatedAt and returns common.ErrorNotFound when the owner
	// has no persona.
	Touch(ctx context.Context, ownerID string, at time.Time) error
}
