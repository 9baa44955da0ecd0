// Package messages stores the append-only chat transcript of each owner.
package messages

import (
	"context"

	"github.com/dmitrijs2005/linkfo/internal/server/models"
)

type Repository interface {
	// ListByOwner returns the transcript in insertion order.
	ListByOwner(ctx context.Context, ownerID string) ([]models.ChatMessage, error)
	// Append stores m with id transcriptLength+1.
	Append(ctx context.Context, m *models.ChatMessage) (*models.ChatMessage, error)
	CountBySender(ctx context.Context, ownerID, sender string) (int, error)
}
