// Package users stores accounts. Emails are expected to be normalised by
// the caller and are unique.
package users

import (
	"context"

	"github.com/dmitrijs2005/linkfo/internal/server/models"
)

type Repository interface {
	// Create stores user. An empty ID is assigned as the current account
	// count plus one. A taken email yields common.ErrorConflict.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdateProfile writes name, bio and avatar URL of user.
	UpdateProfile(ctx context.Context, user *models.User) error
	IncrementProfileViews(ctx context.Context, id string) (int64, error)
}
