package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/linkfo/internal/common"
	"github.com/dmitrijs2005/linkfo/internal/server/models"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/repomanager"
)

// ProfileService serves the unauthenticated public page of an account.
type ProfileService struct {
	repomanager repomanager.RepositoryManager
}

func NewProfileService(m repomanager.RepositoryManager) *ProfileService {
	return &ProfileService{repomanager: m}
}

// Public returns the published page of userID and counts the view.
func (s *ProfileService) Public(ctx context.Context, userID string) (*models.PublicProfile, error) {
	u, err := s.repomanager.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrProfileNotFound)
	}

	if _, err := s.repomanager.Users().IncrementProfileViews(ctx, userID); err != nil {
		return nil, notFoundAs(err, ErrProfileNotFound)
	}

	links, err := s.repomanager.Links().ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	p := &models.PublicProfile{
		ID:        u.ID,
		Name:      u.Name,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
		Links:     make([]models.PublicLink, 0, len(links)),
	}
	for i := range links {
		p.Links = append(p.Links, links[i].Public())
	}
	return p, nil
}

// Click counts a visit of one link on userID's page.
func (s *ProfileService) Click(ctx context.Context, userID, linkID string) (int64, error) {
	n, err := s.repomanager.Links().IncrementClicks(ctx, userID, linkID)
	if err != nil {
		return 0, notFoundAs(err, ErrLinkNotFound)
	}
	return n, nil
}

// notFoundAs replaces a repository not-found error with the specific one.
func notFoundAs(err, specific error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return specific
	}
	return err
}
