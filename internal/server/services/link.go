package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/linkfo/internal/common"
	"github.com/dmitrijs2005/linkfo/internal/server/models"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/linkfo/internal/validatex"
	"github.com/google/uuid"
)

var newLinkID = uuid.NewString

// LinkService manages an owner's ordered link list. Every mutation leaves
// the owner's positions as exactly 1..N.
type LinkService struct {
	repomanager repomanager.RepositoryManager
	validate    *validatex.Validator
}

func NewLinkService(m repomanager.RepositoryManager, v *validatex.Validator) *LinkService {
	return &LinkService{repomanager: m, validate: v}
}

func (s *LinkService) List(ctx context.Context, ownerID string) ([]models.Link, error) {
	return s.repomanager.Links().ListByOwner(ctx, ownerID)
}

// Add appends a link at the end of the owner's list.
func (s *LinkService) Add(ctx context.Context, ownerID string, req models.NewLink) (*models.Link, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	link := &models.Link{
		ID:      newLinkID(),
		OwnerID: ownerID,
		Title:   req.Title,
		URL:     req.URL,
		Icon:    req.Icon,
		Color:   req.Color,
	}
	if link.Icon == "" {
		link.Icon = models.DefaultLinkIcon
	}
	if link.Color == "" {
		link.Color = models.DefaultLinkColor
	}

	err := s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		if err := r.Links().LockOwner(ctx, ownerID); err != nil {
			return err
		}
		existing, err := r.Links().ListByOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		link.Position = len(existing) + 1
		return r.Links().Create(ctx, link)
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

// Update applies the fields present in patch. A new position is clamped to
// [1, N]; the link moves to that slot and the others shift around it.
func (s *LinkService) Update(ctx context.Context, ownerID, id string, patch models.LinkPatch) (*models.Link, error) {
	if err := s.validate.Struct(patch); err != nil {
		return nil, err
	}

	var out *models.Link
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		if err := r.Links().LockOwner(ctx, ownerID); err != nil {
			return err
		}
		link, err := r.Links().Get(ctx, ownerID, id)
		if err != nil {
			return err
		}

		if patch.Title != nil {
			link.Title = *patch.Title
		}
		if patch.URL != nil {
			link.URL = *patch.URL
		}
		if patch.Icon != nil {
			link.Icon = *patch.Icon
		}
		if patch.Color != nil {
			link.Color = *patch.Color
		}
		if err := r.Links().Update(ctx, link); err != nil {
			return err
		}

		if patch.Position != nil && *patch.Position != link.Position {
			all, err := r.Links().ListByOwner(ctx, ownerID)
			if err != nil {
				return err
			}
			if err := r.Links().SetPositions(ctx, ownerID, moveTo(all, id, *patch.Position)); err != nil {
				return err
			}
		}

		out, err = r.Links().Get(ctx, ownerID, id)
		return err
	})
	if errors.Is(err, common.ErrorNotFound) {
		return nil, ErrLinkNotFound
	}
	return out, err
}

// moveTo returns the ids of links (ordered by position) with id moved to
// the 1-based slot pos, clamped to the list bounds.
func moveTo(links []models.Link, id string, pos int) []string {
	ids := make([]string, 0, len(links))
	for _, l := range links {
		if l.ID != id {
			ids = append(ids, l.ID)
		}
	}

	pos = max(1, min(pos, len(ids)+1))
	ids = append(ids, "")
	copy(ids[pos:], ids[pos-1:])
	ids[pos-1] = id
	return ids
}

// Remove deletes a link and closes the gap it leaves.
func (s *LinkService) Remove(ctx context.Context, ownerID, id string) error {
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		if err := r.Links().LockOwner(ctx, ownerID); err != nil {
			return err
		}
		if err := r.Links().Delete(ctx, ownerID, id); err != nil {
			return err
		}

		rest, err := r.Links().ListByOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		ids := make([]string, len(rest))
		for i, l := range rest {
			ids[i] = l.ID
		}
		return r.Links().SetPositions(ctx, ownerID, ids)
	})
	if errors.Is(err, common.ErrorNotFound) {
		return ErrLinkNotFound
	}
	return err
}
