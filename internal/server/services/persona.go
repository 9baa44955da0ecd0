package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/linkfo/internal/common"
	"github.com/dmitrijs2005/linkfo/internal/server/models"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/linkfo/internal/validatex"
)

const (
	personaUpdateMessage = "Persona update initiated"
	personaUpdateStatus  = "processing"
	personaUpdateETA     = "5 minutes"
)

type PersonaService struct {
	repomanager repomanager.RepositoryManager
	validate    *validatex.Validator
	now         func() time.Time
}

func NewPersonaService(m repomanager.RepositoryManager, v *validatex.Validator) *PersonaService {
	return &PersonaService{repomanager: m, validate: v, now: time.Now}
}

func (s *PersonaService) Get(ctx context.Context, ownerID string) (*models.Persona, error) {
	p, err := s.repomanager.Personas().Get(ctx, ownerID)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, ErrPersonaNotFound
	}
	return p, err
}

// RequestUpdate records that a refresh was asked for. No field other than
// the update time changes.
func (s *PersonaService) RequestUpdate(ctx context.Context, ownerID string) (*models.PersonaUpdateStatus, error) {
	err := s.repomanager.Personas().Touch(ctx, ownerID, s.now().UTC())
	if errors.Is(err, common.ErrorNotFound) {
		return nil, ErrPersonaNotFound
	}
	if err != nil {
		return nil, err
	}

	return &models.PersonaUpdateStatus{
		Message:                 personaUpdateMessage,
		Status:                  personaUpdateStatus,
		EstimatedCompletionTime: personaUpdateETA,
	}, nil
}

func (s *PersonaService) ListSources(ctx context.Context, ownerID string) ([]models.ContentSource, error) {
	return s.repomanager.Sources().ListByOwner(ctx, ownerID)
}

// AddSource connects a source. Blogs keep only their URL, other types only
// their username.
func (s *PersonaService) AddSource(ctx context.Context, ownerID string, req models.NewContentSource) (*models.ContentSource, error) {
	// The dropped field is never stored, so it is not validated either.
	if req.Type == models.SourceTypeBlog {
		req.Username = ""
	} else {
		req.URL = ""
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	src := &models.ContentSource{
		OwnerID:     ownerID,
		Type:        req.Type,
		Status:      models.SourceStatusConnected,
		LastUpdated: &now,
	}
	if req.Type == models.SourceTypeBlog {
		src.URL = req.URL
	} else {
		src.Username = req.Username
	}

	var out *models.ContentSource
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		out, err = r.Sources().Create(ctx, src)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
