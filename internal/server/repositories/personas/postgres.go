package personas

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/linkfo/internal/common"
	"github.com/dmitrijs2005/linkfo/internal/dbx"
	"github.com/dmitrijs2005/linkfo/internal/server/models"
)

// profileDoc is the JSONB column holding the nested parts of a persona.
type profileDoc struct {
	KnowledgeDomains   map[string]models.KnowledgeDomain `json:"knowledge_domains"`
	CommunicationStyle models.CommunicationStyle         `json:"communication_style"`
	PersonalityTraits  map[string]models.Trait           `json:"personality_traits"`
	ValuesAndInterests map[string]models.Affinity        `json:"values_and_interests"`
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, ownerID string) (*models.Persona, error) {
	query :=
		`SELECT owner_id, version, created_at, updated_at, profile, content_sample_size, confidence_score
		 FROM personas
		 WHERE owner_id = $1
		 `

	p := &models.Persona{}
	var raw []byte
	err := r.db.QueryRowContext(ctx, query, ownerID).Scan(
		&p.OwnerID, &p.Version, &p.CreatedAt, &p.UpdatedAt, &raw, &p.ContentSampleSize, &p.ConfidenceScore)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	var doc profileDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode persona profile: %w", err)
	}
	p.KnowledgeDomains = doc.KnowledgeDomains
	p.CommunicationStyle = doc.CommunicationStyle
	p.PersonalityTraits = doc.PersonalityTraits
	p.ValuesAndInterests = doc.ValuesAndInterests

	return p, nil
}

func (r *PostgresRepository) Save(ctx context.Context, p *models.Persona) error {
	raw, err := json.Marshal(profileDoc{
		KnowledgeDomains:   p.KnowledgeDomains,
		CommunicationStyle: p.CommunicationStyle,
		PersonalityTraits:  p.PersonalityTraits,
		ValuesAndInterests: p.ValuesAndInterests,
	})
	if err != nil {
		return fmt.Errorf("encode persona profile: %w", err)
	}

	query :=
		`INSERT INTO personas (owner_id, version, created_at, updated_at, profile, content_sample_size, confidence_score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (owner_id) DO UPDATE SET
		   version = EXCLUDED.version,
		   updated_at = EXCLUDED.updated_at,
		   profile = EXCLUDED.profile,
		   content_sample_size = EXCLUDED.content_sample_size,
		   confidence_score = EXCLUDED.confidence_score
		 `

	_, err = r.db.ExecContext(ctx, query,
		p.OwnerID, p.Version, p.CreatedAt, p.UpdatedAt, raw, p.ContentSampleSize, p.ConfidenceScore)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Touch(ctx context.Context, ownerID string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE personas SET updated_at = $2 WHERE owner_id = $1`, ownerID, at)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
