package sources

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/linkfo/internal/dbx"
	"github.com/dmitrijs2005/linkfo/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.ContentSource, error) {
	query :=
		`SELECT id, owner_id, type, username, url, status, last_updated FROM content_sources
		 WHERE owner_id = $1
		 ORDER BY seq
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []models.ContentSource{}
	for rows.Next() {
		var (
			s           models.ContentSource
			lastUpdated sql.NullTime
		)
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Type, &s.Username, &s.URL, &s.Status, &lastUpdated); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if lastUpdated.Valid {
			t := lastUpdated.Time
			s.LastUpdated = &t
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}

// Create derives the id from the owner's row count. It must run inside a
// transaction: the per-owner lock that keeps those ids unique is released
// at commit.
func (r *PostgresRepository) Create(ctx context.Context, s *models.ContentSource) (*models.ContentSource, error) {
	if err := dbx.LockKey(ctx, r.db, "content_sources", s.OwnerID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	query :=
		`INSERT INTO content_sources (id, owner_id, type, username, url, status, last_updated)
		 VALUES ((SELECT (COUNT(*) + 1)::text FROM content_sources WHERE owner_id = $1), $1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	cs := *s
	var lastUpdated sql.NullTime
	if cs.LastUpdated != nil {
		lastUpdated = sql.NullTime{Time: *cs.LastUpdated, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		cs.OwnerID, cs.Type, cs.Username, cs.URL, cs.Status, lastUpdated).Scan(&cs.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &cs, nil
}
