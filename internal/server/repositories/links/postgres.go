package links

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/linkfo/internal/common"
	"github.com/dmitrijs2005/linkfo/internal/dbx"
	"github.com/dmitrijs2005/linkfo/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// LockOwner must run inside a transaction; the lock is released when it
// ends.
func (r *PostgresRepository) LockOwner(ctx context.Context, ownerID string) error {
	return dbx.LockKey(ctx, r.db, "links", ownerID)
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Link, error) {
	query :=
		`SELECT id, owner_id, title, url, icon, color, position, click_count FROM links
		 WHERE owner_id = $1
		 ORDER BY position
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []models.Link{}
	for rows.Next() {
		var l models.Link
		if err := rows.Scan(&l.ID, &l.OwnerID, &l.Title, &l.URL, &l.Icon, &l.Color, &l.Position, &l.ClickCount); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}

func (r *PostgresRepository) Get(ctx context.Context, ownerID, id string) (*models.Link, error) {
	query :=
		`SELECT id, owner_id, title, url, icon, color, position, click_count FROM links
		 WHERE owner_id = $1 AND id = $2
		 `

	l := &models.Link{}
	err := r.db.QueryRowContext(ctx, query, ownerID, id).Scan(
		&l.ID, &l.OwnerID, &l.Title, &l.URL, &l.Icon, &l.Color, &l.Position, &l.ClickCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return l, nil
}

func (r *PostgresRepository) Create(ctx context.Context, link *models.Link) error {
	query :=
		`INSERT INTO links (id, owner_id, title, url, icon, color, position, click_count)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 `

	_, err := r.db.ExecContext(ctx, query,
		link.ID, link.OwnerID, link.Title, link.URL, link.Icon, link.Color, link.Position, link.ClickCount)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, link *models.Link) error {
	query :=
		`UPDATE links SET title = $3, url = $4, icon = $5, color = $6
		 WHERE owner_id = $1 AND id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, link.OwnerID, link.ID, link.Title, link.URL, link.Icon, link.Color)
	return checkAffected(res, err)
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM links WHERE owner_id = $1 AND id = $2`, ownerID, id)
	return checkAffected(res, err)
}

// SetPositions relies on the (owner_id, position) unique constraint being
// deferred to commit, so intermediate duplicates are allowed.
func (r *PostgresRepository) SetPositions(ctx context.Context, ownerID string, ids []string) error {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM links WHERE owner_id = $1`, ownerID).Scan(&count); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if count != len(ids) {
		return fmt.Errorf("set positions: got %d ids for %d links", len(ids), count)
	}

	for i, id := range ids {
		res, err := r.db.ExecContext(ctx,
			`UPDATE links SET position = $3 WHERE owner_id = $1 AND id = $2`, ownerID, id, i+1)
		if err := checkAffected(res, err); err != nil {
			return fmt.Errorf("set positions: link %s: %w", id, err)
		}
	}

	return nil
}

func (r *PostgresRepository) IncrementClicks(ctx context.Context, ownerID, id string) (int64, error) {
	query :=
		`UPDATE links SET click_count = click_count + 1
		 WHERE owner_id = $1 AND id = $2
		 RETURNING click_count
		 `

	var clicks int64
	if err := r.db.QueryRowContext(ctx, query, ownerID, id).Scan(&clicks); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return clicks, nil
}

func checkAffected(res sql.Result, err error) error {
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
