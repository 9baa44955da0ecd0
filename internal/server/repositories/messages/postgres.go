package messages

import (
	"context"
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

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.ChatMessage, error) {
	query :=
		`SELECT id, owner_id, sender, text, created_at FROM chat_messages
		 WHERE owner_id = $1
		 ORDER BY seq
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := []models.ChatMessage{}
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.OwnerID, &m.Sender, &m.Text, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}

// Append derives the id from the transcript length. It must run inside a
// transaction: the per-owner lock that keeps those ids unique is released
// at commit.
func (r *PostgresRepository) Append(ctx context.Context, m *models.ChatMessage) (*models.ChatMessage, error) {
	if err := dbx.LockKey(ctx, r.db, "chat_messages", m.OwnerID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	query :=
		`INSERT INTO chat_messages (id, owner_id, sender, text, created_at)
		 VALUES ((SELECT (COUNT(*) + 1)::text FROM chat_messages WHERE owner_id = $1), $1, $2, $3, $4)
		 RETURNING id
		 `

	msg := *m
	if err := r.db.QueryRowContext(ctx, query, msg.OwnerID, msg.Sender, msg.Text, msg.Timestamp).Scan(&msg.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &msg, nil
}

func (r *PostgresRepository) CountBySender(ctx context.Context, ownerID, sender string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM chat_messages WHERE owner_id = $1 AND sender = $2`, ownerID, sender).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
