package dbx

import (
	"context"
	"fmt"
)

// LockKey takes a Postgres transaction-level advisory lock on (class, key).
// It is held until the surrounding transaction commits or rolls back, so
// db must be a *sql.Tx for the lock to cover more than one statement.
func LockKey(ctx context.Context, db DBTX, class, key string) error {
	if _, err := db.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1), hashtext($2))`, class, key); err != nil {
		return fmt.Errorf("advisory lock %s/%s: %w", class, key, err)
	}
	return nil
}
