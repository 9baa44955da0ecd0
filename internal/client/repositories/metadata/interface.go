// Package metadata stores small key/value records in the CLI's local
// SQLite database. The session token and the signed-in user live here
// between runs.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns the values stored under keys. Absent keys are simply
	// missing from the map.
	Get(ctx context.Context, keys ...string) (map[string]string, error)
	// Put upserts every entry, all or nothing.
	Put(ctx context.Context, entries map[string]string) error
	// Delete removes keys. Absent keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}
