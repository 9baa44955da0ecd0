// Package repomanager vends the repositories of one storage backend and runs
// multi-step mutations atomically against it.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/linkfo/internal/server/repositories/links"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/messages"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/personas"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/sources"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/users"
)

// Repositories is the set of repositories bound to one handle: the shared
// store, or a running transaction.
type Repositories interface {
	Users() users.Repository
	Links() links.Repository
	Personas() personas.Repository
	Sources() sources.Repository
	Messages() messages.Repository
}

// TxFunc runs against repositories bound to a transaction.
type TxFunc func(ctx context.Context, r Repositories) error

type RepositoryManager interface {
	Repositories
	// WithTx runs fn so that no other mutation interleaves with it.
	WithTx(ctx context.Context, fn TxFunc) error
	RunMigrations(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
	// Backend names the storage for health reports.
	Backend() string
}
