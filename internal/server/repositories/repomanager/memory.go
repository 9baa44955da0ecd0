package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/linkfo/internal/dbx"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/links"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/messages"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/personas"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/sources"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/users"
)

const BackendMemory = "in-memory"

type memoryTables struct {
	users    *users.MemoryTable
	links    *links.MemoryTable
	personas *personas.MemoryTable
	sources  *sources.MemoryTable
	messages *messages.MemoryTable
}

// memRepositories binds the in-memory repositories to a lock. Outside a
// transaction that is the store's RWMutex, inside one a no-op.
type memRepositories struct {
	t  *memoryTables
	mu dbx.RWLocker
}

func (r memRepositories) Users() users.Repository {
	return users.NewMemoryRepository(r.t.users, r.mu)
}

func (r memRepositories) Links() links.Repository {
	return links.NewMemoryRepository(r.t.links, r.mu)
}

func (r memRepositories) Personas() personas.Repository {
	return personas.NewMemoryRepository(r.t.personas, r.mu)
}

func (r memRepositories) Sources() sources.Repository {
	return sources.NewMemoryRepository(r.t.sources, r.mu)
}

func (r memRepositories) Messages() messages.Repository {
	return messages.NewMemoryRepository(r.t.messages, r.mu)
}

// MemoryRepositoryManager keeps every table in process memory. One RWMutex
// guards all of them: single calls take it briefly, WithTx holds the write
// lock for the whole function. Nothing is rolled back when fn fails, so
// callers validate before they write.
type MemoryRepositoryManager struct {
	memRepositories
	lock *sync.RWMutex
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	mu := &sync.RWMutex{}
	t := &memoryTables{
		users:    users.NewMemoryTable(),
		links:    links.NewMemoryTable(),
		personas: personas.NewMemoryTable(),
		sources:  sources.NewMemoryTable(),
		messages: messages.NewMemoryTable(),
	}
	return &MemoryRepositoryManager{memRepositories: memRepositories{t: t, mu: mu}, lock: mu}
}

func (m *MemoryRepositoryManager) WithTx(ctx context.Context, fn TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	return fn(ctx, memRepositories{t: m.t, mu: dbx.NopLocker{}})
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }
func (m *MemoryRepositoryManager) Ping(ctx context.Context) error          { return nil }
func (m *MemoryRepositoryManager) Close() error                            { return nil }
func (m *MemoryRepositoryManager) Backend() string                         { return BackendMemory }
