package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/linkfo/internal/dbx"
	"github.com/dmitrijs2005/linkfo/internal/server/migrations"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/links"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/messages"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/personas"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/sources"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const BackendPostgres = "postgres"

// pgRepositories binds the PostgreSQL repositories to a DBTX.
type pgRepositories struct {
	db dbx.DBTX
}

func (r pgRepositories) Users() users.Repository       { return users.NewPostgresRepository(r.db) }
func (r pgRepositories) Links() links.Repository       { return links.NewPostgresRepository(r.db) }
func (r pgRepositories) Personas() personas.Repository { return personas.NewPostgresRepository(r.db) }
func (r pgRepositories) Sources() sources.Repository   { return sources.NewPostgresRepository(r.db) }
func (r pgRepositories) Messages() messages.Repository { return messages.NewPostgresRepository(r.db) }

// PostgresRepositoryManager vends PostgreSQL-backed repositories and runs
// schema migrations.
type PostgresRepositoryManager struct {
	pgRepositories
	db *sql.DB
}

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// NewPostgresRepositoryManager opens a pgx connection pool for dsn.
func NewPostgresRepositoryManager(dsn string) (*PostgresRepositoryManager, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return NewPostgresRepositoryManagerFromDB(db), nil
}

// NewPostgresRepositoryManagerFromDB wraps an already opened *sql.DB.
func NewPostgresRepositoryManagerFromDB(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{pgRepositories: pgRepositories{db: db}, db: db}
}

func (m *PostgresRepositoryManager) WithTx(ctx context.Context, fn TxFunc) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, pgRepositories{db: tx})
	})
}

// RunMigrations applies the embedded goose migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

func (m *PostgresRepositoryManager) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *PostgresRepositoryManager) Backend() string {
	return BackendPostgres
}
