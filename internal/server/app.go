// Package server wires configuration, storage, services and transports
// into the Linkfo server and runs it until a shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/linkfo/internal/cryptox"
	"github.com/dmitrijs2005/linkfo/internal/logging"
	"github.com/dmitrijs2005/linkfo/internal/server/auth"
	"github.com/dmitrijs2005/linkfo/internal/server/config"
	"github.com/dmitrijs2005/linkfo/internal/server/httpapi"
	"github.com/dmitrijs2005/linkfo/internal/server/metrics"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/linkfo/internal/server/seed"
	"github.com/dmitrijs2005/linkfo/internal/server/services"
	"github.com/dmitrijs2005/linkfo/internal/validatex"

	gs "github.com/dmitrijs2005/linkfo/internal/server/grpc"
)

const startupTimeout = 30 * time.Second

var newPostgresManager = func(dsn string) (repomanager.RepositoryManager, error) {
	return repomanager.NewPostgresRepositoryManager(dsn)
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	storage repomanager.RepositoryManager
	handler http.Handler
}

// NewApp validates c and prepares storage and handlers. It refuses to
// build an app without a signing secret.
func NewApp(c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogBackend, c.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}
	return newApp(c, logger, cryptox.DefaultPasswordParams)
}

func newApp(c *config.Config, logger logging.Logger, params cryptox.PasswordParams) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	storage, err := openStorage(ctx, c)
	if err != nil {
		return nil, err
	}

	if c.SeedDemoData {
		seeded, err := seed.Demo(ctx, storage, params)
		if err != nil {
			storage.Close()
			return nil, fmt.Errorf("seed error: %w", err)
		}
		if seeded {
			logger.Info(ctx, "Demo account created", "email", seed.DemoEmail)
		}
	}

	codec, err := auth.NewCodec(c.SecretKey, c.TokenValidityDuration)
	if err != nil {
		storage.Close()
		return nil, err
	}

	v := validatex.New()
	handler := httpapi.NewRouter(httpapi.Options{
		Services: httpapi.Services{
			Users:    services.NewUserService(storage, codec, v, params),
			Links:    services.NewLinkService(storage, v),
			Personas: services.NewPersonaService(storage, v),
			Chat:     services.NewChatService(storage, v),
			Profiles: services.NewProfileService(storage),
			Avatars:  services.NewAvatarService(storage, v, c),
		},
		Tokens:         codec,
		Storage:        storage,
		Metrics:        metrics.NewCollector(),
		Logger:         logger,
		Environment:    c.Environment,
		AllowedOrigins: c.CORSAllowedOrigins,
	})

	logger.Info(ctx, "App initialized",
		"storage", storage.Backend(),
		"environment", c.Environment,
		"avatarUploads", c.S3Bucket != "")

	return &App{config: c, logger: logger, storage: storage, handler: handler}, nil
}

// openStorage picks Postgres when a DSN is configured and the in-memory
// stores otherwise.
func openStorage(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, error) {
	if c.DatabaseDSN == "" {
		return repomanager.NewMemoryRepositoryManager(), nil
	}

	m, err := newPostgresManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := m.RunMigrations(ctx); err != nil {
		m.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}
	return m, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.handler, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.storage)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a signal arrives or a listener fails,
// then releases storage.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	if app.config.EndpointAddrGRPC != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startGRPCServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	if err := app.storage.Close(); err != nil {
		app.logger.Error(ctx, "storage close", "error", err)
	}
	if z, ok := app.logger.(*logging.ZapLogger); ok {
		_ = z.Sync()
	}
	app.logger.Info(ctx, "App stopped")
}
