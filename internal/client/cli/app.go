package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/linkfo/internal/client/client"
	"github.com/dmitrijs2005/linkfo/internal/client/config"
	"github.com/dmitrijs2005/linkfo/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/linkfo/internal/client/services"
	"github.com/dmitrijs2005/linkfo/internal/filex"
	smodels "github.com/dmitrijs2005/linkfo/internal/server/models"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config      *config.Config
	repos       *client.Repositories
	authService services.AuthService
	api         client.Client
	user        *smodels.UserView
	modeMu      sync.RWMutex
	Mode        Mode
	reader      *bufio.Reader
	out         io.Writer
}

// NewApp opens the local store at c.TokenStorePath and builds the API
// client and services on top of it.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	dsn := c.TokenStorePath
	if dsn != ":memory:" {
		abs, err := filex.EnsureParentDir(dsn)
		if err != nil {
			return nil, err
		}
		dsn = abs
	}

	repos, err := client.InitDatabase(ctx, dsn)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	sessions := metadata.NewSessionStore(repos.Metadata)
	api := client.NewHTTPClient(c.ServerURL, c.RequestTimeout, sessions)

	return &App{
		config:      c,
		repos:       repos,
		authService: services.NewAuthService(api, sessions),
		api:         api,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

// Run restores the saved session, starts the reachability watcher and
// blocks in the REPL until the user quits or ctx ends.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.repos != nil {
			_ = a.repos.Close()
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// dropSession forgets the signed-in user after the server rejected the
// token. The client has already removed the token from the store.
func (a *App) dropSession() {
	a.user = nil
}

func (a *App) probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if _, err := a.api.Health(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher probes the health endpoint every interval and
// flips Mode accordingly until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.probe(ctx)
		case <-ctx.Done():
			return
		}
	}
}
