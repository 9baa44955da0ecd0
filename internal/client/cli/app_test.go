package cli

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/linkfo/internal/client/config"
	smodels "github.com/dmitrijs2005/linkfo/internal/server/models"
)

func TestIsLoggedIn(t *testing.T) {
	app := &App{}
	if app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == false without a user")
	}
	app.user = &smodels.UserView{ID: "1"}
	if !app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == true with a user")
	}
	app.dropSession()
	if app.isLoggedIn() {
		t.Fatalf("dropSession must forget the user")
	}
}

func TestGetStatus(t *testing.T) {
	app := &App{}
	if s := app.getStatus(); s != "" {
		t.Fatalf("unexpected status %q", s)
	}
	app.Mode = ModeOnline
	if s := app.getStatus(); s != "(online)" {
		t.Fatalf("unexpected status %q", s)
	}
	app.user = &smodels.UserView{Name: "Alex"}
	if s := app.getStatus(); s != "(Alex online)" {
		t.Fatalf("unexpected status %q", s)
	}
}

func TestSetMode_ChangesAndLogsOnce(t *testing.T) {
	app := &App{}
	var buf bytes.Buffer

	old := log.Default().Writer()
	defer log.SetOutput(old)
	log.SetOutput(&buf)

	app.setMode(ModeOnline)
	if app.Mode != ModeOnline {
		t.Fatalf("expected mode to be %q, got %q", ModeOnline, app.Mode)
	}
	if got := buf.String(); got == "" {
		t.Fatalf("expected log output on mode change, got empty")
	}

	buf.Reset()

	app.setMode(ModeOnline)
	if got := buf.String(); got != "" {
		t.Fatalf("expected no log output when mode doesn't change, got: %q", got)
	}

	app.setMode(ModeOffline)
	if app.Mode != ModeOffline {
		t.Fatalf("expected mode to be %q, got %q", ModeOffline, app.Mode)
	}
}

func TestProbe(t *testing.T) {
	old := log.Default().Writer()
	defer log.SetOutput(old)
	log.SetOutput(&bytes.Buffer{})

	api := &fakeAPI{}
	app, _ := newTestApp(&fakeAuth{}, api)

	app.probe(context.Background())
	if app.Mode != ModeOnline {
		t.Fatalf("expected online, got %q", app.Mode)
	}

	api.health = errors.New("down")
	app.probe(context.Background())
	if app.Mode != ModeOffline {
		t.Fatalf("expected offline, got %q", app.Mode)
	}
}

func TestStartOnlineStatusWatcher_StopsOnCancel(t *testing.T) {
	old := log.Default().Writer()
	defer log.SetOutput(old)
	log.SetOutput(&bytes.Buffer{})

	app, _ := newTestApp(&fakeAuth{}, &fakeAPI{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		app.StartOnlineStatusWatcher(ctx, 5*time.Millisecond)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestRoot_RestoresSession(t *testing.T) {
	old := log.Default().Writer()
	defer log.SetOutput(old)
	log.SetOutput(&bytes.Buffer{})
	silencePrint(t)

	f := &fakeAuth{user: &smodels.UserView{ID: "1", Name: "Alex"}}
	app, _ := newTestApp(f, &fakeAPI{})

	app.Root(context.Background())

	if !app.isLoggedIn() || app.user.Name != "Alex" {
		t.Fatalf("session not restored: %+v", app.user)
	}
	if app.Mode != ModeOnline {
		t.Fatalf("expected online mode, got %q", app.Mode)
	}
}

func TestNewApp_CreatesStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "linkfo.db")
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.TokenStorePath = path

	app, err := NewApp(cfg)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	defer app.repos.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("store not created: %v", err)
	}
	if app.isLoggedIn() {
		t.Fatal("fresh app must be logged out")
	}
}
