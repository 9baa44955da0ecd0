package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) getStatus() string {
	s := ""
	if a.user != nil {
		s = a.user.Name + " "
	}
	a.modeMu.RLock()
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	a.modeMu.RUnlock()
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root greets the user, restores a saved session and runs the REPL.
func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to Linkfo CLI (type 'help' for commands)")

	a.probe(ctx)

	u, err := a.authService.Restore(ctx)
	switch {
	case err != nil:
		log.Printf("Could not restore session: %s", err.Error())
	case u != nil:
		a.user = u
		log.Printf("Signed in as %s", u.Name)
	}

	if a.config != nil && a.config.OnlineCheckInterval > 0 {
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
