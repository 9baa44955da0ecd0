package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/linkfo/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	dropSession()

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error

	Links(ctx context.Context) error
	AddLink(ctx context.Context) error
	EditLink(ctx context.Context, args []string) error
	MoveLink(ctx context.Context, args []string) error
	DeleteLink(ctx context.Context, args []string) error

	EditProfile(ctx context.Context) error
	Stats(ctx context.Context) error
	Avatar(ctx context.Context, args []string) error

	Persona(ctx context.Context) error
	UpdatePersona(ctx context.Context) error
	Sources(ctx context.Context) error
	AddSource(ctx context.Context) error

	Chat(ctx context.Context, args []string) error
	History(ctx context.Context) error

	View(ctx context.Context, args []string) error
	Click(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, view <userId>, click <userId> <linkId>, exit"
	helpLoggedIn  = "Available commands: me, profile, stats, avatar [type], (l)ist, add, edit <id>, move <id> <pos>, " +
		"delete <id>, persona, refresh, sources, addsource, chat [text], history, view <userId>, " +
		"click <userId> <linkId>, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the Linkfo CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a'; remaining tokens are passed as arguments.
// The loop exits on EOF or when the user types "exit" or "quit".
//
// Errors returned by handlers are printed. An unauthorized error while
// signed in means the token was rejected: the session is dropped and the
// prompt returns to the signed-out state.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("linkfo %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if requiresLogin(cmd) && !a.isLoggedIn() {
			printlnFn("Please log in first.")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			report(a, a.Register(ctx))
		case "login":
			report(a, a.Login(ctx))
		case "logout":
			report(a, a.Logout(ctx))
		case "me", "profile":
			if cmd == "profile" && len(args) > 0 && args[0] == "edit" {
				report(a, a.EditProfile(ctx))
			} else {
				report(a, a.Me(ctx))
			}

		case "l", "list":
			report(a, a.Links(ctx))
		case "add":
			report(a, a.AddLink(ctx))
		case "edit":
			report(a, a.EditLink(ctx, args))
		case "move":
			report(a, a.MoveLink(ctx, args))
		case "delete":
			report(a, a.DeleteLink(ctx, args))

		case "stats":
			report(a, a.Stats(ctx))
		case "avatar":
			report(a, a.Avatar(ctx, args))

		case "persona":
			report(a, a.Persona(ctx))
		case "refresh":
			report(a, a.UpdatePersona(ctx))
		case "sources":
			report(a, a.Sources(ctx))
		case "addsource":
			report(a, a.AddSource(ctx))

		case "chat":
			report(a, a.Chat(ctx, args))
		case "history":
			report(a, a.History(ctx))

		case "view":
			report(a, a.View(ctx, args))
		case "click":
			report(a, a.Click(ctx, args))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func requiresLogin(cmd string) bool {
	switch cmd {
	case "logout", "me", "profile", "l", "list", "add", "edit", "move", "delete",
		"stats", "avatar", "persona", "refresh", "sources", "addsource", "chat", "history":
		return true
	}
	return false
}

func report(a execIface, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, errUsage) {
		printlnFn(err.Error())
		return
	}
	if errors.Is(err, common.ErrorUnauthorized) && a.isLoggedIn() {
		a.dropSession()
		printlnFn("Your session has expired. Please log in again.")
		return
	}
	printlnFn("Error:", err.Error())
}
