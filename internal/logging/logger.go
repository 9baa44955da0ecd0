// Package logging defines the structured-logging interface used across
// Linkfo, with slog and zap backends.
package logging

import (
	"context"
	"os"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "link created", "owner", ownerID, "link", linkID)
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// New builds a Logger for the named backend ("slog" or "zap").
// Unknown names fall back to slog.
func New(backend string, production bool) (Logger, error) {
	switch backend {
	case "zap":
		return NewZapLogger(production)
	default:
		return NewDefaultSlogLogger(os.Stdout, production), nil
	}
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Info(context.Context, string, ...any)  {}
func (NopLogger) Warn(context.Context, string, ...any)  {}
func (NopLogger) Error(context.Context, string, ...any) {}
func (n NopLogger) With(...any) Logger                  { return n }
