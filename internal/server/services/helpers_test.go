package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/linkfo/internal/cryptox"
	"github.com/dmitrijs2005/linkfo/internal/server/auth"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/linkfo/internal/server/seed"
	"github.com/dmitrijs2005/linkfo/internal/validatex"
)

var cheapParams = cryptox.PasswordParams{Time: 1, Memory: 8 * 1024, Threads: 1, SaltLen: 16, KeyLen: 32}

type testEnv struct {
	m     *repomanager.MemoryRepositoryManager
	v     *validatex.Validator
	codec *auth.Codec
}

// newTestEnv returns a fresh in-memory store holding the demo account.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	m := repomanager.NewMemoryRepositoryManager()
	if _, err := seed.Demo(context.Background(), m, cheapParams); err != nil {
		t.Fatalf("seed: %v", err)
	}

	codec, err := auth.NewCodec("test-secret-test-secret-test-secret", time.Hour)
	if err != nil {
		t.Fatalf("codec: %v", err)
	}

	return &testEnv{m: m, v: validatex.New(), codec: codec}
}

func ptr[T any](v T) *T { return &v }
