package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	files, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	b, err := fs.ReadFile(Migrations, "00001_init.sql")
	require.NoError(t, err)
	s := string(b)
	assert.True(t, strings.HasPrefix(s, "-- +goose Up"))
	assert.Contains(t, s, "-- +goose Down")
	for _, table := range []string{"users", "links", "personas", "content_sources", "chat_messages"} {
		assert.Contains(t, s, "CREATE TABLE "+table+" (")
	}
}
