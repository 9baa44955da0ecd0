package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_LevelsAndFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := NewZapLoggerFrom(zap.New(core))
	ctx := context.Background()

	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.With("req_id", "123").Error(ctx, "err", "d", 4)

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, "inf", entries[0].Message)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.EqualValues(t, 2, entries[0].ContextMap()["b"])

	assert.Equal(t, zap.WarnLevel, entries[1].Level)

	assert.Equal(t, zap.ErrorLevel, entries[2].Level)
	assert.Equal(t, "123", entries[2].ContextMap()["req_id"])
	assert.EqualValues(t, 4, entries[2].ContextMap()["d"])
}

func TestNew_SelectsBackend(t *testing.T) {
	l, err := New("zap", false)
	require.NoError(t, err)
	assert.IsType(t, &ZapLogger{}, l)

	l, err = New("slog", false)
	require.NoError(t, err)
	assert.IsType(t, &SlogLogger{}, l)

	l, err = New("", true)
	require.NoError(t, err)
	assert.IsType(t, &SlogLogger{}, l)
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.With("a", 1).Info(context.Background(), "nothing")
}
