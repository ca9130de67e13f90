package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSlogLevels(t *testing.T) {
	ctx := context.Background()

	quiet := NewSlog(New(&bytes.Buffer{}, false))
	assert.False(t, quiet.Enabled(ctx, slog.LevelDebug))
	assert.True(t, quiet.Enabled(ctx, slog.LevelInfo))

	verbose := NewSlog(New(&bytes.Buffer{}, true))
	assert.True(t, verbose.Enabled(ctx, slog.LevelDebug))
}

func TestNewWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Warn("session invalidated", logger.Args("status", 401))

	assert.Contains(t, buf.String(), "session invalidated")
}
