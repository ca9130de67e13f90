package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settingsVars = []string{
	"CURSO_SERVER_URL", "CURSO_SESSION_DIR", "CURSO_NON_INTERACTIVE",
	"CURSO_DEBUG", "CURSO_TOKEN", "CURSO_TIMEOUT",
}

// isolate runs the test in an empty directory with none of the settings set.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, k := range settingsVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	isolate(t)

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", s.ServerURL)
	assert.Equal(t, 10*time.Second, s.Timeout)
	assert.Empty(t, s.SessionDir)
	assert.Empty(t, s.Token)
	assert.False(t, s.NonInteractive)
	assert.False(t, s.Debug)
}

func TestLoadSettingsFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("CURSO_SERVER_URL", "https://cursos.example.com/api")
	t.Setenv("CURSO_NON_INTERACTIVE", "true")
	t.Setenv("CURSO_DEBUG", "1")
	t.Setenv("CURSO_TOKEN", "ci")
	t.Setenv("CURSO_TIMEOUT", "3s")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "https://cursos.example.com/api", s.ServerURL)
	assert.True(t, s.NonInteractive)
	assert.True(t, s.Debug)
	assert.Equal(t, "ci", s.Token)
	assert.Equal(t, 3*time.Second, s.Timeout)
}

func TestLoadSettingsRejectsBadTimeout(t *testing.T) {
	isolate(t)

	t.Setenv("CURSO_TIMEOUT", "0s")
	_, err := LoadSettings()
	assert.ErrorContains(t, err, "CURSO_TIMEOUT")

	t.Setenv("CURSO_TIMEOUT", "soon")
	_, err = LoadSettings()
	assert.Error(t, err)
}

func TestLoadSettingsReadsDotEnv(t *testing.T) {
	isolate(t)
	t.Cleanup(func() { os.Unsetenv("CURSO_SESSION_DIR") })

	dir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CURSO_SESSION_DIR=/tmp/curso\n"), 0600))

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/curso", s.SessionDir)
}

func TestConfigContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)
	assert.Panics(t, func() { MustFromContext(context.Background()) })

	cfg := &GlobalConfig{Settings: Settings{Timeout: time.Second}}
	ctx := InjectConfig(context.Background(), cfg)
	assert.Same(t, cfg, MustFromContext(ctx))

	reqCtx, cancel := cfg.WithTimeout(ctx)
	defer cancel()
	_, hasDeadline := reqCtx.Deadline()
	assert.True(t, hasDeadline)
}
