package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/internal/client"
)

type contextKey string

const configKey contextKey = "cursoctl-config"

// Settings is the environment-derived configuration. Flags set on the root
// command override these values.
type Settings struct {
	ServerURL      string        `env:"CURSO_SERVER_URL" envDefault:"http://localhost:8080"`
	SessionDir     string        `env:"CURSO_SESSION_DIR"`
	NonInteractive bool          `env:"CURSO_NON_INTERACTIVE"`
	Debug          bool          `env:"CURSO_DEBUG"`
	Token          string        `env:"CURSO_TOKEN"`
	Timeout        time.Duration `env:"CURSO_TIMEOUT" envDefault:"10s"`
}

// LoadSettings reads a .env file when present, then the process environment.
func LoadSettings() (Settings, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Settings{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var s Settings
	if err := env.Parse(&s); err != nil {
		return s, fmt.Errorf("parse config: %w", err)
	}
	if s.Timeout <= 0 {
		return s, fmt.Errorf("CURSO_TIMEOUT must be positive, got %s", s.Timeout)
	}
	return s, nil
}

// GlobalConfig holds shared configuration for all cursoctl commands.
// The root command's PersistentPreRunE injects it into the command context.
type GlobalConfig struct {
	Settings
	ClientProvider *client.Provider
}

// WithTimeout derives the per-command request context.
func (c *GlobalConfig) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.Timeout)
}

// InjectConfig adds config to the cobra command context.
func InjectConfig(ctx context.Context, cfg *GlobalConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from the cobra command context.
// Returns (nil, false) if config is not present.
func FromContext(ctx context.Context) (*GlobalConfig, bool) {
	cfg, ok := ctx.Value(configKey).(*GlobalConfig)
	return cfg, ok
}

// MustFromContext retrieves config from context or panics.
// Only command RunE functions, which run after the root pre-run hook, may use it.
func MustFromContext(ctx context.Context) *GlobalConfig {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("cursoctl: config not found in context - this is a bug in cursoctl")
	}
	return cfg
}
