// Package config loads the server configuration from environment variables.
//
// ENV-ONLY CONFIG:
// Every setting has a default suitable for local development, so the server
// starts with no environment at all. Struct tags drive the parsing:
//
//	env        → the variable name
//	envDefault → the value used when the variable is unset
//	envPrefix  → prepended to every name in a nested struct
//
// caarlos0/env converts strings to the field type, including time.Duration
// ("15m", "30s"), and reports every malformed value it finds.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// MinJWTSecretLength mirrors the check in auth.NewTokenService so a bad secret
// is reported at startup with the variable name attached.
const MinJWTSecretLength = 16

var (
	ErrInvalidPort      = errors.New("config: PORT must be between 1 and 65535")
	ErrInvalidDBPath    = errors.New("config: DB_PATH must not be empty")
	ErrInvalidLogLevel  = errors.New("config: LOG_LEVEL must be one of debug, info, warn, error")
	ErrShortJWTSecret   = fmt.Errorf("config: JWT_SECRET must be at least %d characters", MinJWTSecretLength)
	ErrGitHubNeedsJWT   = errors.New("config: GitHub sign-in requires JWT_SECRET")
	ErrInvalidDurations = errors.New("config: TOKEN_TTL and SHUTDOWN_TIMEOUT must be positive")
)

// Config holds everything cmd/server needs to build the server.
type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	DBPath   string `env:"DB_PATH" envDefault:"data/snacks.db"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// JWTSecret signs access tokens. When empty, token issuance and the
	// authenticated routes are disabled; the snack routes and account
	// registration keep working.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"15m"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	GitHub GitHub `envPrefix:"GITHUB_"`
}

// GitHub configures the optional GitHub sign-in flow.
type GitHub struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	// CallbackURL defaults to http://localhost:<PORT>/auth/github/callback.
	CallbackURL string `env:"CALLBACK_URL"`
}

// Enabled reports whether both OAuth App credentials are present.
func (g GitHub) Enabled() bool {
	return g.ClientID != "" && g.ClientSecret != ""
}

// AuthEnabled reports whether access tokens can be issued.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// Load reads the process environment.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the given variables instead of the process environment.
// Tests use it to avoid mutating global state.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("config: parsing environment: %w", err)
	}

	if cfg.GitHub.Enabled() && cfg.GitHub.CallbackURL == "" {
		cfg.GitHub.CallbackURL = fmt.Sprintf("http://localhost:%d/auth/github/callback", cfg.Port)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the invariants the server relies on at startup.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return ErrInvalidPort
	}
	if c.DBPath == "" {
		return ErrInvalidDBPath
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.TokenTTL <= 0 || c.ShutdownTimeout <= 0 {
		return ErrInvalidDurations
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < MinJWTSecretLength {
		return ErrShortJWTSecret
	}
	if c.GitHub.Enabled() && !c.AuthEnabled() {
		return ErrGitHubNeedsJWT
	}
	return nil
}

// SlogLevel converts LogLevel into a slog.Level. slog accepts the names
// case-insensitively, plus offsets such as "warn+2".
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w (got %q)", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}
