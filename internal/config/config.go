// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the service settings. Everything except the annotator
// has a working default; serving requires either a sidecar URL or an
// explicit opt-in to the built-in annotator.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `env:"VOCATINDER_ADDR" envDefault:":8000"`

	// AnnotatorURL is the base URL of the token annotation sidecar.
	AnnotatorURL string `env:"VOCATINDER_ANNOTATOR_URL"`

	// BuiltinAnnotator opts in to the rule-based in-process annotator
	// instead of the sidecar. Its tagging is far cruder than the
	// sidecar's, so running without a sidecar must be a deliberate
	// choice, never a silent default.
	BuiltinAnnotator bool `env:"VOCATINDER_BUILTIN_ANNOTATOR" envDefault:"false"`

	// ClientOrigin is the allowed CORS origin for the browser frontend.
	ClientOrigin string `env:"VOCATINDER_CLIENT_ORIGIN" envDefault:"*"`

	// Rounds is the number of challenges per session.
	Rounds int `env:"VOCATINDER_ROUNDS" envDefault:"10"`

	// HeadlineTTL is the freshness window of the headline cache.
	HeadlineTTL time.Duration `env:"VOCATINDER_HEADLINE_TTL" envDefault:"5m"`

	// Feeds overrides the stock RSS feed list.
	Feeds []string `env:"VOCATINDER_FEEDS" envSeparator:","`

	// DB is the SQLite database path. Empty resolves the XDG default.
	DB string `env:"VOCATINDER_DB"`

	// LogLevel sets the zerolog level (trace, debug, info, warn, error).
	LogLevel string `env:"VOCATINDER_LOG_LEVEL" envDefault:"info"`
}

// Load reads .env (when present) and parses the environment.
func Load() (Config, error) {
	// Missing .env is fine; explicit env vars win either way.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Rounds <= 0 {
		return Config{}, fmt.Errorf("rounds must be positive, got %d", cfg.Rounds)
	}
	if cfg.AnnotatorURL == "" && !cfg.BuiltinAnnotator {
		return Config{}, fmt.Errorf("an annotator is required: set VOCATINDER_ANNOTATOR_URL, or VOCATINDER_BUILTIN_ANNOTATOR=true to use the built-in one")
	}
	return cfg, nil
}
