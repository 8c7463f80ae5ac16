// Package config provides runtime configuration for the chess-rules CLI,
// loaded from the environment and overridable by flags.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds the runtime settings.
type Config struct {
	// StartFEN is the position loaded at startup; empty means the
	// standard opening position.
	StartFEN string `envconfig:"CHESS_START_FEN"`

	// Workers is the goroutine count for batch position analysis.
	Workers int `envconfig:"CHESS_WORKERS" default:"4"`

	// Verbosity: 0=results only, 1=board and prompts, 2=running commentary.
	Verbosity int `envconfig:"CHESS_VERBOSITY" default:"1"`
}

// Load reads the configuration from the environment, applying defaults
// for unset variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}
