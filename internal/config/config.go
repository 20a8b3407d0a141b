package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the process-level settings. The dice themselves come from
// positional arguments; the environment only tunes optional behavior.
type Config struct {
	// RedisAddr, when set, stores the reveal audit trail in Redis so past
	// sessions can be re-verified after the process exits. Empty keeps the
	// trail in memory.
	RedisAddr string `env:"FAIRDICE_REDIS_ADDR"`

	// RedisPassword authenticates the optional Redis connection
	RedisPassword string `env:"FAIRDICE_REDIS_PASSWORD"`

	// MaxTieRerolls bounds tie replays before the session is declared a tie
	MaxTieRerolls int `env:"FAIRDICE_MAX_TIE_REROLLS" envDefault:"100"`
}

// Load parses the configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return cfg, nil
}
