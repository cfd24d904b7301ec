package config

import (
	"errors"
	"strings"
	"time"
)

const (
	// DefaultPollInterval is the delay between two run status checks.
	DefaultPollInterval = 2 * time.Second
	// DefaultMaxPolls bounds how many status checks a single run may take.
	DefaultMaxPolls = 150
)

// Config holds all runtime configuration for the chat session.
type Config struct {
	ProfilePath  string
	PollInterval time.Duration
	MaxPolls     int
	Verbose      bool

	APIKey  string
	BaseURL string
	Model   string
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		PollInterval: DefaultPollInterval,
		MaxPolls:     DefaultMaxPolls,
	}
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.ProfilePath = strings.TrimSpace(cfg.ProfilePath)
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Model = strings.TrimSpace(cfg.Model)

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.MaxPolls <= 0 {
		cfg.MaxPolls = DefaultMaxPolls
	}
	return cfg
}

// Validate reports configuration that cannot reach the remote service.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return errors.New("OPENAI_API_KEY is not set")
	}
	return nil
}
