package config

import (
	"testing"
	"time"
)

func TestNormalizeAppliesDefaults(t *testing.T) {
	cfg := Normalize(Config{
		ProfilePath:  "  ./ASSISTANT.md ",
		APIKey:       " sk-test ",
		PollInterval: -time.Second,
	})

	if cfg.ProfilePath != "./ASSISTANT.md" {
		t.Fatalf("expected trimmed profile path, got %q", cfg.ProfilePath)
	}
	if cfg.APIKey != "sk-test" {
		t.Fatalf("expected trimmed api key, got %q", cfg.APIKey)
	}
	if cfg.PollInterval != DefaultPollInterval {
		t.Fatalf("expected default poll interval, got %s", cfg.PollInterval)
	}
	if cfg.MaxPolls != DefaultMaxPolls {
		t.Fatalf("expected default max polls, got %d", cfg.MaxPolls)
	}
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	cfg := Normalize(Config{PollInterval: 10 * time.Millisecond, MaxPolls: 3})
	if cfg.PollInterval != 10*time.Millisecond || cfg.MaxPolls != 3 {
		t.Fatalf("unexpected values: %+v", cfg)
	}
}

func TestValidateRequiresAPIKey(t *testing.T) {
	if err := Validate(DefaultConfig()); err == nil {
		t.Fatal("expected error when api key is empty")
	}
	cfg := DefaultConfig()
	cfg.APIKey = "sk-test"
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
