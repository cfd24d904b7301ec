package main

import (
	"flag"
	"io"
	"strings"

	"github.com/joho/godotenv"

	configpkg "github.com/minhyannv/assistant-chat-go/pkg/config"
)

// parseCLIConfig loads .env, then flags, then environment into runtime config.
func parseCLIConfig(args []string, getenv func(string) string, stderr io.Writer) (configpkg.Config, error) {
	_ = godotenv.Load()

	defaults := configpkg.DefaultConfig()
	fs := flag.NewFlagSet("assistant-chat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	profilePath := fs.String("profile", defaults.ProfilePath, "Path to an ASSISTANT.md profile (empty uses the built-in assistant)")
	pollInterval := fs.Duration("poll_interval", defaults.PollInterval, "Delay between run status checks")
	maxPolls := fs.Int("max_polls", defaults.MaxPolls, "Max status checks per question before giving up")
	verbose := fs.Bool("verbose", defaults.Verbose, "Verbose run and polling logs")
	if err := fs.Parse(args); err != nil {
		return configpkg.Config{}, err
	}

	cfg := defaults
	cfg.ProfilePath = *profilePath
	cfg.PollInterval = *pollInterval
	cfg.MaxPolls = *maxPolls
	cfg.Verbose = *verbose
	cfg.APIKey = firstNonEmpty(getenv("OPENAI_API_KEY"), getenv("OPEN_AI_KEY"))
	cfg.BaseURL = getenv("OPENAI_BASE_URL")
	cfg.Model = getenv("OPENAI_MODEL")

	cfg = configpkg.Normalize(cfg)
	if err := configpkg.Validate(cfg); err != nil {
		return configpkg.Config{}, err
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
