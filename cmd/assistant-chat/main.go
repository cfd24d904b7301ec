// Package main provides an interactive CLI that sends questions to a remote
// assistant and prints its replies.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/minhyannv/assistant-chat-go/pkg/assistant"
	configpkg "github.com/minhyannv/assistant-chat-go/pkg/config"
	"github.com/minhyannv/assistant-chat-go/pkg/console"
	"github.com/minhyannv/assistant-chat-go/pkg/conversation"
	loggerpkg "github.com/minhyannv/assistant-chat-go/pkg/logger"
	"github.com/minhyannv/assistant-chat-go/pkg/profile"
)

// Banner is printed once the assistant and thread exist.
const Banner = "\nAssistant ready, ask away."

// exitInterrupted is the conventional status for a SIGINT-terminated process.
const exitInterrupted = 130

// newServiceFunc builds the remote service for a parsed config.
type newServiceFunc func(cfg configpkg.Config) assistant.Service

// main is the program entry point.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		// Restore default signal handling so a second Ctrl-C kills the process.
		<-ctx.Done()
		stop()
	}()

	code := run(ctx, os.Args[1:], os.Getenv, os.Stdin, os.Stdout, os.Stderr, func(cfg configpkg.Config) assistant.Service {
		return assistant.NewOpenAIService(cfg.APIKey, cfg.BaseURL)
	})
	stop()
	os.Exit(code)
}

// run parses configuration, runs one session and maps the outcome to an exit
// status. Errors are logged and printed to errOut.
func run(
	ctx context.Context,
	args []string,
	getenv func(string) string,
	in io.Reader,
	out, errOut io.Writer,
	newService newServiceFunc,
) int {
	cfg, err := parseCLIConfig(args, getenv, errOut)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}

	appLogger := loggerpkg.NewWriterLogger(errOut, cfg.Verbose)
	err = runSession(ctx, cfg, newService(cfg), in, out, appLogger)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled) && ctx.Err() != nil:
		_, _ = fmt.Fprintln(out)
		loggerpkg.Info(appLogger, "interrupted", nil)
		return exitInterrupted
	default:
		loggerpkg.Error(appLogger, "session failed", err)
		_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
}

// runSession creates the assistant and thread, then runs the question loop
// until the operator stops. The console is released on every return path.
func runSession(
	ctx context.Context,
	cfg configpkg.Config,
	svc assistant.Service,
	in io.Reader,
	out io.Writer,
	logger loggerpkg.Logger,
) error {
	p, err := profile.Load(cfg.ProfilePath)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	p = p.WithModel(cfg.Model)

	con, err := console.Open(in, out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := con.Close(); cerr != nil {
			loggerpkg.Warn(logger, "close console", cerr)
		}
	}()

	orch := conversation.New(svc,
		conversation.WithLogger(logger),
		conversation.WithVerbose(cfg.Verbose),
		conversation.WithPolling(cfg.PollInterval, cfg.MaxPolls),
	)
	if err := orch.Initialize(ctx, p); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	loggerpkg.Info(logger, "assistant ready", map[string]any{
		"assistant_id": orch.Assistant().ID,
		"thread_id":    orch.Thread().ID,
		"model":        p.Model,
	})
	_, _ = fmt.Fprintln(out, Banner)

	return orch.Loop(ctx, con, out)
}
