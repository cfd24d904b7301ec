// Package conversation drives one assistant and one thread through
// question/answer cycles.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minhyannv/assistant-chat-go/pkg/assistant"
	configpkg "github.com/minhyannv/assistant-chat-go/pkg/config"
	loggerpkg "github.com/minhyannv/assistant-chat-go/pkg/logger"
	"github.com/minhyannv/assistant-chat-go/pkg/profile"
)

// Orchestrator holds the remote assistant and thread for one session.
type Orchestrator struct {
	svc          assistant.Service
	pollInterval time.Duration
	maxPolls     int

	assistant assistant.Descriptor
	thread    assistant.Thread

	logger  loggerpkg.Logger
	verbose bool
	sleep   func(ctx context.Context, d time.Duration) error
}

// New builds an Orchestrator. Initialize must succeed before SubmitAndAwait.
func New(svc assistant.Service, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		svc:          svc,
		pollInterval: configpkg.DefaultPollInterval,
		maxPolls:     configpkg.DefaultMaxPolls,
		logger:       loggerpkg.NopLogger{},
		sleep:        sleepContext,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// Initialize creates the assistant described by p and a fresh thread.
func (o *Orchestrator) Initialize(ctx context.Context, p profile.Profile) error {
	loggerpkg.Debug(o.verbose, o.logger, "creating assistant", map[string]any{
		"name":  p.Name,
		"model": p.Model,
		"tools": p.Tools,
	})
	desc, err := o.svc.CreateAssistant(ctx, assistant.Descriptor{
		Name:         p.Name,
		Instructions: p.Instructions,
		Tools:        p.Tools,
		Model:        p.Model,
	})
	if err != nil {
		return err
	}

	thread, err := o.svc.CreateThread(ctx)
	if err != nil {
		return err
	}

	o.assistant = desc
	o.thread = thread
	loggerpkg.Debug(o.verbose, o.logger, "session ready", map[string]any{
		"assistant_id": desc.ID,
		"thread_id":    thread.ID,
	})
	return nil
}

// Assistant returns the descriptor created by Initialize.
func (o *Orchestrator) Assistant() assistant.Descriptor { return o.assistant }

// Thread returns the thread created by Initialize.
func (o *Orchestrator) Thread() assistant.Thread { return o.thread }

// SubmitAndAwait appends text to the thread, runs the assistant and waits for
// the run to complete. ok is false when the run produced no assistant message.
func (o *Orchestrator) SubmitAndAwait(ctx context.Context, text string) (reply string, ok bool, err error) {
	if o.thread.ID == "" || o.assistant.ID == "" {
		return "", false, errors.New("conversation is not initialized")
	}

	if _, err := o.svc.CreateMessage(ctx, o.thread.ID, text); err != nil {
		return "", false, err
	}

	run, err := o.svc.CreateRun(ctx, o.thread.ID, o.assistant.ID)
	if err != nil {
		return "", false, err
	}
	loggerpkg.Debug(o.verbose, o.logger, "run created", map[string]any{"run_id": run.ID})

	if err := o.awaitRun(ctx, run.ID); err != nil {
		return "", false, err
	}

	messages, err := o.svc.ListMessages(ctx, o.thread.ID)
	if err != nil {
		return "", false, err
	}
	msg, found := lastReply(messages, run.ID)
	if !found {
		loggerpkg.Debug(o.verbose, o.logger, "run produced no reply", map[string]any{"run_id": run.ID})
		return "", false, nil
	}
	if !msg.HasText {
		return "", false, &assistant.ServiceError{
			Op:  "read reply",
			Err: fmt.Errorf("%w: message %s has no text content", assistant.ErrMalformedResponse, msg.ID),
		}
	}
	return msg.Text, true, nil
}

// awaitRun polls the run until it completes. The first check happens
// immediately; later checks wait pollInterval.
func (o *Orchestrator) awaitRun(ctx context.Context, runID string) error {
	for attempt := 1; attempt <= o.maxPolls; attempt++ {
		if attempt > 1 {
			if err := o.sleep(ctx, o.pollInterval); err != nil {
				return err
			}
		}

		run, err := o.svc.GetRun(ctx, o.thread.ID, runID)
		if err != nil {
			return err
		}
		loggerpkg.Debug(o.verbose, o.logger, "run status", map[string]any{
			"run_id":  runID,
			"status":  run.Status,
			"attempt": attempt,
		})

		if run.Status == assistant.RunStatusCompleted {
			return nil
		}
		if !run.Status.Pending() {
			return &assistant.RunFailedError{RunID: runID, Status: run.Status, Message: run.LastError}
		}
	}
	return fmt.Errorf("run %s after %d checks: %w", runID, o.maxPolls, assistant.ErrTimeout)
}

// lastReply picks the most recent assistant message produced by runID.
// messages must be ordered oldest first.
func lastReply(messages []assistant.Message, runID string) (assistant.Message, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		m := messages[i]
		if m.RunID == runID && m.Role == assistant.RoleAssistant {
			return m, true
		}
	}
	return assistant.Message{}, false
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
