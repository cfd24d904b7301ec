package conversation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	loggerpkg "github.com/minhyannv/assistant-chat-go/pkg/logger"
)

// Prompts and messages written during Loop.
const (
	QuestionPrompt = "\nEnter your question: "
	ContinuePrompt = "Do you want to keep asking? (yes/no) "
	ClosingMessage = "OK, no more questions."
)

// Prompter reads one line of operator input after showing prompt.
// It returns io.EOF once input is exhausted and ctx.Err() when ctx ends
// while waiting.
type Prompter interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// Loop repeats question, submit and continuation prompt until the operator
// answers anything but "yes". Replies are written to out.
func (o *Orchestrator) Loop(ctx context.Context, p Prompter, out io.Writer) error {
	if p == nil {
		return errors.New("prompter is required")
	}
	if out == nil {
		out = io.Discard
	}

	for turn := 1; ; turn++ {
		question, err := p.Ask(ctx, QuestionPrompt)
		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(out, ClosingMessage)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read question: %w", err)
		}
		loggerpkg.Debug(o.verbose, o.logger, "question received", map[string]any{
			"turn":  turn,
			"bytes": len(question),
		})

		reply, ok, err := o.SubmitAndAwait(ctx, question)
		if err != nil {
			return err
		}
		if ok {
			_, _ = fmt.Fprintf(out, "%s\n\n", reply)
		}

		answer, err := p.Ask(ctx, ContinuePrompt)
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read continuation: %w", err)
		}
		if !wantsMore(answer) {
			_, _ = fmt.Fprintln(out, ClosingMessage)
			return nil
		}
	}
}

func wantsMore(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}
