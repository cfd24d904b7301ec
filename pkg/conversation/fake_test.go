package conversation

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minhyannv/assistant-chat-go/pkg/assistant"
)

// fakeService is a scripted assistant.Service. Each CreateRun consumes the
// next entry of statuses; GetRun returns them in order and repeats the last.
type fakeService struct {
	createAssistantErr error
	createThreadErr    error

	statuses [][]assistant.RunStatus
	replies  map[string][]assistant.Message

	runs      int
	getRuns   map[string]int
	messages  []assistant.Message
	created   []assistant.Descriptor
	submitted []string
}

func newFakeService() *fakeService {
	return &fakeService{
		replies: make(map[string][]assistant.Message),
		getRuns: make(map[string]int),
	}
}

func (f *fakeService) CreateAssistant(_ context.Context, d assistant.Descriptor) (assistant.Descriptor, error) {
	if f.createAssistantErr != nil {
		return assistant.Descriptor{}, f.createAssistantErr
	}
	f.created = append(f.created, d)
	d.ID = "asst_1"
	return d, nil
}

func (f *fakeService) CreateThread(context.Context) (assistant.Thread, error) {
	if f.createThreadErr != nil {
		return assistant.Thread{}, f.createThreadErr
	}
	return assistant.Thread{ID: "thread_1"}, nil
}

func (f *fakeService) CreateMessage(_ context.Context, threadID, text string) (assistant.Message, error) {
	f.submitted = append(f.submitted, text)
	m := assistant.Message{
		ID:      fmt.Sprintf("msg_u%d", len(f.submitted)),
		Role:    assistant.RoleUser,
		Text:    text,
		HasText: true,
	}
	f.messages = append(f.messages, m)
	return m, nil
}

func (f *fakeService) CreateRun(_ context.Context, threadID, assistantID string) (assistant.Run, error) {
	f.runs++
	id := fmt.Sprintf("run_%d", f.runs)
	return assistant.Run{ID: id, ThreadID: threadID, Status: assistant.RunStatusQueued}, nil
}

func (f *fakeService) GetRun(_ context.Context, threadID, runID string) (assistant.Run, error) {
	n := f.getRuns[runID]
	f.getRuns[runID] = n + 1

	status := assistant.RunStatusCompleted
	if idx := f.runs - 1; idx < len(f.statuses) && len(f.statuses[idx]) > 0 {
		seq := f.statuses[idx]
		if n < len(seq) {
			status = seq[n]
		} else {
			status = seq[len(seq)-1]
		}
	}
	if status == assistant.RunStatusCompleted {
		f.messages = append(f.messages, f.replies[runID]...)
		delete(f.replies, runID)
	}
	return assistant.Run{ID: runID, ThreadID: threadID, Status: status, LastError: "server_error"}, nil
}

func (f *fakeService) ListMessages(context.Context, string) ([]assistant.Message, error) {
	out := make([]assistant.Message, len(f.messages))
	copy(out, f.messages)
	return out, nil
}

func reply(runID, text string) assistant.Message {
	return assistant.Message{ID: "msg_" + runID, RunID: runID, Role: assistant.RoleAssistant, Text: text, HasText: true}
}

// scriptedPrompter answers prompts from a fixed list, then returns io.EOF.
type scriptedPrompter struct {
	answers []string
	prompts []string
}

func (p *scriptedPrompter) Ask(ctx context.Context, prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func noSleep(o *Orchestrator) {
	o.sleep = func(ctx context.Context, _ time.Duration) error { return ctx.Err() }
}
