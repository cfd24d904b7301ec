package assistant

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var _ Service = (*OpenAIService)(nil)

// OpenAIService implements Service with the openai-go beta client.
type OpenAIService struct {
	client openai.Client
	tools  *Registry
}

// NewOpenAIService builds a service for the given credential. An empty
// baseURL keeps the SDK default; extra options are appended last.
func NewOpenAIService(apiKey, baseURL string, extra ...option.RequestOption) *OpenAIService {
	opts := []option.RequestOption{}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	opts = append(opts, extra...)
	return &OpenAIService{
		client: openai.NewClient(opts...),
		tools:  NewRegistry(),
	}
}

func (s *OpenAIService) CreateAssistant(ctx context.Context, d Descriptor) (Descriptor, error) {
	const op = "create assistant"
	tools, err := s.tools.Definitions(d.Tools)
	if err != nil {
		return Descriptor{}, &ServiceError{Op: op, Err: err}
	}

	a, err := s.client.Beta.Assistants.New(ctx, openai.BetaAssistantNewParams{
		Model:        openai.ChatModel(d.Model),
		Name:         openai.String(d.Name),
		Instructions: openai.String(d.Instructions),
		Tools:        tools,
	})
	if err != nil {
		return Descriptor{}, wrap(op, err)
	}
	if a.ID == "" {
		return Descriptor{}, malformed(op, "assistant id is empty")
	}

	out := d
	out.ID = a.ID
	return out, nil
}

func (s *OpenAIService) CreateThread(ctx context.Context) (Thread, error) {
	const op = "create thread"
	t, err := s.client.Beta.Threads.New(ctx, openai.BetaThreadNewParams{})
	if err != nil {
		return Thread{}, wrap(op, err)
	}
	if t.ID == "" {
		return Thread{}, malformed(op, "thread id is empty")
	}
	return Thread{ID: t.ID}, nil
}

func (s *OpenAIService) CreateMessage(ctx context.Context, threadID, text string) (Message, error) {
	const op = "create message"
	m, err := s.client.Beta.Threads.Messages.New(ctx, threadID, openai.BetaThreadMessageNewParams{
		Role: openai.BetaThreadMessageNewParamsRoleUser,
		Content: openai.BetaThreadMessageNewParamsContentUnion{
			OfString: openai.String(text),
		},
	})
	if err != nil {
		return Message{}, wrap(op, err)
	}
	return toMessage(*m), nil
}

func (s *OpenAIService) CreateRun(ctx context.Context, threadID, assistantID string) (Run, error) {
	const op = "create run"
	r, err := s.client.Beta.Threads.Runs.New(ctx, threadID, openai.BetaThreadRunNewParams{
		AssistantID: assistantID,
	})
	if err != nil {
		return Run{}, wrap(op, err)
	}
	if r.ID == "" {
		return Run{}, malformed(op, "run id is empty")
	}
	return toRun(*r), nil
}

func (s *OpenAIService) GetRun(ctx context.Context, threadID, runID string) (Run, error) {
	const op = "get run"
	r, err := s.client.Beta.Threads.Runs.Get(ctx, threadID, runID)
	if err != nil {
		return Run{}, wrap(op, err)
	}
	if r.Status == "" {
		return Run{}, malformed(op, "run %s has no status", runID)
	}
	return toRun(*r), nil
}

func (s *OpenAIService) ListMessages(ctx context.Context, threadID string) ([]Message, error) {
	const op = "list messages"
	iter := s.client.Beta.Threads.Messages.ListAutoPaging(ctx, threadID, openai.BetaThreadMessageListParams{
		Order: openai.BetaThreadMessageListParamsOrderAsc,
	})

	var out []Message
	for iter.Next() {
		out = append(out, toMessage(iter.Current()))
	}
	if err := iter.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return out, nil
}

func toRun(r openai.Run) Run {
	return Run{
		ID:        r.ID,
		ThreadID:  r.ThreadID,
		Status:    RunStatus(r.Status),
		LastError: r.LastError.Message,
	}
}

func toMessage(m openai.Message) Message {
	out := Message{
		ID:    m.ID,
		RunID: m.RunID,
		Role:  Role(m.Role),
	}
	if len(m.Content) > 0 && m.Content[0].Type == "text" {
		out.Text = m.Content[0].Text.Value
		out.HasText = true
	}
	return out
}

func wrap(op string, err error) error {
	se := &ServiceError{Op: op, Err: err}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		se.StatusCode = apiErr.StatusCode
	}
	return se
}
