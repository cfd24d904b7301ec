// Package assistant is a typed view of the remote Assistants API.
package assistant

import "context"

// RunStatus is the lifecycle state of a Run.
type RunStatus string

const (
	RunStatusQueued         RunStatus = "queued"
	RunStatusInProgress     RunStatus = "in_progress"
	RunStatusRequiresAction RunStatus = "requires_action"
	RunStatusCancelling     RunStatus = "cancelling"
	RunStatusCancelled      RunStatus = "cancelled"
	RunStatusFailed         RunStatus = "failed"
	RunStatusCompleted      RunStatus = "completed"
	RunStatusIncomplete     RunStatus = "incomplete"
	RunStatusExpired        RunStatus = "expired"
)

// Pending reports whether the run may still reach completed without
// intervention from the caller.
func (s RunStatus) Pending() bool {
	switch s {
	case RunStatusQueued, RunStatusInProgress, RunStatusCancelling:
		return true
	default:
		return false
	}
}

// Role is the author of a thread message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Descriptor is the configuration of a remote assistant. ID is assigned by
// the service on creation.
type Descriptor struct {
	ID           string
	Name         string
	Instructions string
	Tools        []string
	Model        string
}

// Thread is a remote conversation history.
type Thread struct {
	ID string
}

// Run is one assistant invocation against a thread.
type Run struct {
	ID        string
	ThreadID  string
	Status    RunStatus
	LastError string
}

// Message is a thread entry. HasText is false when the first content block
// is not text.
type Message struct {
	ID      string
	RunID   string
	Role    Role
	Text    string
	HasText bool
}

// Service is the subset of the Assistants API used by the orchestrator.
type Service interface {
	CreateAssistant(ctx context.Context, d Descriptor) (Descriptor, error)
	CreateThread(ctx context.Context) (Thread, error)
	CreateMessage(ctx context.Context, threadID, text string) (Message, error)
	CreateRun(ctx context.Context, threadID, assistantID string) (Run, error)
	GetRun(ctx context.Context, threadID, runID string) (Run, error)
	// ListMessages returns every message of the thread, oldest first.
	ListMessages(ctx context.Context, threadID string) ([]Message, error)
}
