package conversation

import (
	"time"

	loggerpkg "github.com/minhyannv/assistant-chat-go/pkg/logger"
)

// Option configures optional runtime settings for an Orchestrator.
type Option func(*Orchestrator)

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithVerbose enables debug logging of the polling loop.
func WithVerbose(v bool) Option {
	return func(o *Orchestrator) {
		o.verbose = v
	}
}

// WithPolling sets the delay between status checks and the maximum number of
// checks per run. Non-positive values keep the defaults.
func WithPolling(interval time.Duration, maxPolls int) Option {
	return func(o *Orchestrator) {
		if interval > 0 {
			o.pollInterval = interval
		}
		if maxPolls > 0 {
			o.maxPolls = maxPolls
		}
	}
}
