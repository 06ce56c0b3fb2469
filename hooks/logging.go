package hooks

import (
	"context"
	"log"

	"github.com/youssefsiam38/recoverpg/types"
)

// LoggingHooks provides built-in logging hooks for observability
type LoggingHooks struct {
	logger *log.Logger
}

// NewLoggingHooks creates logging hooks with the provided logger
func NewLoggingHooks(logger *log.Logger) *LoggingHooks {
	return &LoggingHooks{logger: logger}
}

// DefaultLoggingHooks creates logging hooks with the default logger
func DefaultLoggingHooks() *LoggingHooks {
	return &LoggingHooks{logger: log.Default()}
}

// Attach registers all logging hooks on the registry
func (h *LoggingHooks) Attach(r *Registry) {
	r.OnBeforeCompaction(h.BeforeCompaction)
	r.OnAfterCompaction(h.AfterCompaction)
	r.OnBeforeAgentStart(h.BeforeAgentStart)
}

// BeforeCompaction logs the size of the history about to be compacted
func (h *LoggingHooks) BeforeCompaction(ctx context.Context, ev types.BeforeCompactionEvent) error {
	h.logger.Printf("[RecoverPG] Compacting conversation: %d messages", ev.MessageCount)
	return nil
}

// AfterCompaction logs which session finished compacting
func (h *LoggingHooks) AfterCompaction(ctx context.Context, ev types.AfterCompactionEvent) error {
	if ev.SessionKey != "" {
		h.logger.Printf("[RecoverPG] Compaction complete for session %s", ev.SessionKey)
	} else {
		h.logger.Printf("[RecoverPG] Compaction complete (no session key)")
	}
	return nil
}

// BeforeAgentStart logs agent starts; it never injects anything
func (h *LoggingHooks) BeforeAgentStart(ctx context.Context, ev types.AgentStartEvent) (*types.Injection, error) {
	if ev.SessionKey != "" {
		h.logger.Printf("[RecoverPG] Agent starting for session %s", ev.SessionKey)
	}
	return nil, nil
}
