package types

// BeforeCompactionEvent is delivered by the host immediately before it
// compacts a session's history. Messages may be nil when the host does
// not supply the history; MessageCount is always populated.
type BeforeCompactionEvent struct {
	MessageCount int       `json:"message_count"`
	Messages     []Message `json:"messages,omitempty"`
}

// AfterCompactionEvent is delivered by the host once compaction has
// completed. SessionKey may be empty when the host does not track one.
type AfterCompactionEvent struct {
	SessionKey string `json:"session_key,omitempty"`
}

// AgentStartEvent is delivered by the host at the start of the next
// agent turn.
type AgentStartEvent struct {
	SessionKey string `json:"session_key,omitempty"`
}

// Injection is returned to the host from a before-agent-start hook.
// PrependContext is spliced into the upcoming turn's context.
type Injection struct {
	PrependContext string `json:"prepend_context"`
}
