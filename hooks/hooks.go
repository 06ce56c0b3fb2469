package hooks

import (
	"context"
	"strings"
	"sync"

	"github.com/youssefsiam38/recoverpg/types"
)

// BeforeCompactionHook is called before the host compacts a conversation
type BeforeCompactionHook func(ctx context.Context, ev types.BeforeCompactionEvent) error

// AfterCompactionHook is called after the host finished compacting
type AfterCompactionHook func(ctx context.Context, ev types.AfterCompactionEvent) error

// BeforeAgentStartHook is called before the next agent turn starts. It
// may return an injection whose PrependContext is spliced into the
// upcoming turn.
type BeforeAgentStartHook func(ctx context.Context, ev types.AgentStartEvent) (*types.Injection, error)

// Registry holds all registered hooks
type Registry struct {
	mu               sync.RWMutex
	beforeCompaction []BeforeCompactionHook
	afterCompaction  []AfterCompactionHook
	beforeAgentStart []BeforeAgentStartHook
}

// NewRegistry creates a new hook registry
func NewRegistry() *Registry {
	return &Registry{
		beforeCompaction: []BeforeCompactionHook{},
		afterCompaction:  []AfterCompactionHook{},
		beforeAgentStart: []BeforeAgentStartHook{},
	}
}

// OnBeforeCompaction registers a hook to be called before compaction
func (r *Registry) OnBeforeCompaction(hook BeforeCompactionHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.beforeCompaction = append(r.beforeCompaction, hook)
}

// OnAfterCompaction registers a hook to be called after compaction
func (r *Registry) OnAfterCompaction(hook AfterCompactionHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.afterCompaction = append(r.afterCompaction, hook)
}

// OnBeforeAgentStart registers a hook to be called before the next turn
func (r *Registry) OnBeforeAgentStart(hook BeforeAgentStartHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.beforeAgentStart = append(r.beforeAgentStart, hook)
}

// TriggerBeforeCompaction calls all registered before-compaction hooks
func (r *Registry) TriggerBeforeCompaction(ctx context.Context, ev types.BeforeCompactionEvent) error {
	r.mu.RLock()
	hooks := make([]BeforeCompactionHook, len(r.beforeCompaction))
	copy(hooks, r.beforeCompaction)
	r.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}

// TriggerAfterCompaction calls all registered after-compaction hooks
func (r *Registry) TriggerAfterCompaction(ctx context.Context, ev types.AfterCompactionEvent) error {
	r.mu.RLock()
	hooks := make([]AfterCompactionHook, len(r.afterCompaction))
	copy(hooks, r.afterCompaction)
	r.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}

// TriggerBeforeAgentStart calls all registered before-agent-start hooks
// and concatenates their injections, in registration order, separated by
// blank lines. It returns nil when no hook produced anything.
func (r *Registry) TriggerBeforeAgentStart(ctx context.Context, ev types.AgentStartEvent) (*types.Injection, error) {
	r.mu.RLock()
	hooks := make([]BeforeAgentStartHook, len(r.beforeAgentStart))
	copy(hooks, r.beforeAgentStart)
	r.mu.RUnlock()

	var parts []string
	for _, hook := range hooks {
		inj, err := hook(ctx, ev)
		if err != nil {
			return nil, err
		}
		if inj != nil && inj.PrependContext != "" {
			parts = append(parts, inj.PrependContext)
		}
	}

	if len(parts) == 0 {
		return nil, nil
	}
	return &types.Injection{PrependContext: strings.Join(parts, "\n\n")}, nil
}
