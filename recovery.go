package recoverpg

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/youssefsiam38/recoverpg/digest"
	"github.com/youssefsiam38/recoverpg/hooks"
	"github.com/youssefsiam38/recoverpg/snapshot"
	"github.com/youssefsiam38/recoverpg/tracker"
	"github.com/youssefsiam38/recoverpg/types"
)

// RecoveryNotice is the static prompt injected on the first agent start
// after a compaction. The saved snapshot, when available, is appended
// under SnapshotHeading.
const RecoveryNotice = "## Context Recovery\n\n" +
	"The conversation history was just compacted to reclaim context space,\n" +
	"so details of earlier turns may have been summarized away. A snapshot\n" +
	"of the task context taken just before compaction follows. If the task\n" +
	"it describes is unfinished, continue it rather than starting over."

// SnapshotHeading labels the saved snapshot inside the injected text.
const SnapshotHeading = "### Saved Task Context"

// Recovery wires the digest, snapshot, and tracker packages behind the
// three lifecycle hooks a host invokes around compaction. Every failure
// inside these hooks degrades to "no recovery content available"; none
// of them ever fails the hosting turn.
type Recovery struct {
	store  snapshot.Store
	track  *tracker.Tracker
	logger *log.Logger

	recoveryPrompt         bool
	minMessagesForSnapshot int

	// now is replaceable in tests
	now func() time.Time
}

// New creates a Recovery with the given options. With no options it
// snapshots to <workspace>/memory/compaction-context.md, gated on a
// 10-message minimum, and injects recovery text on the next start.
func New(opts ...Option) (*Recovery, error) {
	cfg := newInternalConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	store := cfg.store
	if store == nil {
		store = snapshot.NewFileStore(cfg.contextFile, cfg.workspace)
	}

	return &Recovery{
		store:                  store,
		track:                  tracker.New(),
		logger:                 cfg.logger,
		recoveryPrompt:         cfg.recoveryPrompt,
		minMessagesForSnapshot: cfg.minMessagesForSnapshot,
		now:                    time.Now,
	}, nil
}

// BeforeCompaction snapshots the current task context if the history
// clears the minimum-size gate. A qualifying call increments the
// compaction counter and arms the staleness fallback even when the
// digest comes up empty; only the file write is skipped in that case.
// Storage failures are logged and absorbed.
func (r *Recovery) BeforeCompaction(ctx context.Context, ev types.BeforeCompactionEvent) error {
	if ev.MessageCount < r.minMessagesForSnapshot {
		return nil
	}

	count := r.track.MarkCompaction(r.now())

	passages := digest.Build(ev.Messages)
	if len(passages) == 0 {
		r.logger.Printf("[RecoverPG] Compaction #%d: no task context worth snapshotting", count)
		return nil
	}

	snap := snapshot.Snapshot{
		Timestamp:       r.now(),
		CompactionCount: count,
		Passages:        passages,
	}
	if err := r.store.Save(ctx, snap); err != nil {
		r.logger.Printf("[RecoverPG] Failed to save task context snapshot: %v", err)
		return nil
	}

	r.logger.Printf("[RecoverPG] Saved task context before compaction #%d (%d passages)", count, len(passages))
	return nil
}

// AfterCompaction marks the event's session as owing a recovery
// injection on its next agent start. A missing session key maps to the
// tracker's default key.
func (r *Recovery) AfterCompaction(ctx context.Context, ev types.AfterCompactionEvent) error {
	r.track.MarkPending(ev.SessionKey)
	return nil
}

// BeforeAgentStart returns the recovery injection owed to the session,
// or nil. The tracker's check-and-clear runs first, before any store
// I/O, so concurrent starts for other sessions never observe
// half-updated state. With the recovery prompt disabled the state is
// still consumed but nothing is injected. A snapshot that cannot be
// loaded degrades to the static notice alone.
func (r *Recovery) BeforeAgentStart(ctx context.Context, ev types.AgentStartEvent) (*types.Injection, error) {
	if !r.track.ConsumePending(ev.SessionKey, r.now()) {
		return nil, nil
	}
	if !r.recoveryPrompt {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString(RecoveryNotice)

	content, ok, err := r.store.Load(ctx)
	if err != nil {
		r.logger.Printf("[RecoverPG] Failed to load task context snapshot: %v", err)
	}
	if ok {
		sb.WriteString("\n\n")
		sb.WriteString(SnapshotHeading)
		sb.WriteString("\n\n")
		sb.WriteString(content)
	}

	return &types.Injection{PrependContext: sb.String()}, nil
}

// Attach registers the three lifecycle hooks on the registry.
func (r *Recovery) Attach(registry *hooks.Registry) {
	registry.OnBeforeCompaction(r.BeforeCompaction)
	registry.OnAfterCompaction(r.AfterCompaction)
	registry.OnBeforeAgentStart(r.BeforeAgentStart)
}

// Store returns the snapshot store in use, for hosts that want to
// inspect or clear the snapshot directly.
func (r *Recovery) Store() snapshot.Store {
	return r.store
}

// CompactionCount returns the number of qualifying compactions seen so
// far in this process.
func (r *Recovery) CompactionCount() int {
	return r.track.CompactionCount()
}

// PendingCount returns how many sessions currently owe a recovery
// injection.
func (r *Recovery) PendingCount() int {
	return r.track.PendingCount()
}
