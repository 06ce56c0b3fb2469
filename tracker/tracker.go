// Package tracker records whether a compaction just happened and which
// sessions still owe a recovery injection. It is the bridge between two
// host callbacks that share no call stack: the end of a compaction and
// the start of the next agent turn.
//
// Per-session state machine:
//
//	Clean ──────────────────────┐
//	    │ (after_compaction)    │
//	    v                       │
//	PendingRecovery ────────────┤
//	    │ (before_agent_start)  │
//	    └──> Clean              │ (pending entry consumed, injection owed)
//
// Two process-wide flags, compactionJustHappened and lastCompactionTime,
// provide a time-boxed fallback for sessions whose identity the host did
// not supply consistently across the compaction boundary. Either gate
// alone is sufficient to owe an injection; consuming an injection clears
// both for the session being served.
package tracker

import (
	"sync"
	"time"
)

const (
	// DefaultSessionKey substitutes for a missing session identifier.
	// Hosts that omit keys share recovery state across all their
	// anonymous sessions; see the Tracker doc for the consequences.
	DefaultSessionKey = "default"

	// StalenessWindow bounds the fallback gate: an agent start more
	// than this long after the last compaction, with no pending entry
	// for its session, produces no injection.
	StalenessWindow = 60 * time.Second
)

// Tracker holds the process-wide recovery state. All operations take
// the lock for their full read-modify-write span, so concurrent hook
// invocations never observe a half-updated state.
//
// Known limitation, kept deliberately: when the host omits session keys,
// every anonymous session maps to DefaultSessionKey and they share one
// pending entry. Callers that need correct behavior across concurrent
// anonymous sessions must supply unique keys.
type Tracker struct {
	mu sync.Mutex

	compactionJustHappened bool
	lastCompactionTime     time.Time
	compactionCount        int

	pending map[string]struct{}
}

// New creates an empty tracker.
func New() *Tracker {
	return &Tracker{pending: make(map[string]struct{})}
}

// MarkCompaction records a qualifying compaction at the given time and
// returns the new compaction count. It does not touch any session's
// pending state; that happens on MarkPending.
func (t *Tracker) MarkCompaction(now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.compactionCount++
	t.compactionJustHappened = true
	t.lastCompactionTime = now
	return t.compactionCount
}

// MarkPending moves the session into PendingRecovery. An empty key maps
// to DefaultSessionKey. Repeated compactions before the next agent start
// collapse into one pending entry (set semantics).
func (t *Tracker) MarkPending(sessionKey string) {
	if sessionKey == "" {
		sessionKey = DefaultSessionKey
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending[sessionKey] = struct{}{}
}

// ConsumePending reports whether the session is owed a recovery
// injection, and clears the state that made it so, in one atomic step.
//
// A pending session proceeds and returns to Clean. A session with no
// pending entry proceeds only through the fallback gate: a compaction
// happened and now is within StalenessWindow of it. Either way a
// proceeding call clears compactionJustHappened, so at most one
// injection is produced per compaction event per session.
func (t *Tracker) ConsumePending(sessionKey string, now time.Time) bool {
	if sessionKey == "" {
		sessionKey = DefaultSessionKey
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.pending[sessionKey]; ok {
		delete(t.pending, sessionKey)
		t.compactionJustHappened = false
		return true
	}

	if t.compactionJustHappened && now.Sub(t.lastCompactionTime) <= StalenessWindow {
		t.compactionJustHappened = false
		return true
	}

	return false
}

// CompactionCount returns the number of qualifying compactions recorded
// so far. The counter never decreases.
func (t *Tracker) CompactionCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.compactionCount
}

// PendingCount returns how many sessions currently owe an injection.
func (t *Tracker) PendingCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}

// IsPending reports whether the session currently owes an injection,
// without consuming anything. Intended for observability surfaces.
func (t *Tracker) IsPending(sessionKey string) bool {
	if sessionKey == "" {
		sessionKey = DefaultSessionKey
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.pending[sessionKey]
	return ok
}
