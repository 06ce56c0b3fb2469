// Package recoverpg mitigates context loss when a long-running
// conversational agent compacts its history to fit a context window.
//
// RecoverPG hooks three lifecycle points around compaction: before it,
// to snapshot a short digest of the task in progress; after it, to mark
// the session as owing a recovery handoff; and at the next agent turn,
// to inject a recovery notice plus the saved snapshot exactly once.
//
// # Key Features
//
//   - Task-context digest extracted from the conversation tail with a
//     cheap task-indicator heuristic
//   - Single-slot snapshot persisted atomically to a file, or to
//     PostgreSQL for multi-instance hosts
//   - Per-session recovery state machine with a 60-second staleness
//     fallback for hosts that lose session identity across compaction
//   - Every failure degrades to "no recovery content" — the hooks never
//     break the hosting turn
//
// # Quick Start
//
// Create a Recovery and call its hooks from the host's lifecycle:
//
//	rec, err := recoverpg.New(
//	    recoverpg.WithWorkspace("/srv/agent"),
//	)
//
//	// When the host is about to compact:
//	rec.BeforeCompaction(ctx, types.BeforeCompactionEvent{
//	    MessageCount: len(history),
//	    Messages:     history,
//	})
//
//	// When compaction finished:
//	rec.AfterCompaction(ctx, types.AfterCompactionEvent{SessionKey: sessionID})
//
//	// Before the next turn:
//	inj, _ := rec.BeforeAgentStart(ctx, types.AgentStartEvent{SessionKey: sessionID})
//	if inj != nil {
//	    prompt = inj.PrependContext + "\n\n" + prompt
//	}
//
// Hosts with a hook registry can wire everything in one call:
//
//	registry := hooks.NewRegistry()
//	rec.Attach(registry)
//
// # Snapshot Storage
//
// By default the snapshot is written to
// <workspace>/memory/compaction-context.md via an atomic
// write-then-rename. The location is configurable:
//
//	recoverpg.New(recoverpg.WithContextFile("~/agent/context.md"))
//
// Hosts that run multiple instances against one database can keep the
// slot in Postgres instead:
//
//	pool, _ := pgxpool.New(ctx, connString)
//	store := snapshot.NewPostgresStore(pool, "my-agent")
//	rec, _ := recoverpg.New(recoverpg.WithStore(store))
//
// # Disabling Injection
//
// With the recovery prompt disabled, state is still consumed and
// cleared on agent start but no text is injected:
//
//	recoverpg.New(recoverpg.WithRecoveryPrompt(false))
package recoverpg
