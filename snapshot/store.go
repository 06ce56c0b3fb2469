// Package snapshot persists the task-context digest across a compaction
// boundary. There is exactly one snapshot slot per store: writing
// replaces the prior snapshot, and no history is kept. The persisted
// form is human-readable Markdown — it is rendered once on save and
// later re-read as opaque text, never parsed back.
package snapshot

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Snapshot is the value persisted before compaction.
type Snapshot struct {
	// Timestamp is when the snapshot was taken.
	Timestamp time.Time

	// CompactionCount is the process-wide compaction counter at save
	// time, included for operator visibility.
	CompactionCount int

	// Passages is the digest body, in chronological order.
	Passages []string
}

// Store persists, loads, and clears the single snapshot slot.
//
// Implementations must treat a missing snapshot as ok=false rather than
// an error, and Clear of an already-absent snapshot as a no-op. Save
// replaces whatever was there before.
type Store interface {
	// Save renders the snapshot and replaces the slot's contents.
	Save(ctx context.Context, snap Snapshot) error

	// Load returns the rendered snapshot text. ok is false when no
	// snapshot exists. A non-nil error means the slot could not be
	// read; callers are expected to degrade to "no snapshot".
	Load(ctx context.Context) (content string, ok bool, err error)

	// Clear removes the snapshot. Absence is not an error.
	Clear(ctx context.Context) error
}

const (
	renderHeading = "# Task Context Snapshot"

	renderFooter = "This context was captured automatically before the conversation was\n" +
		"compacted. If the task described above is unfinished, continue it."
)

// Render produces the persisted Markdown document: fixed heading,
// ISO-8601 timestamp line, compaction-counter line, digest body, and a
// static explanatory footer.
func Render(snap Snapshot) string {
	var sb strings.Builder
	sb.WriteString(renderHeading)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Saved: %s\n", snap.Timestamp.UTC().Format(time.RFC3339))
	fmt.Fprintf(&sb, "Compaction: #%d\n\n", snap.CompactionCount)
	sb.WriteString(strings.Join(snap.Passages, "\n\n"))
	sb.WriteString("\n\n---\n\n")
	sb.WriteString(renderFooter)
	sb.WriteString("\n")
	return sb.String()
}
