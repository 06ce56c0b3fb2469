package snapshot

import (
	"strings"
	"testing"
	"time"
)

func TestRender(t *testing.T) {
	snap := Snapshot{
		Timestamp:       time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		CompactionCount: 3,
		Passages: []string{
			"User: Fix the login bug",
			"Assistant: I'm investigating the login bug now",
		},
	}

	rendered := Render(snap)

	if !strings.HasPrefix(rendered, "# Task Context Snapshot\n") {
		t.Error("missing fixed heading")
	}
	if !strings.Contains(rendered, "Saved: 2026-03-14T09:26:53Z") {
		t.Error("missing ISO-8601 timestamp line")
	}
	if !strings.Contains(rendered, "Compaction: #3") {
		t.Error("missing compaction counter line")
	}
	if !strings.Contains(rendered, "User: Fix the login bug\n\nAssistant: I'm investigating the login bug now") {
		t.Error("passages not joined with a blank line")
	}
	if !strings.Contains(rendered, "captured automatically before the conversation was") {
		t.Error("missing static footer")
	}
}

func TestRenderTimestampNormalizedToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	snap := Snapshot{
		Timestamp: time.Date(2026, 3, 14, 11, 0, 0, 0, loc),
	}

	if !strings.Contains(Render(snap), "Saved: 2026-03-14T09:00:00Z") {
		t.Error("timestamp should render in UTC")
	}
}
