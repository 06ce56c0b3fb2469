package snapshot_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/youssefsiam38/recoverpg/internal/testutil"
	"github.com/youssefsiam38/recoverpg/snapshot"
)

func TestPostgresStoreRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer db.Close()

	ctx := context.Background()
	store := snapshot.NewPostgresStore(db.Pool, "test-roundtrip")

	if err := store.CreateSchema(ctx); err != nil {
		t.Fatalf("CreateSchema: %v", err)
	}
	if err := db.CleanTables(ctx); err != nil {
		t.Fatalf("CleanTables: %v", err)
	}

	snap := snapshot.Snapshot{
		Timestamp:       time.Now(),
		CompactionCount: 7,
		Passages:        []string{"User: Fix the login bug"},
	}
	if err := store.Save(ctx, snap); err != nil {
		t.Fatalf("Save: %v", err)
	}

	content, ok, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("expected snapshot to exist after save")
	}
	if !strings.Contains(content, "Compaction: #7") {
		t.Error("loaded snapshot missing counter line")
	}

	// Upsert replaces the slot.
	snap.CompactionCount = 8
	if err := store.Save(ctx, snap); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	content, _, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if !strings.Contains(content, "Compaction: #8") {
		t.Error("expected second save to replace the slot")
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, _ := store.Load(ctx); ok {
		t.Error("expected snapshot to be absent after clear")
	}
	if err := store.Clear(ctx); err != nil {
		t.Errorf("second Clear should be a no-op, got %v", err)
	}
}

func TestPostgresStoreSlotIsolation(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer db.Close()

	ctx := context.Background()
	a := snapshot.NewPostgresStore(db.Pool, "slot-a")
	b := snapshot.NewPostgresStore(db.Pool, "slot-b")

	if err := a.CreateSchema(ctx); err != nil {
		t.Fatalf("CreateSchema: %v", err)
	}
	if err := db.CleanTables(ctx); err != nil {
		t.Fatalf("CleanTables: %v", err)
	}

	if err := a.Save(ctx, snapshot.Snapshot{Timestamp: time.Now(), CompactionCount: 1}); err != nil {
		t.Fatalf("Save slot-a: %v", err)
	}

	if _, ok, _ := b.Load(ctx); ok {
		t.Error("slot-b should not see slot-a's snapshot")
	}
	if err := b.Clear(ctx); err != nil {
		t.Fatalf("Clear slot-b: %v", err)
	}
	if _, ok, _ := a.Load(ctx); !ok {
		t.Error("clearing slot-b must not affect slot-a")
	}
}

func TestSQLStoreRoundTrip(t *testing.T) {
	db := testutil.NewTestSQLDB(t)
	defer db.Close()

	ctx := context.Background()
	store := snapshot.NewSQLStore(db, "test-sql")

	if err := store.CreateSchema(ctx); err != nil {
		t.Fatalf("CreateSchema: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	snap := snapshot.Snapshot{
		Timestamp:       time.Now(),
		CompactionCount: 2,
		Passages:        []string{"Assistant: Implementing the fix"},
	}
	if err := store.Save(ctx, snap); err != nil {
		t.Fatalf("Save: %v", err)
	}

	content, ok, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("expected snapshot to exist after save")
	}
	if !strings.Contains(content, "Assistant: Implementing the fix") {
		t.Error("loaded snapshot missing saved passage")
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, _ := store.Load(ctx); ok {
		t.Error("expected snapshot to be absent after clear")
	}
}
