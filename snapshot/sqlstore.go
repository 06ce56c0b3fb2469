package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// SQLStore is the database/sql counterpart of PostgresStore, for hosts
// that hold a *sql.DB rather than a pgx pool. It expects a Postgres
// driver such as lib/pq:
//
//	db, _ := sql.Open("postgres", connString)
//	store := snapshot.NewSQLStore(db, "")
type SQLStore struct {
	db   *sql.DB
	slot string
}

// NewSQLStore creates a database/sql-backed store. An empty slot uses
// DefaultSlot.
func NewSQLStore(db *sql.DB, slot string) *SQLStore {
	if slot == "" {
		slot = DefaultSlot
	}
	return &SQLStore{db: db, slot: slot}
}

// CreateSchema applies PostgresSchema. Safe to call repeatedly.
func (s *SQLStore) CreateSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, PostgresSchema); err != nil {
		return fmt.Errorf("creating snapshot schema: %w", err)
	}
	return nil
}

// Save renders the snapshot and upserts the slot row.
func (s *SQLStore) Save(ctx context.Context, snap Snapshot) error {
	query := `
		INSERT INTO recoverpg_snapshots (slot_key, id, content, compaction_count, saved_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slot_key) DO UPDATE
		SET id = EXCLUDED.id,
		    content = EXCLUDED.content,
		    compaction_count = EXCLUDED.compaction_count,
		    saved_at = EXCLUDED.saved_at
	`

	_, err := s.db.ExecContext(ctx, query,
		s.slot, uuid.New().String(), Render(snap), snap.CompactionCount, snap.Timestamp.UTC())
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// Load returns the slot's rendered snapshot text.
func (s *SQLStore) Load(ctx context.Context) (string, bool, error) {
	var content string
	err := s.db.QueryRowContext(ctx,
		`SELECT content FROM recoverpg_snapshots WHERE slot_key = $1`, s.slot,
	).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("loading snapshot: %w", err)
	}
	return content, true, nil
}

// Clear deletes the slot row if present.
func (s *SQLStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM recoverpg_snapshots WHERE slot_key = $1`, s.slot); err != nil {
		return fmt.Errorf("clearing snapshot: %w", err)
	}
	return nil
}
