package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultSlot is the slot key used when none is configured. Hosts that
// run several agents against one database give each its own slot key.
const DefaultSlot = "default"

// PostgresSchema creates the snapshot slot table. Apply it once per
// database, e.g. via the host's migration tooling or CreateSchema.
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS recoverpg_snapshots (
    slot_key         TEXT PRIMARY KEY,
    id               UUID NOT NULL,
    content          TEXT NOT NULL,
    compaction_count INTEGER NOT NULL,
    saved_at         TIMESTAMPTZ NOT NULL
);
`

// PostgresStore keeps the snapshot slot as a single row in Postgres,
// for hosts that run multiple instances and cannot rely on a shared
// filesystem. Each Save fully replaces the row, so concurrent readers
// observe either the previous or the new snapshot.
type PostgresStore struct {
	pool *pgxpool.Pool
	slot string
}

// NewPostgresStore creates a Postgres-backed store on the given pool.
// An empty slot uses DefaultSlot.
func NewPostgresStore(pool *pgxpool.Pool, slot string) *PostgresStore {
	if slot == "" {
		slot = DefaultSlot
	}
	return &PostgresStore{pool: pool, slot: slot}
}

// CreateSchema applies PostgresSchema. Safe to call repeatedly.
func (s *PostgresStore) CreateSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, PostgresSchema); err != nil {
		return fmt.Errorf("creating snapshot schema: %w", err)
	}
	return nil
}

// Save renders the snapshot and upserts the slot row.
func (s *PostgresStore) Save(ctx context.Context, snap Snapshot) error {
	query := `
		INSERT INTO recoverpg_snapshots (slot_key, id, content, compaction_count, saved_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slot_key) DO UPDATE
		SET id = EXCLUDED.id,
		    content = EXCLUDED.content,
		    compaction_count = EXCLUDED.compaction_count,
		    saved_at = EXCLUDED.saved_at
	`

	_, err := s.pool.Exec(ctx, query,
		s.slot, uuid.New(), Render(snap), snap.CompactionCount, snap.Timestamp.UTC())
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// Load returns the slot's rendered snapshot text.
func (s *PostgresStore) Load(ctx context.Context) (string, bool, error) {
	var content string
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM recoverpg_snapshots WHERE slot_key = $1`, s.slot,
	).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("loading snapshot: %w", err)
	}
	return content, true, nil
}

// Clear deletes the slot row if present.
func (s *PostgresStore) Clear(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx,
		`DELETE FROM recoverpg_snapshots WHERE slot_key = $1`, s.slot); err != nil {
		return fmt.Errorf("clearing snapshot: %w", err)
	}
	return nil
}
