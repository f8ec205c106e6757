package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"homehub/internal/store"
)

// Snapshot storage constants. The key and version mirror the client-side
// storage contract: one keyed blob, discarded wholesale on any mismatch.
const (
	snapshotKey    = "home-hub-storage"
	snapshotSchema = 1

	upsertSnapshotSQL = `
		INSERT INTO snapshots (key, version, data, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			version=excluded.version,
			data=excluded.data,
			updated_at=excluded.updated_at
	`

	selectSnapshotSQL = `SELECT version, data FROM snapshots WHERE key=?`
)

// SnapshotSQLite keeps the whole store under one key in SQLite.
type SnapshotSQLite struct {
	db *sql.DB
}

func NewSnapshotSQLite(db *sql.DB) *SnapshotSQLite {
	return &SnapshotSQLite{db: db}
}

var _ SnapshotRepo = (*SnapshotSQLite)(nil)

// Save serializes the state and rewrites the blob in place.
func (r *SnapshotSQLite) Save(ctx context.Context, st store.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = r.db.ExecContext(ctx, upsertSnapshotSQL,
		snapshotKey, snapshotSchema, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Load reads the blob back. A missing row, a schema version other than
// the current one, or an unreadable payload all yield ok=false with no
// error: the snapshot is simply discarded.
func (r *SnapshotSQLite) Load(ctx context.Context) (store.State, bool, error) {
	var (
		version int
		data    string
	)
	err := r.db.QueryRowContext(ctx, selectSnapshotSQL, snapshotKey).Scan(&version, &data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.State{}, false, nil
		}
		return store.State{}, false, fmt.Errorf("read snapshot: %w", err)
	}

	if version != snapshotSchema {
		return store.State{}, false, nil
	}

	var st store.State
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		return store.State{}, false, nil
	}
	return st, true, nil
}
