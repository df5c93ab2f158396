package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hangul/internal/modules/progress/domain"
	progressout "hangul/internal/modules/progress/port/out"
	apperrors "hangul/internal/platform/errors"

	_ "modernc.org/sqlite"
)

// SQLiteSnapshotStore keeps the snapshot as one JSON value in a key/value table.
type SQLiteSnapshotStore struct {
	db  *sql.DB
	key string
}

func NewSQLiteSnapshotStore(dbPath string) (progressout.SnapshotStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w: %w", apperrors.ErrStorageUnavailable, err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w: %w", apperrors.ErrStorageUnavailable, err)
	}
	store := &SQLiteSnapshotStore{db: db, key: domain.StorageKey}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteSnapshotStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS kv (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create kv table: %w: %w", apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *SQLiteSnapshotStore) Load(ctx context.Context) (domain.Snapshot, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, s.key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Snapshot{}, apperrors.ErrNotFound
	}
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load snapshot: %w: %w", apperrors.ErrStorageUnavailable, err)
	}
	snapshot := domain.Snapshot{}
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *SQLiteSnapshotStore) Save(ctx context.Context, snapshot domain.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	const stmt = `
INSERT INTO kv (key, value, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET
  value=excluded.value,
  updated_at=excluded.updated_at;
`
	if _, err := s.db.ExecContext(ctx, stmt, s.key, string(payload), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("save snapshot: %w: %w", apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *SQLiteSnapshotStore) Close() error {
	return s.db.Close()
}
