package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hangul/internal/modules/progress/domain"
	progressout "hangul/internal/modules/progress/port/out"
	apperrors "hangul/internal/platform/errors"
)

type FileSnapshotStore struct {
	path string
}

func NewFileSnapshotStore(path string) progressout.SnapshotStore {
	return &FileSnapshotStore{path: path}
}

func (s *FileSnapshotStore) Load(_ context.Context) (domain.Snapshot, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Snapshot{}, apperrors.ErrNotFound
		}
		return domain.Snapshot{}, fmt.Errorf("read snapshot: %w: %w", apperrors.ErrStorageUnavailable, err)
	}
	snapshot := domain.Snapshot{}
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return domain.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snapshot, nil
}

// Save writes through a temp file and rename so readers never see a partial snapshot.
func (s *FileSnapshotStore) Save(_ context.Context, snapshot domain.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w: %w", apperrors.ErrStorageUnavailable, err)
	}
	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w: %w", apperrors.ErrStorageUnavailable, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w: %w", apperrors.ErrStorageUnavailable, err)
	}
	return nil
}
