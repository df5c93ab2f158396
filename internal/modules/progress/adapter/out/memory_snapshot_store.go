package out

import (
	"context"
	"sync"

	"hangul/internal/modules/progress/domain"
	progressout "hangul/internal/modules/progress/port/out"
	apperrors "hangul/internal/platform/errors"
)

type MemorySnapshotStore struct {
	mu       sync.Mutex
	snapshot *domain.Snapshot
}

func NewMemorySnapshotStore() progressout.SnapshotStore {
	return &MemorySnapshotStore{}
}

func (s *MemorySnapshotStore) Load(_ context.Context) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return domain.Snapshot{}, apperrors.ErrNotFound
	}
	return s.snapshot.Clone(), nil
}

func (s *MemorySnapshotStore) Save(_ context.Context, snapshot domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := snapshot.Clone()
	s.snapshot = &clone
	return nil
}
