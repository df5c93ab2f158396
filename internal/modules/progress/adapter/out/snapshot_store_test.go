package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	progressout "hangul/internal/modules/progress/adapter/out"
	"hangul/internal/modules/progress/domain"
	outport "hangul/internal/modules/progress/port/out"
	apperrors "hangul/internal/platform/errors"
)

func sampleSnapshot() domain.Snapshot {
	s := domain.DefaultSnapshot()
	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	s.RecordScore(1, 90, at)
	s.Grant(domain.UnlockedAchievement{ID: "firstSteps", UnlockedAt: at})
	s.MarkWordCompleted(2)
	return s
}

func assertRoundTrip(t *testing.T, store outport.SnapshotStore) {
	t.Helper()
	ctx := context.Background()
	if _, err := store.Load(ctx); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found before first save, got %v", err)
	}
	want := sampleSnapshot()
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	want.RecordScore(2, 100, time.Now())
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.BestScore(1) != 90 || got.BestScore(2) != 100 || !got.IsCompleted(1) || !got.IsWordCompleted(2) {
		t.Fatalf("unexpected loaded snapshot %+v", got)
	}
	if got.SchemaVersion != domain.SchemaVersion || len(got.Achievements) != 1 || got.LastPracticeAt == nil {
		t.Fatalf("metadata lost in round trip: %+v", got)
	}
}

func TestSQLiteSnapshotStoreRoundTrip(t *testing.T) {
	t.Parallel()
	store, err := progressout.NewSQLiteSnapshotStore(filepath.Join(t.TempDir(), ".hangul", "hangul.db"))
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	assertRoundTrip(t, store)
}

func TestFileSnapshotStoreRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".hangul", "progress.json")
	assertRoundTrip(t, progressout.NewFileSnapshotStore(path))
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file must be renamed away, got %v", err)
	}
}

func TestMemorySnapshotStoreRoundTrip(t *testing.T) {
	t.Parallel()
	assertRoundTrip(t, progressout.NewMemorySnapshotStore())
}

func TestFileSnapshotStoreRejectsCorruptData(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "progress.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := progressout.NewFileSnapshotStore(path).Load(context.Background()); err == nil || errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected decode error, got %v", err)
	}
}
