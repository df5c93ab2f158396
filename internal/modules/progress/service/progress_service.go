package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	alphabetdomain "hangul/internal/modules/alphabet/domain"
	"hangul/internal/modules/progress/domain"
	progressout "hangul/internal/modules/progress/port/out"
	"hangul/internal/platform/clock"
	apperrors "hangul/internal/platform/errors"
	"hangul/internal/platform/logger"
)

// ProgressService owns the learner snapshot. Every mutation recomputes
// unlocks and achievements and persists the whole snapshot. When storage
// fails the service keeps working in memory for the rest of the session.
type ProgressService struct {
	mu       sync.Mutex
	clock    clock.Clock
	store    progressout.SnapshotStore
	catalog  *alphabetdomain.Catalog
	log      *logger.Logger
	current  domain.Snapshot
	degraded bool
}

func NewProgressService(ctx context.Context, clk clock.Clock, store progressout.SnapshotStore, catalog *alphabetdomain.Catalog, log *logger.Logger) *ProgressService {
	s := &ProgressService{
		clock:   clk,
		store:   store,
		catalog: catalog,
		log:     logger.OrNop(log).With("module", "progress"),
		current: domain.DefaultSnapshot(),
	}
	s.load(ctx)
	return s
}

func (s *ProgressService) load(ctx context.Context) {
	if s.store == nil {
		s.degraded = true
		return
	}
	loaded, err := s.store.Load(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		s.log.Debug("no saved progress, starting fresh")
		return
	}
	if err != nil {
		s.log.Warn("progress storage unavailable, continuing in memory", "error", err)
		s.degraded = true
		return
	}
	migrated, err := domain.Migrate(loaded)
	if err != nil {
		s.log.Warn("saved progress unreadable, continuing in memory", "error", err)
		s.degraded = true
		return
	}
	if loaded.SchemaVersion != migrated.SchemaVersion {
		s.log.Info("migrated saved progress", "from", loaded.SchemaVersion, "to", migrated.SchemaVersion)
	}
	s.current = migrated
}

// Degraded reports whether progress is only kept in memory.
func (s *ProgressService) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

func (s *ProgressService) persist(ctx context.Context, next domain.Snapshot) {
	s.current = next
	if s.degraded {
		return
	}
	if err := s.store.Save(ctx, next); err != nil {
		s.log.Warn("progress storage unavailable, continuing in memory", "error", err)
		s.degraded = true
	}
}

// mutate applies fn to a copy of the snapshot, derives unlocks and
// achievements and persists the result. An error from fn leaves the snapshot untouched.
func (s *ProgressService) mutate(ctx context.Context, fn func(snap *domain.Snapshot, now time.Time) (bool, error)) (domain.Change, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	before := s.current
	next := before.Clone()
	completed, err := fn(&next, now)
	if err != nil {
		return domain.Change{}, err
	}
	change := domain.Change{Completed: completed}
	change.Granted = next.Derive(s.catalog, now)
	for _, id := range next.UnlockedLetters {
		if !before.IsUnlocked(id) {
			change.NewlyUnlocked = append(change.NewlyUnlocked, id)
		}
	}
	s.persist(ctx, next)
	change.Snapshot = next.Clone()
	change.Snapshot.StreakCount = next.EffectiveStreak(now)

	if len(change.NewlyUnlocked) > 0 {
		s.log.Info("letters unlocked", "ids", change.NewlyUnlocked, "level", domain.CurrentLevel(next.UnlockedLetters, s.catalog))
	}
	for _, a := range change.Granted {
		s.log.Info("achievement unlocked", "id", a.ID)
	}
	return change, nil
}

func (s *ProgressService) checkLetter(snap *domain.Snapshot, letterID int) error {
	if _, ok := s.catalog.Letter(letterID); !ok {
		return fmt.Errorf("%w: unknown letter %d", apperrors.ErrInvalidInput, letterID)
	}
	if !snap.IsUnlocked(letterID) {
		return fmt.Errorf("%w: letter %d is locked", apperrors.ErrInvalidInput, letterID)
	}
	return nil
}

func (s *ProgressService) UpdateScore(ctx context.Context, letterID, score int) (domain.Change, error) {
	if score < 0 || score > domain.MaxScore {
		return domain.Change{}, fmt.Errorf("%w: score %d outside 0-%d", apperrors.ErrInvalidInput, score, domain.MaxScore)
	}
	return s.mutate(ctx, func(snap *domain.Snapshot, now time.Time) (bool, error) {
		if err := s.checkLetter(snap, letterID); err != nil {
			return false, err
		}
		wasCompleted := snap.IsCompleted(letterID)
		snap.RecordScore(letterID, score, now)
		return !wasCompleted && snap.IsCompleted(letterID), nil
	})
}

func (s *ProgressService) MarkLetterCompleted(ctx context.Context, letterID int) (domain.Change, error) {
	return s.mutate(ctx, func(snap *domain.Snapshot, now time.Time) (bool, error) {
		if err := s.checkLetter(snap, letterID); err != nil {
			return false, err
		}
		return snap.MarkCompleted(letterID, now), nil
	})
}

func (s *ProgressService) MarkWordCompleted(ctx context.Context, wordID int) (domain.Change, error) {
	if _, ok := s.catalog.Word(wordID); !ok {
		return domain.Change{}, fmt.Errorf("%w: unknown word %d", apperrors.ErrInvalidInput, wordID)
	}
	return s.mutate(ctx, func(snap *domain.Snapshot, now time.Time) (bool, error) {
		added := snap.MarkWordCompleted(wordID)
		snap.RecordPractice(now)
		return added, nil
	})
}

func (s *ProgressService) IncrementStreak(ctx context.Context) (domain.Change, error) {
	return s.mutate(ctx, func(snap *domain.Snapshot, now time.Time) (bool, error) {
		snap.IncrementStreak(now)
		return false, nil
	})
}

func (s *ProgressService) ResetStreak(ctx context.Context) (domain.Change, error) {
	return s.mutate(ctx, func(snap *domain.Snapshot, _ time.Time) (bool, error) {
		snap.ResetStreak()
		return false, nil
	})
}

func (s *ProgressService) AddAchievement(ctx context.Context, id string) (domain.Change, error) {
	if _, ok := domain.FindAchievement(id); !ok {
		return domain.Change{}, fmt.Errorf("%w: unknown achievement %q", apperrors.ErrInvalidInput, id)
	}
	return s.mutate(ctx, func(snap *domain.Snapshot, now time.Time) (bool, error) {
		snap.Grant(domain.UnlockedAchievement{ID: id, UnlockedAt: now})
		return false, nil
	})
}

func (s *ProgressService) RecordStudyTime(ctx context.Context, minutes int) (domain.Change, error) {
	if minutes < 0 {
		return domain.Change{}, fmt.Errorf("%w: study minutes must be non-negative", apperrors.ErrInvalidInput)
	}
	return s.mutate(ctx, func(snap *domain.Snapshot, _ time.Time) (bool, error) {
		snap.AddStudyTime(minutes)
		return false, nil
	})
}

func (s *ProgressService) ResetAll(ctx context.Context) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	fresh := domain.DefaultSnapshot()
	s.persist(ctx, fresh)
	s.log.Info("progress reset")
	return fresh.Clone()
}

// Snapshot returns a copy with the streak evaluated against the current day.
func (s *ProgressService) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.current.Clone()
	out.StreakCount = out.EffectiveStreak(s.clock.Now())
	return out
}

// AvailableLetters returns unlocked letters in catalog order.
func (s *ProgressService) AvailableLetters() []alphabetdomain.Letter {
	snap := s.Snapshot()
	return s.catalog.Subset(snap.UnlockedLetters)
}

func (s *ProgressService) Metrics() domain.Metrics {
	snap := s.Snapshot()
	return domain.ComputeMetrics(snap, s.catalog, s.catalog.Len(), s.clock.Now())
}

func (s *ProgressService) Recommendations() []domain.Recommendation {
	snap := s.Snapshot()
	m := domain.ComputeMetrics(snap, s.catalog, s.catalog.Len(), s.clock.Now())
	level := []alphabetdomain.Letter{}
	for _, l := range s.catalog.Subset(snap.UnlockedLetters) {
		if l.Difficulty == m.CurrentLevel {
			level = append(level, l)
		}
	}
	return domain.Recommend(snap, m, level)
}

func (s *ProgressService) Report(profile string) domain.Report {
	snap := s.Snapshot()
	now := s.clock.Now()
	m := domain.ComputeMetrics(snap, s.catalog, s.catalog.Len(), now)
	letters := make([]domain.LetterProgress, 0, s.catalog.Len())
	for _, l := range s.catalog.Letters() {
		letters = append(letters, domain.LetterProgress{
			ID:        l.ID,
			Glyph:     l.Glyph,
			Name:      l.Name,
			Level:     l.Difficulty,
			BestScore: snap.BestScore(l.ID),
			Unlocked:  snap.IsUnlocked(l.ID),
			Completed: snap.IsCompleted(l.ID),
		})
	}
	return domain.Report{
		Profile:         profile,
		GeneratedAt:     now,
		Metrics:         m,
		Stats:           snap.ExerciseStats,
		Letters:         letters,
		Achievements:    domain.AchievementStatuses(snap),
		Recommendations: s.Recommendations(),
	}
}

// UnlockedIDs returns the sorted ids of unlocked letters.
func (s *ProgressService) UnlockedIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.current.UnlockedLetters)
}
