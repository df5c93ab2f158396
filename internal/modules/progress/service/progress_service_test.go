package service_test

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	alphabetout "hangul/internal/modules/alphabet/adapter/out"
	alphabetdomain "hangul/internal/modules/alphabet/domain"
	alphabetservice "hangul/internal/modules/alphabet/service"
	progressout "hangul/internal/modules/progress/adapter/out"
	"hangul/internal/modules/progress/domain"
	"hangul/internal/modules/progress/service"
	apperrors "hangul/internal/platform/errors"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type brokenStore struct {
	loadErr error
	saveErr error
	saves   int
	stored  domain.Snapshot
}

func (b *brokenStore) Load(context.Context) (domain.Snapshot, error) {
	if b.loadErr != nil {
		return domain.Snapshot{}, b.loadErr
	}
	return b.stored, nil
}

func (b *brokenStore) Save(context.Context, domain.Snapshot) error {
	b.saves++
	return b.saveErr
}

func catalog(t *testing.T) *alphabetdomain.Catalog {
	t.Helper()
	svc, err := alphabetservice.NewCatalogService(context.Background(), alphabetout.NewEmbeddedCatalogSource())
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return svc.Catalog()
}

func newService(t *testing.T) (*service.ProgressService, *fakeClock) {
	t.Helper()
	clk := &fakeClock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	return service.NewProgressService(context.Background(), clk, progressout.NewMemorySnapshotStore(), catalog(t), nil), clk
}

func TestUpdateScoreCompletesAndPersists(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := progressout.NewMemorySnapshotStore()
	clk := &fakeClock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	svc := service.NewProgressService(ctx, clk, store, catalog(t), nil)

	change, err := svc.UpdateScore(ctx, 1, 85)
	if err != nil {
		t.Fatalf("update score: %v", err)
	}
	if !change.Completed || len(change.Granted) != 1 || change.Granted[0].ID != "firstSteps" {
		t.Fatalf("unexpected change %+v", change)
	}
	snap := svc.Snapshot()
	if !snap.IsCompleted(1) || snap.BestScore(1) != 85 || snap.ExerciseStats.TotalQuestions != 1 || snap.ExerciseStats.CorrectAnswers != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}

	reloaded := service.NewProgressService(ctx, clk, store, catalog(t), nil)
	if got := reloaded.Snapshot(); got.BestScore(1) != 85 || !got.HasAchievement("firstSteps") {
		t.Fatalf("expected persisted snapshot, got %+v", got)
	}
}

func TestUpdateScoreRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()
	cases := []struct {
		letter, score int
	}{{1, 101}, {1, -5}, {99, 50}, {6, 90}}
	for _, tc := range cases {
		if _, err := svc.UpdateScore(ctx, tc.letter, tc.score); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("expected invalid input for %+v, got %v", tc, err)
		}
	}
	if got := svc.Snapshot(); got.ExerciseStats.TotalQuestions != 0 || len(got.Scores) != 0 {
		t.Fatalf("rejected updates must not change state, got %+v", got)
	}
}

func TestStarterTierAboveAverageUnlocksNextTier(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()
	newly := []int{}
	for _, id := range alphabetdomain.StarterLetterIDs {
		change, err := svc.UpdateScore(ctx, id, 80)
		if err != nil {
			t.Fatalf("update score %d: %v", id, err)
		}
		newly = append(newly, change.NewlyUnlocked...)
	}
	tier2 := catalog(t).IDsAtLevel(2)
	if !slices.Equal(newly, tier2) {
		t.Fatalf("expected tier 2 %v newly unlocked exactly once, got %v", tier2, newly)
	}
	for _, id := range tier2 {
		if !svc.Snapshot().IsUnlocked(id) {
			t.Fatalf("letter %d should be unlocked", id)
		}
	}
	if svc.Metrics().CurrentLevel != 2 {
		t.Fatalf("expected level 2, got %d", svc.Metrics().CurrentLevel)
	}
	if len(svc.AvailableLetters()) != 15 {
		t.Fatalf("expected 15 available letters, got %d", len(svc.AvailableLetters()))
	}
}

func TestScoresAndUnlocksNeverShrink(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()
	prevUnlocked := svc.Snapshot().UnlockedLetters
	seq := []struct{ id, score int }{{1, 90}, {1, 20}, {2, 100}, {15, 75}, {2, 0}, {3, 85}, {4, 95}, {5, 88}, {16, 72}, {17, 99}, {18, 81}, {19, 77}, {1, 10}}
	best := map[int]int{}
	for _, step := range seq {
		if _, err := svc.UpdateScore(ctx, step.id, step.score); err != nil {
			t.Fatalf("update %+v: %v", step, err)
		}
		best[step.id] = max(best[step.id], step.score)
		snap := svc.Snapshot()
		for _, id := range prevUnlocked {
			if !snap.IsUnlocked(id) {
				t.Fatalf("letter %d was locked again", id)
			}
		}
		prevUnlocked = snap.UnlockedLetters
		for id, want := range best {
			if snap.BestScore(id) != want {
				t.Fatalf("letter %d: expected best %d, got %d", id, want, snap.BestScore(id))
			}
		}
	}
	sum := 0
	for _, step := range seq {
		sum += step.score
	}
	want := int(float64(sum)/float64(len(seq)) + 0.5)
	if got := svc.Snapshot().ExerciseStats.AverageScore; got != want {
		t.Fatalf("expected running average %d, got %d", want, got)
	}
}

func TestStorageFailureDegradesToMemory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clk := &fakeClock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	store := &brokenStore{loadErr: apperrors.ErrNotFound, saveErr: apperrors.ErrStorageUnavailable}
	svc := service.NewProgressService(ctx, clk, store, catalog(t), nil)
	if svc.Degraded() {
		t.Fatalf("empty storage is not a failure")
	}
	if _, err := svc.UpdateScore(ctx, 2, 90); err != nil {
		t.Fatalf("update must succeed in memory: %v", err)
	}
	if !svc.Degraded() {
		t.Fatalf("expected degraded after failed save")
	}
	if _, err := svc.UpdateScore(ctx, 3, 90); err != nil {
		t.Fatalf("second update: %v", err)
	}
	if store.saves != 1 {
		t.Fatalf("degraded service must stop writing, got %d saves", store.saves)
	}
	if got := svc.Snapshot(); !got.IsCompleted(2) || !got.IsCompleted(3) {
		t.Fatalf("in-memory state lost: %+v", got)
	}
}

func TestUnreadableStorageStartsFresh(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clk := &fakeClock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	for _, store := range []*brokenStore{
		{loadErr: apperrors.ErrStorageUnavailable},
		{stored: domain.Snapshot{SchemaVersion: domain.SchemaVersion + 1}},
	} {
		svc := service.NewProgressService(ctx, clk, store, catalog(t), nil)
		if !svc.Degraded() {
			t.Fatalf("expected degraded service")
		}
		if got := svc.Snapshot(); !slices.Equal(got.UnlockedLetters, alphabetdomain.StarterLetterIDs) {
			t.Fatalf("expected default snapshot, got %+v", got)
		}
	}
}

func TestResetAllRestoresDefaults(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()
	for _, id := range alphabetdomain.StarterLetterIDs {
		if _, err := svc.UpdateScore(ctx, id, 100); err != nil {
			t.Fatalf("update: %v", err)
		}
	}
	if len(svc.Snapshot().UnlockedLetters) == 10 {
		t.Fatalf("expected unlocks before reset")
	}
	fresh := svc.ResetAll(ctx)
	if !slices.Equal(fresh.UnlockedLetters, alphabetdomain.StarterLetterIDs) || len(fresh.Achievements) != 0 || fresh.TotalScore != 0 {
		t.Fatalf("unexpected reset snapshot %+v", fresh)
	}
}

func TestStudyTimeStreakAndManualAchievements(t *testing.T) {
	t.Parallel()
	svc, clk := newService(t)
	ctx := context.Background()

	if _, err := svc.RecordStudyTime(ctx, -1); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	change, err := svc.RecordStudyTime(ctx, 60)
	if err != nil {
		t.Fatalf("record study time: %v", err)
	}
	if len(change.Granted) != 1 || change.Granted[0].ID != "dedicated" {
		t.Fatalf("expected dedicated, got %+v", change.Granted)
	}

	for range 9 {
		if _, err := svc.IncrementStreak(ctx); err != nil {
			t.Fatalf("increment streak: %v", err)
		}
		clk.now = clk.now.Add(24 * time.Hour)
	}
	change, err = svc.IncrementStreak(ctx)
	if err != nil {
		t.Fatalf("increment streak: %v", err)
	}
	if len(change.Granted) != 1 || change.Granted[0].ID != "streakMaster" || !change.Granted[0].UnlockedAt.Equal(clk.now) {
		t.Fatalf("expected streakMaster, got %+v", change.Granted)
	}
	if _, err := svc.ResetStreak(ctx); err != nil {
		t.Fatalf("reset streak: %v", err)
	}
	snap := svc.Snapshot()
	if snap.StreakCount != 0 || snap.BestStreak != 10 || !snap.HasAchievement("streakMaster") {
		t.Fatalf("achievements must survive a streak reset, got %+v", snap)
	}

	if _, err := svc.AddAchievement(ctx, "unknown"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := svc.AddAchievement(ctx, "perfectionist"); err != nil {
		t.Fatalf("add achievement: %v", err)
	}
	if _, err := svc.AddAchievement(ctx, "perfectionist"); err != nil {
		t.Fatalf("add achievement twice: %v", err)
	}
	count := 0
	for _, a := range svc.Snapshot().Achievements {
		if a.ID == "perfectionist" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected perfectionist once, got %d", count)
	}
}

func TestSpeedLearnerNeedsTenLettersInOneDay(t *testing.T) {
	t.Parallel()
	svc, clk := newService(t)
	ctx := context.Background()
	for i, id := range alphabetdomain.StarterLetterIDs {
		if i == 5 {
			clk.now = clk.now.AddDate(0, 0, 1)
		}
		if _, err := svc.MarkLetterCompleted(ctx, id); err != nil {
			t.Fatalf("complete %d: %v", id, err)
		}
	}
	if svc.Snapshot().HasAchievement("speedLearner") {
		t.Fatalf("completions split over two days must not grant speedLearner")
	}
	if _, err := svc.MarkLetterCompleted(ctx, 6); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("locked letter must be rejected, got %v", err)
	}
}

func TestMarkWordCompletedAndRecommendations(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	recs := svc.Recommendations()
	if len(recs) != 3 || recs[0].Title != "Complete Current Level" || recs[1].Title != "Build Strong Foundations" || recs[2].Title != "Build Your Streak" {
		t.Fatalf("unexpected fresh recommendations %+v", recs)
	}

	change, err := svc.MarkWordCompleted(ctx, 1)
	if err != nil {
		t.Fatalf("mark word completed: %v", err)
	}
	if !change.Completed || !change.Snapshot.IsWordCompleted(1) {
		t.Fatalf("unexpected change %+v", change)
	}
	if _, err := svc.MarkWordCompleted(ctx, 77); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if svc.Metrics().CompletedWords != 1 {
		t.Fatalf("expected one completed word")
	}
}

func TestCheckInAfterLapsedStreakStartsOver(t *testing.T) {
	t.Parallel()
	svc, clk := newService(t)
	ctx := context.Background()

	if _, err := svc.UpdateScore(ctx, 1, 50); err != nil {
		t.Fatalf("update score: %v", err)
	}
	clk.now = clk.now.Add(72 * time.Hour)
	if got := svc.Snapshot().StreakCount; got != 0 {
		t.Fatalf("expected lapsed streak, got %d", got)
	}

	change, err := svc.IncrementStreak(ctx)
	if err != nil {
		t.Fatalf("increment streak: %v", err)
	}
	if change.Snapshot.StreakCount != 1 {
		t.Fatalf("expected streak to restart at 1, got %d", change.Snapshot.StreakCount)
	}
	if got := svc.Snapshot().StreakCount; got != 1 {
		t.Fatalf("expected snapshot to agree with the change, got %d", got)
	}
	if got := svc.Metrics().Streak; got != 1 {
		t.Fatalf("expected metrics to agree with the change, got %d", got)
	}

	change, err = svc.IncrementStreak(ctx)
	if err != nil {
		t.Fatalf("second check-in: %v", err)
	}
	if change.Snapshot.StreakCount != 1 {
		t.Fatalf("expected same-day check-in to keep the streak, got %d", change.Snapshot.StreakCount)
	}

	clk.now = clk.now.Add(24 * time.Hour)
	change, err = svc.IncrementStreak(ctx)
	if err != nil {
		t.Fatalf("next-day check-in: %v", err)
	}
	if change.Snapshot.StreakCount != 2 || svc.Snapshot().BestStreak != 2 {
		t.Fatalf("expected next-day check-in to extend to 2, got %+v", change.Snapshot)
	}
}
