package domain_test

import (
	"slices"
	"testing"
	"time"

	alphabetdomain "hangul/internal/modules/alphabet/domain"
	"hangul/internal/modules/progress/domain"
)

func TestRecordScoreFirstCompletion(t *testing.T) {
	t.Parallel()
	catalog := loadCatalog(t)
	s := domain.DefaultSnapshot()
	s.RecordScore(1, 85, day0)
	granted := s.Derive(catalog, day0)

	if !s.IsCompleted(1) || s.BestScore(1) != 85 {
		t.Fatalf("expected letter 1 completed with 85, got %+v", s)
	}
	if s.ExerciseStats.TotalQuestions != 1 || s.ExerciseStats.CorrectAnswers != 1 {
		t.Fatalf("unexpected stats %+v", s.ExerciseStats)
	}
	if s.TotalScore != 85 || s.StreakCount != 1 {
		t.Fatalf("expected total 85 and streak 1, got %d / %d", s.TotalScore, s.StreakCount)
	}
	if len(granted) != 1 || granted[0].ID != "firstSteps" || !granted[0].UnlockedAt.Equal(day0) {
		t.Fatalf("expected firstSteps granted at %v, got %+v", day0, granted)
	}
}

func TestRecordScoreKeepsMaxAndRunningAverage(t *testing.T) {
	t.Parallel()
	s := domain.DefaultSnapshot()
	submitted := []int{40, 95, 60, 0, 77}
	for _, score := range submitted {
		s.RecordScore(3, score, day0)
	}
	if s.BestScore(3) != 95 {
		t.Fatalf("expected best 95, got %d", s.BestScore(3))
	}
	// (40+95+60+0+77)/5 = 54.4
	if s.ExerciseStats.AverageScore != 54 {
		t.Fatalf("expected running average 54, got %d", s.ExerciseStats.AverageScore)
	}
	if s.ExerciseStats.CorrectAnswers != 2 {
		t.Fatalf("expected 2 answers at or above 70, got %d", s.ExerciseStats.CorrectAnswers)
	}
	if s.TotalScore != 272 || s.ExerciseStats.TotalScore != 272 {
		t.Fatalf("expected totals of 272, got %d / %d", s.TotalScore, s.ExerciseStats.TotalScore)
	}
}

func TestRecordScoreZeroDoesNotLowerOrComplete(t *testing.T) {
	t.Parallel()
	s := domain.DefaultSnapshot()
	s.RecordScore(2, 0, day0)
	if _, ok := s.Scores[2]; !ok || s.BestScore(2) != 0 {
		t.Fatalf("zero must be recorded as the first score")
	}
	if s.IsCompleted(2) {
		t.Fatalf("zero must not complete a letter")
	}
	s.RecordScore(2, 100, day0)
	s.RecordScore(2, 0, day0)
	if s.BestScore(2) != 100 || s.Milestones.PerfectScores != 1 {
		t.Fatalf("expected best 100 with one perfect score, got %d / %d", s.BestScore(2), s.Milestones.PerfectScores)
	}
}

func TestDefaultSnapshotSeedsStarterSet(t *testing.T) {
	t.Parallel()
	s := domain.DefaultSnapshot()
	if !slices.Equal(s.UnlockedLetters, alphabetdomain.StarterLetterIDs) {
		t.Fatalf("unexpected starter set %v", s.UnlockedLetters)
	}
	if s.SchemaVersion != domain.SchemaVersion {
		t.Fatalf("default snapshot must carry the current schema version")
	}
	clone := s.Clone()
	clone.UnlockedLetters[0] = 99
	clone.Scores[1] = 50
	if s.UnlockedLetters[0] != 1 || len(s.Scores) != 0 {
		t.Fatalf("clone must not alias the original")
	}
}

func TestStreakFollowsPracticeDays(t *testing.T) {
	t.Parallel()
	s := domain.DefaultSnapshot()
	s.RecordPractice(day0)
	s.RecordPractice(day0.Add(3 * time.Hour))
	if s.StreakCount != 1 {
		t.Fatalf("same day must not advance the streak, got %d", s.StreakCount)
	}
	s.RecordPractice(day0.AddDate(0, 0, 1))
	s.RecordPractice(day0.AddDate(0, 0, 2))
	if s.StreakCount != 3 || s.BestStreak != 3 {
		t.Fatalf("expected streak 3, got %d (best %d)", s.StreakCount, s.BestStreak)
	}
	if got := s.EffectiveStreak(day0.AddDate(0, 0, 3)); got != 3 {
		t.Fatalf("streak must hold through the next day, got %d", got)
	}
	if got := s.EffectiveStreak(day0.AddDate(0, 0, 4)); got != 0 {
		t.Fatalf("streak must lapse after a missed day, got %d", got)
	}
	s.RecordPractice(day0.AddDate(0, 0, 5))
	if s.StreakCount != 1 || s.BestStreak != 3 {
		t.Fatalf("expected restart at 1 keeping best 3, got %d / %d", s.StreakCount, s.BestStreak)
	}
	s.ResetStreak()
	if s.StreakCount != 0 {
		t.Fatalf("reset must zero the streak")
	}
}

func TestMarkCompletedCountsPerDay(t *testing.T) {
	t.Parallel()
	s := domain.DefaultSnapshot()
	s.MarkCompleted(1, day0)
	s.MarkCompleted(2, day0)
	if s.MarkCompleted(2, day0) {
		t.Fatalf("second completion of the same letter must be ignored")
	}
	s.MarkCompleted(3, day0.AddDate(0, 0, 1))
	if s.Milestones.CompletedToday != 1 || s.Milestones.BestDay != 2 || s.Milestones.LettersCompleted != 3 {
		t.Fatalf("unexpected milestones %+v", s.Milestones)
	}
	if !s.MarkWordCompleted(4) || s.MarkWordCompleted(4) || !s.IsWordCompleted(4) {
		t.Fatalf("word completion must be recorded once")
	}
}
