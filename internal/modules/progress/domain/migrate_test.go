package domain_test

import (
	"slices"
	"testing"

	"hangul/internal/modules/progress/domain"
)

func TestMigrateSeedsLegacySnapshot(t *testing.T) {
	t.Parallel()
	legacy := domain.Snapshot{
		CompletedLetters: []int{3, 1, 3},
		UnlockedLetters:  []int{6, 1},
		StreakCount:      4,
		Achievements:     []domain.UnlockedAchievement{{ID: "firstSteps"}, {ID: "firstSteps"}},
	}
	got, err := domain.Migrate(legacy)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if got.SchemaVersion != domain.SchemaVersion {
		t.Fatalf("expected schema %d, got %d", domain.SchemaVersion, got.SchemaVersion)
	}
	if !slices.Equal(got.CompletedLetters, []int{1, 3}) {
		t.Fatalf("unexpected completed %v", got.CompletedLetters)
	}
	if !slices.Equal(got.UnlockedLetters, []int{1, 2, 3, 4, 5, 6, 15, 16, 17, 18, 19}) {
		t.Fatalf("starter set must be restored, got %v", got.UnlockedLetters)
	}
	if got.Scores == nil || got.CompletedWords == nil {
		t.Fatalf("nil collections must be seeded")
	}
	if len(got.Achievements) != 1 || got.BestStreak != 4 || got.Milestones.LettersCompleted != 2 {
		t.Fatalf("unexpected repaired snapshot %+v", got)
	}
}

func TestMigrateRefusesNewerSchema(t *testing.T) {
	t.Parallel()
	if _, err := domain.Migrate(domain.Snapshot{SchemaVersion: domain.SchemaVersion + 1}); err == nil {
		t.Fatalf("expected newer schema to be refused")
	}
}
