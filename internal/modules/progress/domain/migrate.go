package domain

import (
	"fmt"
	"slices"

	alphabetdomain "hangul/internal/modules/alphabet/domain"
)

// Migrate upgrades a decoded snapshot to SchemaVersion and repairs its set
// invariants. Snapshots written by a newer schema are refused.
func Migrate(s Snapshot) (Snapshot, error) {
	if s.SchemaVersion > SchemaVersion {
		return Snapshot{}, fmt.Errorf("snapshot schema %d is newer than supported %d", s.SchemaVersion, SchemaVersion)
	}
	out := s.Clone()
	if out.CompletedLetters == nil {
		out.CompletedLetters = []int{}
	}
	if out.Achievements == nil {
		out.Achievements = []UnlockedAchievement{}
	}
	if out.CompletedWords == nil {
		out.CompletedWords = []int{}
	}
	out.CompletedLetters = slices.Compact(slices.Sorted(slices.Values(out.CompletedLetters)))
	out.CompletedWords = slices.Compact(slices.Sorted(slices.Values(out.CompletedWords)))
	out.UnlockedLetters = slices.Sorted(slices.Values(out.UnlockedLetters))
	for _, id := range alphabetdomain.StarterLetterIDs {
		out.UnlockedLetters, _ = insertSorted(out.UnlockedLetters, id)
	}
	out.UnlockedLetters = slices.Compact(out.UnlockedLetters)

	seen := map[string]bool{}
	achieved := out.Achievements[:0]
	for _, a := range out.Achievements {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		achieved = append(achieved, a)
	}
	out.Achievements = achieved

	out.BestStreak = max(out.BestStreak, out.StreakCount)
	if out.Milestones.LettersCompleted < len(out.CompletedLetters) {
		out.Milestones.LettersCompleted = len(out.CompletedLetters)
	}
	out.SchemaVersion = SchemaVersion
	return out, nil
}
