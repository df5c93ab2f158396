package domain

import "time"

type LetterProgress struct {
	ID        int
	Glyph     string
	Name      string
	Level     int
	BestScore int
	Unlocked  bool
	Completed bool
}

type AchievementStatus struct {
	Achievement
	Unlocked   bool
	UnlockedAt time.Time
}

// Report is the exported learner summary.
type Report struct {
	Profile         string
	GeneratedAt     time.Time
	Metrics         Metrics
	Stats           ExerciseStats
	Letters         []LetterProgress
	Achievements    []AchievementStatus
	Recommendations []Recommendation
}

// Change describes the outcome of one mutation.
type Change struct {
	Snapshot      Snapshot
	NewlyUnlocked []int
	Granted       []UnlockedAchievement
	Completed     bool
}

// AchievementStatuses pairs every achievement with its grant, in evaluation order.
func AchievementStatuses(s Snapshot) []AchievementStatus {
	out := make([]AchievementStatus, 0, len(achievements))
	for _, a := range achievements {
		status := AchievementStatus{Achievement: a}
		for _, u := range s.Achievements {
			if u.ID == a.ID {
				status.Unlocked = true
				status.UnlockedAt = u.UnlockedAt
				break
			}
		}
		out = append(out, status)
	}
	return out
}
