package domain

import (
	"slices"
	"time"
)

type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Reward      string
	qualifies   func(Snapshot) bool
}

func completedAll(ids ...int) func(Snapshot) bool {
	return func(s Snapshot) bool {
		for _, id := range ids {
			if !s.IsCompleted(id) {
				return false
			}
		}
		return true
	}
}

func completedAtLeast(n int) func(Snapshot) bool {
	return func(s Snapshot) bool { return len(s.CompletedLetters) >= n }
}

// achievements is evaluated in declaration order.
var achievements = []Achievement{
	{ID: "firstSteps", Name: "First Steps", Description: "Complete your first Korean letter", Icon: "🎯", Reward: "Unlocks letter practice", qualifies: completedAtLeast(1)},
	{ID: "basicConsonants", Name: "Basic Consonants", Description: "Complete first 5 consonants", Icon: "🔤", Reward: "Unlocks basic vowels", qualifies: completedAll(1, 2, 3, 4, 5)},
	{ID: "basicVowels", Name: "Basic Vowels", Description: "Complete first 5 vowels", Icon: "📝", Reward: "Unlocks compound vowels", qualifies: completedAll(15, 16, 17, 18, 19)},
	{ID: "koreanScholar", Name: "Korean Scholar", Description: "Complete 12 letters", Icon: "🎓", Reward: "Unlocks advanced exercises", qualifies: completedAtLeast(12)},
	{ID: "hangulMaster", Name: "Hangul Master", Description: "Complete all 24 letters", Icon: "👑", Reward: "Complete alphabet mastery", qualifies: completedAtLeast(24)},
	{ID: "perfectionist", Name: "Perfectionist", Description: "Get 100% on an exercise", Icon: "💎", Reward: "Shows exceptional understanding", qualifies: func(s Snapshot) bool {
		for _, v := range s.Scores {
			if v >= MaxScore {
				return true
			}
		}
		return false
	}},
	{ID: "streakMaster", Name: "Streak Master", Description: "Achieve a 10-day streak", Icon: "🔥", Reward: "Consistent dedication", qualifies: func(s Snapshot) bool { return s.StreakCount >= 10 }},
	{ID: "speedLearner", Name: "Speed Learner", Description: "Complete 10 letters in one day", Icon: "⚡", Reward: "Rapid progress recognition", qualifies: func(s Snapshot) bool { return s.Milestones.BestDay >= 10 }},
	{ID: "dedicated", Name: "Dedicated Student", Description: "Study for 60 minutes total", Icon: "📚", Reward: "Commitment to learning", qualifies: func(s Snapshot) bool { return s.ExerciseStats.StudyTimeMinutes >= 60 }},
}

// Achievements lists every achievement in evaluation order.
func Achievements() []Achievement {
	return slices.Clone(achievements)
}

func FindAchievement(id string) (Achievement, bool) {
	for _, a := range achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// Qualifies reports whether the snapshot meets the achievement requirement.
func (a Achievement) Qualifies(s Snapshot) bool {
	return a.qualifies != nil && a.qualifies(s)
}

// CheckAchievements returns the not yet granted achievements the snapshot qualifies for, stamped with now.
func CheckAchievements(s Snapshot, now time.Time) []UnlockedAchievement {
	granted := []UnlockedAchievement{}
	for _, a := range achievements {
		if s.HasAchievement(a.ID) || !a.Qualifies(s) {
			continue
		}
		granted = append(granted, UnlockedAchievement{ID: a.ID, UnlockedAt: now})
	}
	return granted
}

// LockedAchievements returns the achievements not yet granted, in evaluation order.
func LockedAchievements(s Snapshot) []Achievement {
	locked := []Achievement{}
	for _, a := range achievements {
		if !s.HasAchievement(a.ID) {
			locked = append(locked, a)
		}
	}
	return locked
}
