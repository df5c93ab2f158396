package domain

import (
	"fmt"
	"strings"
	"time"

	alphabetdomain "hangul/internal/modules/alphabet/domain"
)

type Metrics struct {
	TotalLetters       int
	UnlockedLetters    int
	CompletedLetters   int
	LockedLetters      int
	CompletedWords     int
	TotalScore         int
	AverageScore       int
	UnlockProgress     int
	CompletionProgress int
	CurrentLevel       int
	Streak             int
	BestStreak         int
}

func ComputeMetrics(s Snapshot, tiers Tiers, totalLetters int, now time.Time) Metrics {
	m := Metrics{
		TotalLetters:     totalLetters,
		UnlockedLetters:  len(s.UnlockedLetters),
		CompletedLetters: len(s.CompletedLetters),
		LockedLetters:    max(0, totalLetters-len(s.UnlockedLetters)),
		CompletedWords:   len(s.CompletedWords),
		TotalScore:       s.TotalScore,
		AverageScore:     s.AverageBestScore(),
		CurrentLevel:     CurrentLevel(s.UnlockedLetters, tiers),
		Streak:           s.EffectiveStreak(now),
		BestStreak:       s.BestStreak,
	}
	if totalLetters > 0 {
		m.UnlockProgress = roundDiv(100*m.UnlockedLetters, totalLetters)
		m.CompletionProgress = roundDiv(100*m.CompletedLetters, totalLetters)
	}
	return m
}

type Recommendation struct {
	Icon        string
	Title       string
	Description string
	Reason      string
}

const maxRecommendations = 3

// Recommend suggests up to three next steps. levelLetters are the unlocked
// letters of the current level in catalog order.
func Recommend(s Snapshot, m Metrics, levelLetters []alphabetdomain.Letter) []Recommendation {
	recs := []Recommendation{}

	names := []string{}
	for _, l := range levelLetters {
		if !s.IsCompleted(l.ID) {
			names = append(names, l.Name)
		}
	}
	if len(names) > 0 {
		goal := fmt.Sprintf("unlock Level %d", m.CurrentLevel+1)
		if m.CurrentLevel >= alphabetdomain.MaxDifficulty {
			goal = "master the whole alphabet"
		}
		recs = append(recs, Recommendation{
			Icon:        "🎯",
			Title:       "Complete Current Level",
			Description: fmt.Sprintf("Practice %d remaining Level %d letters", len(names), m.CurrentLevel),
			Reason:      fmt.Sprintf("Finish %s to %s", strings.Join(names, ", "), goal),
		})
	}

	switch {
	case m.AverageScore < 70:
		recs = append(recs, Recommendation{
			Icon:        "📝",
			Title:       "Build Strong Foundations",
			Description: "Focus on Multiple Choice and Letter Matching exercises",
			Reason:      "Strengthen your basics before advancing to harder content",
		})
	case m.AverageScore > 85:
		recs = append(recs, Recommendation{
			Icon:        "⚡",
			Title:       "Challenge Yourself",
			Description: "Try Sound Association and Word Association exercises",
			Reason:      "You're ready for more advanced pronunciation practice",
		})
	}

	if m.Streak < 5 {
		recs = append(recs, Recommendation{
			Icon:        "🔥",
			Title:       "Build Your Streak",
			Description: "Practice daily to build momentum",
			Reason:      "Consistent practice leads to better retention and unlocks streak achievements",
		})
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
