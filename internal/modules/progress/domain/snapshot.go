package domain

import (
	"maps"
	"slices"
	"time"

	alphabetdomain "hangul/internal/modules/alphabet/domain"
)

const (
	SchemaVersion = 1
	StorageKey    = "korean-alphabet-progress"
)

const (
	MaxScore            = 100
	CorrectThreshold    = 70
	CompletionThreshold = 80
)

type ExerciseStats struct {
	TotalQuestions   int `json:"total_questions"`
	CorrectAnswers   int `json:"correct_answers"`
	TotalScore       int `json:"total_score"`
	AverageScore     int `json:"average_score"`
	StudyTimeMinutes int `json:"study_time_minutes"`
}

// Milestones.CompletedToday counts letters completed on Day (YYYY-MM-DD);
// BestDay keeps the highest such count.
type Milestones struct {
	LettersCompleted int    `json:"letters_completed"`
	PerfectScores    int    `json:"perfect_scores"`
	CompletedToday   int    `json:"completed_today"`
	Day              string `json:"day,omitempty"`
	BestDay          int    `json:"best_day"`
	WordsCompleted   int    `json:"words_completed"`
}

type UnlockedAchievement struct {
	ID         string    `json:"id"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// Snapshot is the whole persisted learner state. Id sets are kept sorted.
type Snapshot struct {
	SchemaVersion    int                   `json:"schema_version"`
	CompletedLetters []int                 `json:"completed_letters"`
	Scores           map[int]int           `json:"scores"`
	UnlockedLetters  []int                 `json:"unlocked_letters"`
	TotalScore       int                   `json:"total_score"`
	StreakCount      int                   `json:"streak_count"`
	BestStreak       int                   `json:"best_streak"`
	LastPracticeAt   *time.Time            `json:"last_practice_at,omitempty"`
	Achievements     []UnlockedAchievement `json:"achievements"`
	ExerciseStats    ExerciseStats         `json:"exercise_stats"`
	Milestones       Milestones            `json:"milestones"`
	CompletedWords   []int                 `json:"completed_words"`
}

func DefaultSnapshot() Snapshot {
	return Snapshot{
		SchemaVersion:    SchemaVersion,
		CompletedLetters: []int{},
		Scores:           map[int]int{},
		UnlockedLetters:  slices.Sorted(slices.Values(alphabetdomain.StarterLetterIDs)),
		Achievements:     []UnlockedAchievement{},
		CompletedWords:   []int{},
	}
}

// Clone deep-copies so mutations never alias a published snapshot.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.CompletedLetters = slices.Clone(s.CompletedLetters)
	out.UnlockedLetters = slices.Clone(s.UnlockedLetters)
	out.Achievements = slices.Clone(s.Achievements)
	out.CompletedWords = slices.Clone(s.CompletedWords)
	out.Scores = maps.Clone(s.Scores)
	if out.Scores == nil {
		out.Scores = map[int]int{}
	}
	if s.LastPracticeAt != nil {
		t := *s.LastPracticeAt
		out.LastPracticeAt = &t
	}
	return out
}

func (s Snapshot) IsUnlocked(id int) bool {
	_, ok := slices.BinarySearch(s.UnlockedLetters, id)
	return ok
}

func (s Snapshot) IsCompleted(id int) bool {
	_, ok := slices.BinarySearch(s.CompletedLetters, id)
	return ok
}

func (s Snapshot) IsWordCompleted(id int) bool {
	_, ok := slices.BinarySearch(s.CompletedWords, id)
	return ok
}

func (s Snapshot) BestScore(id int) int {
	return s.Scores[id]
}

func (s Snapshot) HasAchievement(id string) bool {
	return slices.ContainsFunc(s.Achievements, func(a UnlockedAchievement) bool { return a.ID == id })
}

// AverageBestScore is the rounded mean of best scores over letters that have one.
func (s Snapshot) AverageBestScore() int {
	if len(s.Scores) == 0 {
		return 0
	}
	sum := 0
	for _, v := range s.Scores {
		sum += v
	}
	return roundDiv(sum, len(s.Scores))
}

// insertSorted adds id to a sorted set, reporting whether it was new.
func insertSorted(ids []int, id int) ([]int, bool) {
	i, found := slices.BinarySearch(ids, id)
	if found {
		return ids, false
	}
	return slices.Insert(ids, i, id), true
}

func roundDiv(sum, n int) int {
	if n == 0 {
		return 0
	}
	q := float64(sum) / float64(n)
	return int(q + 0.5)
}
