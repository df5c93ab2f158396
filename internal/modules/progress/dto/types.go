package dto

import "time"

type ScoreInput struct {
	LetterID int
	Score    int
}

type StatsOutput struct {
	TotalQuestions   int
	CorrectAnswers   int
	TotalScore       int
	AverageScore     int
	StudyTimeMinutes int
}

type AchievementOutput struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Reward      string
	Unlocked    bool
	UnlockedAt  time.Time
}

type ProgressOutput struct {
	CompletedLetters []int
	UnlockedLetters  []int
	Scores           map[int]int
	CompletedWords   []int
	TotalScore       int
	Streak           int
	BestStreak       int
	LastPracticeAt   *time.Time
	Stats            StatsOutput
	Achievements     []AchievementOutput
	Degraded         bool
}

type ChangeOutput struct {
	Progress      ProgressOutput
	NewlyUnlocked []int
	Granted       []AchievementOutput
	Completed     bool
}

type LetterStatusOutput struct {
	LetterID  int
	Unlocked  bool
	Completed bool
	BestScore int
}

type MetricsOutput struct {
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

type RecommendationOutput struct {
	Icon        string
	Title       string
	Description string
	Reason      string
}

type ReportOutput struct {
	Path string
}
