package in

import (
	"context"

	"hangul/internal/modules/progress/dto"
)

type Usecase interface {
	UpdateScore(ctx context.Context, input dto.ScoreInput) (dto.ChangeOutput, error)
	MarkLetterCompleted(ctx context.Context, letterID int) (dto.ChangeOutput, error)
	MarkWordCompleted(ctx context.Context, wordID int) (dto.ChangeOutput, error)
	IncrementStreak(ctx context.Context) (dto.ChangeOutput, error)
	ResetStreak(ctx context.Context) (dto.ChangeOutput, error)
	AddAchievement(ctx context.Context, achievementID string) (dto.ChangeOutput, error)
	RecordStudyTime(ctx context.Context, minutes int) (dto.ChangeOutput, error)
	ResetAll(ctx context.Context) (dto.ProgressOutput, error)

	GetProgress(ctx context.Context) (dto.ProgressOutput, error)
	LetterStatus(ctx context.Context, letterID int) (dto.LetterStatusOutput, error)
	AvailableLetterIDs(ctx context.Context) ([]int, error)
	Metrics(ctx context.Context) (dto.MetricsOutput, error)
	Achievements(ctx context.Context) ([]dto.AchievementOutput, error)
	Recommendations(ctx context.Context) ([]dto.RecommendationOutput, error)
	ExportReport(ctx context.Context) (dto.ReportOutput, error)
}
