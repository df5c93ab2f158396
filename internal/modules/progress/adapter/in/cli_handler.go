package in

import (
	"context"

	"hangul/internal/modules/progress/dto"
	progressin "hangul/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) UpdateScore(ctx context.Context, letterID, score int) (dto.ChangeOutput, error) {
	return h.usecase.UpdateScore(ctx, dto.ScoreInput{LetterID: letterID, Score: score})
}

func (h CLIHandler) MarkLetterCompleted(ctx context.Context, letterID int) (dto.ChangeOutput, error) {
	return h.usecase.MarkLetterCompleted(ctx, letterID)
}

func (h CLIHandler) IncrementStreak(ctx context.Context) (dto.ChangeOutput, error) {
	return h.usecase.IncrementStreak(ctx)
}

func (h CLIHandler) ResetStreak(ctx context.Context) (dto.ChangeOutput, error) {
	return h.usecase.ResetStreak(ctx)
}

func (h CLIHandler) AddAchievement(ctx context.Context, id string) (dto.ChangeOutput, error) {
	return h.usecase.AddAchievement(ctx, id)
}

func (h CLIHandler) RecordStudyTime(ctx context.Context, minutes int) (dto.ChangeOutput, error) {
	return h.usecase.RecordStudyTime(ctx, minutes)
}

func (h CLIHandler) ResetAll(ctx context.Context) (dto.ProgressOutput, error) {
	return h.usecase.ResetAll(ctx)
}

func (h CLIHandler) GetProgress(ctx context.Context) (dto.ProgressOutput, error) {
	return h.usecase.GetProgress(ctx)
}

func (h CLIHandler) LetterStatus(ctx context.Context, letterID int) (dto.LetterStatusOutput, error) {
	return h.usecase.LetterStatus(ctx, letterID)
}

func (h CLIHandler) Metrics(ctx context.Context) (dto.MetricsOutput, error) {
	return h.usecase.Metrics(ctx)
}

func (h CLIHandler) Achievements(ctx context.Context) ([]dto.AchievementOutput, error) {
	return h.usecase.Achievements(ctx)
}

func (h CLIHandler) Recommendations(ctx context.Context) ([]dto.RecommendationOutput, error) {
	return h.usecase.Recommendations(ctx)
}

func (h CLIHandler) ExportReport(ctx context.Context) (dto.ReportOutput, error) {
	return h.usecase.ExportReport(ctx)
}
