package out

import (
	"context"

	"hangul/internal/modules/progress/dto"
	progressin "hangul/internal/modules/progress/port/in"
	quizout "hangul/internal/modules/quiz/port/out"
)

type ProgressAdapter struct {
	progress progressin.Usecase
}

func NewProgressAdapter(progress progressin.Usecase) quizout.ProgressPort {
	return &ProgressAdapter{progress: progress}
}

func (a *ProgressAdapter) AvailableLetterIDs(ctx context.Context) ([]int, error) {
	return a.progress.AvailableLetterIDs(ctx)
}

func (a *ProgressAdapter) RecordAnswer(ctx context.Context, letterID, score int) (quizout.Outcome, error) {
	change, err := a.progress.UpdateScore(ctx, dto.ScoreInput{LetterID: letterID, Score: score})
	if err != nil {
		return quizout.Outcome{}, err
	}
	outcome := quizout.Outcome{NewlyUnlocked: change.NewlyUnlocked, Completed: change.Completed}
	for _, g := range change.Granted {
		outcome.Granted = append(outcome.Granted, g.Name)
	}
	return outcome, nil
}

func (a *ProgressAdapter) RecordStudyTime(ctx context.Context, minutes int) error {
	_, err := a.progress.RecordStudyTime(ctx, minutes)
	return err
}
