package in

import (
	"context"

	"hangul/internal/modules/quiz/dto"
)

type Usecase interface {
	Kinds(ctx context.Context) ([]dto.KindOutput, error)
	Ask(ctx context.Context, input dto.AskInput) (dto.QuestionOutput, error)
	StartRun(ctx context.Context, kind string) (dto.RunOutput, error)
	Answer(ctx context.Context, answer string) (dto.AnswerOutput, error)
	Next(ctx context.Context) (dto.RunOutput, error)
	CurrentRun(ctx context.Context) (dto.RunOutput, error)
	Abandon(ctx context.Context) error
}
