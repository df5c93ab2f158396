package in

import (
	"context"

	"hangul/internal/modules/speech/dto"
)

type Usecase interface {
	Speak(ctx context.Context, input dto.SpeakInput) (dto.SpeakOutput, error)
	SpeakAsync(ctx context.Context, input dto.SpeakInput, done func(error)) (dto.SpeakOutput, error)
	Stop(ctx context.Context) error
}
