package in

import (
	"context"

	"hangul/internal/modules/speech/dto"
	speechin "hangul/internal/modules/speech/port/in"
)

type CLIHandler struct {
	usecase speechin.Usecase
}

func NewCLIHandler(usecase speechin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Speak(ctx context.Context, target, ref string) (dto.SpeakOutput, error) {
	return h.usecase.Speak(ctx, dto.SpeakInput{Target: target, Ref: ref})
}

func (h CLIHandler) SpeakAsync(ctx context.Context, target, ref string, done func(error)) (dto.SpeakOutput, error) {
	return h.usecase.SpeakAsync(ctx, dto.SpeakInput{Target: target, Ref: ref}, done)
}

func (h CLIHandler) Stop(ctx context.Context) error {
	return h.usecase.Stop(ctx)
}
