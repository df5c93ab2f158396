package in

import (
	"context"

	"hangul/internal/modules/wordbuilder/dto"
	wordbuilderin "hangul/internal/modules/wordbuilder/port/in"
)

type CLIHandler struct {
	usecase wordbuilderin.Usecase
}

func NewCLIHandler(usecase wordbuilderin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, wordID int) (dto.SessionOutput, error) {
	return h.usecase.Start(ctx, wordID)
}

func (h CLIHandler) Current(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) Select(ctx context.Context, glyph string) (dto.SessionOutput, error) {
	return h.usecase.Select(ctx, glyph)
}

func (h CLIHandler) ClearSelection(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.ClearSelection(ctx)
}

func (h CLIHandler) Build(ctx context.Context) (dto.BuildOutput, error) {
	return h.usecase.Build(ctx)
}

func (h CLIHandler) Place(ctx context.Context, text string) (dto.SessionOutput, error) {
	return h.usecase.Place(ctx, text)
}

// Remove takes a 1-based slot number as shown to the learner.
func (h CLIHandler) Remove(ctx context.Context, slot int) (dto.SessionOutput, error) {
	return h.usecase.Remove(ctx, slot-1)
}

func (h CLIHandler) Advance(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.Advance(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.Reset(ctx)
}

func (h CLIHandler) Hint(ctx context.Context) (string, error) {
	return h.usecase.Hint(ctx)
}

func (h CLIHandler) Complete(ctx context.Context) (dto.CompletionOutput, error) {
	return h.usecase.Complete(ctx)
}
