package in

import (
	"context"

	"hangul/internal/modules/alphabet/dto"
	alphabetin "hangul/internal/modules/alphabet/port/in"
)

type CLIHandler struct {
	usecase alphabetin.Usecase
}

func NewCLIHandler(usecase alphabetin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListLetters(ctx context.Context, category string, level int) ([]dto.LetterOutput, error) {
	return h.usecase.ListLetters(ctx, dto.LetterFilter{Category: category, Level: level})
}

func (h CLIHandler) GetLetter(ctx context.Context, ref string) (dto.LetterOutput, error) {
	return h.usecase.GetLetter(ctx, ref)
}

func (h CLIHandler) ListWords(ctx context.Context) ([]dto.WordOutput, error) {
	return h.usecase.ListWords(ctx)
}

func (h CLIHandler) GetWord(ctx context.Context, id int) (dto.WordOutput, error) {
	return h.usecase.GetWord(ctx, id)
}
