package in

import (
	"context"

	"hangul/internal/modules/alphabet/dto"
)

type Usecase interface {
	ListLetters(ctx context.Context, filter dto.LetterFilter) ([]dto.LetterOutput, error)
	GetLetter(ctx context.Context, ref string) (dto.LetterOutput, error)
	ListWords(ctx context.Context) ([]dto.WordOutput, error)
	GetWord(ctx context.Context, id int) (dto.WordOutput, error)
}
