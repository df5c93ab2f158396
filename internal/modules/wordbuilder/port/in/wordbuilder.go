package in

import (
	"context"

	"hangul/internal/modules/wordbuilder/dto"
)

type Usecase interface {
	Start(ctx context.Context, wordID int) (dto.SessionOutput, error)
	Current(ctx context.Context) (dto.SessionOutput, error)
	Select(ctx context.Context, glyph string) (dto.SessionOutput, error)
	ClearSelection(ctx context.Context) (dto.SessionOutput, error)
	Build(ctx context.Context) (dto.BuildOutput, error)
	Place(ctx context.Context, text string) (dto.SessionOutput, error)
	Remove(ctx context.Context, slot int) (dto.SessionOutput, error)
	Advance(ctx context.Context) (dto.SessionOutput, error)
	Reset(ctx context.Context) (dto.SessionOutput, error)
	Hint(ctx context.Context) (string, error)
	Complete(ctx context.Context) (dto.CompletionOutput, error)
}
