package out

import (
	"context"

	"hangul/internal/modules/alphabet/domain"
)

type CatalogSource interface {
	Load(ctx context.Context) ([]domain.Letter, []domain.ExampleWord, error)
}
