package out

import (
	"context"

	alphabetdomain "hangul/internal/modules/alphabet/domain"
	alphabetin "hangul/internal/modules/alphabet/port/in"
	speechout "hangul/internal/modules/speech/port/out"
)

type CatalogTextSource struct {
	alphabet alphabetin.Usecase
}

func NewCatalogTextSource(alphabet alphabetin.Usecase) speechout.TextSource {
	return &CatalogTextSource{alphabet: alphabet}
}

func (c *CatalogTextSource) Letter(ctx context.Context, ref string) (alphabetdomain.Letter, error) {
	l, err := c.alphabet.GetLetter(ctx, ref)
	if err != nil {
		return alphabetdomain.Letter{}, err
	}
	return alphabetdomain.Letter{
		ID:           l.ID,
		Name:         l.Name,
		Glyph:        l.Glyph,
		Romanization: l.Romanization,
		EnglishSound: l.EnglishSound,
	}, nil
}

func (c *CatalogTextSource) Word(ctx context.Context, id int) (alphabetdomain.ExampleWord, error) {
	w, err := c.alphabet.GetWord(ctx, id)
	if err != nil {
		return alphabetdomain.ExampleWord{}, err
	}
	return alphabetdomain.ExampleWord{ID: w.ID, Korean: w.Korean, Romanization: w.Romanization, English: w.English}, nil
}
