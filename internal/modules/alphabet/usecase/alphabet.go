package usecase

import (
	"context"

	"hangul/internal/modules/alphabet/domain"
	"hangul/internal/modules/alphabet/dto"
	alphabetin "hangul/internal/modules/alphabet/port/in"
	"hangul/internal/modules/alphabet/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) alphabetin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListLetters(_ context.Context, filter dto.LetterFilter) ([]dto.LetterOutput, error) {
	letters, err := i.svc.Letters(filter.Category, filter.Level)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LetterOutput, 0, len(letters))
	for _, l := range letters {
		out = append(out, toLetterOutput(l))
	}
	return out, nil
}

func (i *Interactor) GetLetter(_ context.Context, ref string) (dto.LetterOutput, error) {
	l, err := i.svc.Resolve(ref)
	if err != nil {
		return dto.LetterOutput{}, err
	}
	return toLetterOutput(l), nil
}

func (i *Interactor) ListWords(_ context.Context) ([]dto.WordOutput, error) {
	words := i.svc.Catalog().Words()
	out := make([]dto.WordOutput, 0, len(words))
	for _, w := range words {
		out = append(out, toWordOutput(w))
	}
	return out, nil
}

func (i *Interactor) GetWord(_ context.Context, id int) (dto.WordOutput, error) {
	w, err := i.svc.Word(id)
	if err != nil {
		return dto.WordOutput{}, err
	}
	return toWordOutput(w), nil
}

func toLetterOutput(l domain.Letter) dto.LetterOutput {
	common := make([]dto.CommonWordOutput, 0, len(l.CommonWords))
	for _, c := range l.CommonWords {
		common = append(common, dto.CommonWordOutput{Word: c.Word, Gloss: c.Gloss})
	}
	return dto.LetterOutput{
		ID:                l.ID,
		Name:              l.Name,
		Glyph:             l.Glyph,
		Romanization:      l.Romanization,
		EnglishSound:      l.EnglishSound,
		EnglishComparison: l.EnglishComparison,
		Category:          string(l.Category),
		Difficulty:        l.Difficulty,
		ExampleWords:      append([]string(nil), l.ExampleWords...),
		CommonWords:       common,
		VisualAid:         l.VisualAid,
		Position:          l.Position,
	}
}

func toWordOutput(w domain.ExampleWord) dto.WordOutput {
	syllables := make([]dto.SyllableOutput, 0, len(w.Syllables))
	for _, s := range w.Syllables {
		syllables = append(syllables, dto.SyllableOutput{
			Text:      s.Text,
			Initial:   s.Initial,
			Vowel:     s.Vowel,
			Final:     s.Final,
			Structure: string(s.Structure),
		})
	}
	return dto.WordOutput{
		ID:           w.ID,
		Korean:       w.Korean,
		Romanization: w.Romanization,
		English:      w.English,
		Syllables:    syllables,
	}
}
