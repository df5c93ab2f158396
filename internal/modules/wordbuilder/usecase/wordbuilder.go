package usecase

import (
	"context"

	alphabetdomain "hangul/internal/modules/alphabet/domain"
	"hangul/internal/modules/wordbuilder/domain"
	"hangul/internal/modules/wordbuilder/dto"
	wordbuilderin "hangul/internal/modules/wordbuilder/port/in"
	"hangul/internal/modules/wordbuilder/service"
)

type Interactor struct {
	svc *service.WordBuilderService
}

func NewInteractor(svc *service.WordBuilderService) wordbuilderin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Start(ctx context.Context, wordID int) (dto.SessionOutput, error) {
	return session(i.svc.Start(ctx, wordID))
}

func (i *Interactor) Current(_ context.Context) (dto.SessionOutput, error) {
	return session(i.svc.Current())
}

func (i *Interactor) Select(ctx context.Context, glyph string) (dto.SessionOutput, error) {
	return session(i.svc.Select(ctx, glyph))
}

func (i *Interactor) ClearSelection(ctx context.Context) (dto.SessionOutput, error) {
	return session(i.svc.ClearSelection(ctx))
}

func (i *Interactor) Build(ctx context.Context) (dto.BuildOutput, error) {
	syl, view, err := i.svc.Build(ctx)
	out := dto.BuildOutput{Session: toSessionOutput(view)}
	if err != nil {
		return out, err
	}
	out.Syllable = toSyllableOutput(syl)
	return out, nil
}

func (i *Interactor) Place(ctx context.Context, text string) (dto.SessionOutput, error) {
	return session(i.svc.Place(ctx, text))
}

func (i *Interactor) Remove(ctx context.Context, slot int) (dto.SessionOutput, error) {
	return session(i.svc.Remove(ctx, slot))
}

func (i *Interactor) Advance(ctx context.Context) (dto.SessionOutput, error) {
	return session(i.svc.Advance(ctx))
}

func (i *Interactor) Reset(ctx context.Context) (dto.SessionOutput, error) {
	return session(i.svc.Reset(ctx))
}

func (i *Interactor) Hint(ctx context.Context) (string, error) {
	return i.svc.Hint(ctx)
}

func (i *Interactor) Complete(ctx context.Context) (dto.CompletionOutput, error) {
	c, err := i.svc.Complete(ctx)
	out := dto.CompletionOutput{Session: toSessionOutput(c.View), Recorded: c.Recorded, Granted: c.Granted}
	return out, err
}

// session maps a view even on error so callers can redraw the unchanged state.
func session(view domain.View, err error) (dto.SessionOutput, error) {
	return toSessionOutput(view), err
}

func toSessionOutput(v domain.View) dto.SessionOutput {
	if v.ID == "" {
		return dto.SessionOutput{}
	}
	return dto.SessionOutput{
		ID:                 v.ID,
		WordID:             v.Word.ID,
		Korean:             v.Word.Korean,
		Romanization:       v.Word.Romanization,
		English:            v.Word.English,
		Stage:              int(v.Stage),
		StageName:          v.Stage.String(),
		Slots:              len(v.Word.Syllables),
		RequiredConsonants: toJamo(v.Required.Consonants),
		RequiredVowels:     toJamo(v.Required.Vowels),
		SelectedConsonants: toJamo(v.Selection.Consonants),
		SelectedVowels:     toJamo(v.Selection.Vowels),
		Built:              toSyllables(v.Built),
		Assembled:          toSyllables(v.Assembled),
		StageComplete:      v.StageComplete,
		CanBuild:           v.CanBuild,
		Completed:          v.Completed,
		Hint:               v.Hint,
	}
}

func toJamo(letters []alphabetdomain.Letter) []dto.JamoOutput {
	out := make([]dto.JamoOutput, 0, len(letters))
	for _, l := range letters {
		out = append(out, dto.JamoOutput{ID: l.ID, Glyph: l.Glyph, Name: l.Name, Category: string(l.Category)})
	}
	return out
}

func toSyllableOutput(s domain.Syllable) dto.SyllableOutput {
	return dto.SyllableOutput{Text: s.Text, Initial: s.Initial, Vowel: s.Vowel, Final: s.Final, Structure: string(s.Structure)}
}

func toSyllables(syllables []domain.Syllable) []dto.SyllableOutput {
	out := make([]dto.SyllableOutput, 0, len(syllables))
	for _, s := range syllables {
		out = append(out, toSyllableOutput(s))
	}
	return out
}
