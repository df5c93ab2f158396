package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"hangul/internal/modules/speech/domain"
	"hangul/internal/modules/speech/dto"
	speechin "hangul/internal/modules/speech/port/in"
	speechout "hangul/internal/modules/speech/port/out"
	"hangul/internal/modules/speech/service"
	apperrors "hangul/internal/platform/errors"
)

type Interactor struct {
	svc   *service.SpeechService
	texts speechout.TextSource
}

func NewInteractor(svc *service.SpeechService, texts speechout.TextSource) speechin.Usecase {
	return &Interactor{svc: svc, texts: texts}
}

func (i *Interactor) Speak(ctx context.Context, input dto.SpeakInput) (dto.SpeakOutput, error) {
	u, err := i.utterance(ctx, input)
	if err != nil {
		return dto.SpeakOutput{}, err
	}
	return toOutput(u), i.svc.Speak(ctx, u)
}

// SpeakAsync resolves the text synchronously so lookup errors are returned
// directly, then plays it in the background.
func (i *Interactor) SpeakAsync(ctx context.Context, input dto.SpeakInput, done func(error)) (dto.SpeakOutput, error) {
	u, err := i.utterance(ctx, input)
	if err != nil {
		return dto.SpeakOutput{}, err
	}
	i.svc.SpeakAsync(ctx, u, done)
	return toOutput(u), nil
}

func (i *Interactor) Stop(_ context.Context) error {
	i.svc.Stop()
	return nil
}

func (i *Interactor) utterance(ctx context.Context, input dto.SpeakInput) (domain.Utterance, error) {
	ref := strings.TrimSpace(input.Ref)
	switch strings.ToLower(input.Target) {
	case dto.TargetLetter, "":
		l, err := i.texts.Letter(ctx, ref)
		if err != nil {
			return domain.Utterance{}, err
		}
		return domain.LetterSound(l)
	case dto.TargetGuide:
		l, err := i.texts.Letter(ctx, ref)
		if err != nil {
			return domain.Utterance{}, err
		}
		return domain.PronunciationGuide(l)
	case dto.TargetSyllable:
		return domain.SyllableSound(ref)
	case dto.TargetWord:
		id, err := strconv.Atoi(ref)
		if err != nil {
			return domain.Utterance{}, fmt.Errorf("%w: word id %q", apperrors.ErrInvalidInput, ref)
		}
		w, err := i.texts.Word(ctx, id)
		if err != nil {
			return domain.Utterance{}, err
		}
		return domain.WordSound(w)
	default:
		return domain.Utterance{}, fmt.Errorf("%w: unknown speech target %q", apperrors.ErrInvalidInput, input.Target)
	}
}

func toOutput(u domain.Utterance) dto.SpeakOutput {
	return dto.SpeakOutput{Text: u.Text, Language: string(u.Lang)}
}
