package usecase_test

import (
	"context"
	"errors"
	"testing"

	alphabetout "hangul/internal/modules/alphabet/adapter/out"
	alphabetservice "hangul/internal/modules/alphabet/service"
	alphabetusecase "hangul/internal/modules/alphabet/usecase"
	speechin "hangul/internal/modules/speech/adapter/in"
	speechout "hangul/internal/modules/speech/adapter/out"
	"hangul/internal/modules/speech/domain"
	"hangul/internal/modules/speech/service"
	"hangul/internal/modules/speech/usecase"
	apperrors "hangul/internal/platform/errors"
)

type recordingSynth struct {
	spoken []domain.Utterance
}

func (r *recordingSynth) Speak(_ context.Context, u domain.Utterance, _ string) error {
	r.spoken = append(r.spoken, u)
	return nil
}

func newHandler(t *testing.T) (speechin.CLIHandler, *recordingSynth) {
	t.Helper()
	catalogSvc, err := alphabetservice.NewCatalogService(context.Background(), alphabetout.NewEmbeddedCatalogSource())
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	synth := &recordingSynth{}
	svc := service.NewSpeechService(synth, service.Voices{Korean: "ko", Fallback: "ko-KR", English: "en-us"}, nil)
	texts := speechout.NewCatalogTextSource(alphabetusecase.NewInteractor(catalogSvc))
	return speechin.NewCLIHandler(usecase.NewInteractor(svc, texts)), synth
}

func TestSpeakResolvesTargets(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h, synth := newHandler(t)

	cases := []struct {
		target string
		ref    string
		text   string
		lang   string
	}{
		{"letter", "ㄴ", "ㄴㄴ", "ko"},
		{"letter", "kiyeok", "ㄱㄱ", "ko"},
		{"guide", "1", "g/k", "en"},
		{"syllable", "한", "한", "ko"},
		{"word", "3", "학교", "ko"},
	}
	for _, tc := range cases {
		out, err := h.Speak(ctx, tc.target, tc.ref)
		if err != nil {
			t.Fatalf("speak %s %s: %v", tc.target, tc.ref, err)
		}
		if out.Text != tc.text || out.Language != tc.lang {
			t.Fatalf("expected %s/%s, got %+v", tc.text, tc.lang, out)
		}
	}
	if len(synth.spoken) != len(cases) {
		t.Fatalf("expected %d utterances, got %d", len(cases), len(synth.spoken))
	}
}

func TestSpeakRejectsBadInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h, synth := newHandler(t)

	if _, err := h.Speak(ctx, "song", "x"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid target, got %v", err)
	}
	if _, err := h.Speak(ctx, "word", "abc"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid word id, got %v", err)
	}
	if _, err := h.Speak(ctx, "word", "42"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected unknown word, got %v", err)
	}
	if _, err := h.Speak(ctx, "letter", "ㅋㅋ"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected unknown letter, got %v", err)
	}
	if len(synth.spoken) != 0 {
		t.Fatalf("expected nothing spoken, got %v", synth.spoken)
	}
}
