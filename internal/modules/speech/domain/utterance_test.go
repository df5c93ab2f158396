package domain_test

import (
	"errors"
	"testing"

	alphabetdomain "hangul/internal/modules/alphabet/domain"
	"hangul/internal/modules/speech/domain"
	apperrors "hangul/internal/platform/errors"
)

func TestUtterancePresets(t *testing.T) {
	t.Parallel()
	letter := alphabetdomain.Letter{ID: 1, Glyph: "ㄱ", EnglishSound: "g/k"}

	u, err := domain.LetterSound(letter)
	if err != nil || u.Text != "ㄱㄱ" || u.Rate != 0.6 || u.Lang != domain.Korean {
		t.Fatalf("unexpected letter utterance %+v (%v)", u, err)
	}
	u, err = domain.SyllableSound(" 가 ")
	if err != nil || u.Text != "가" || u.Rate != 0.7 {
		t.Fatalf("unexpected syllable utterance %+v (%v)", u, err)
	}
	u, err = domain.WordSound(alphabetdomain.ExampleWord{ID: 1, Korean: "가다", Romanization: "gada"})
	if err != nil || u.Text != "가다" || u.Rate != 0.8 || u.Volume != 0.8 {
		t.Fatalf("unexpected word utterance %+v (%v)", u, err)
	}
	u, err = domain.WordSound(alphabetdomain.ExampleWord{ID: 2, Romanization: "saram"})
	if err != nil || u.Text != "saram" {
		t.Fatalf("expected romanization fallback, got %+v (%v)", u, err)
	}
	u, err = domain.PronunciationGuide(letter)
	if err != nil || u.Lang != domain.English || u.Pitch != 1.1 || u.Rate != 0.9 {
		t.Fatalf("unexpected guide utterance %+v (%v)", u, err)
	}
}

func TestUtterancePresetsRejectEmptyText(t *testing.T) {
	t.Parallel()
	if _, err := domain.LetterSound(alphabetdomain.Letter{}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := domain.SyllableSound("  "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := domain.WordSound(alphabetdomain.ExampleWord{ID: 3}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := domain.PronunciationGuide(alphabetdomain.Letter{ID: 4}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
