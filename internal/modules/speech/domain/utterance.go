package domain

import (
	"fmt"
	"strings"

	alphabetdomain "hangul/internal/modules/alphabet/domain"
	apperrors "hangul/internal/platform/errors"
)

type Language string

const (
	Korean  Language = "ko"
	English Language = "en"
)

const (
	DefaultRate   = 0.8
	DefaultPitch  = 1.0
	DefaultVolume = 0.8
)

// Utterance is one piece of text to be spoken. Rate, pitch and volume are
// relative to the synthesizer's normal voice, where 1 is unchanged.
type Utterance struct {
	Text   string
	Lang   Language
	Rate   float64
	Pitch  float64
	Volume float64
}

func (u Utterance) String() string {
	return fmt.Sprintf("%s %q @%.1f", u.Lang, u.Text, u.Rate)
}

func korean(text string, rate float64) Utterance {
	return Utterance{Text: text, Lang: Korean, Rate: rate, Pitch: DefaultPitch, Volume: DefaultVolume}
}

// LetterSound repeats a single glyph so it is audible on its own.
func LetterSound(l alphabetdomain.Letter) (Utterance, error) {
	if l.Glyph == "" {
		return Utterance{}, fmt.Errorf("%w: letter has no glyph", apperrors.ErrInvalidInput)
	}
	return korean(strings.Repeat(l.Glyph, 2), 0.6), nil
}

func SyllableSound(text string) (Utterance, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Utterance{}, fmt.Errorf("%w: empty syllable", apperrors.ErrInvalidInput)
	}
	return korean(text, 0.7), nil
}

// WordSound speaks the Korean text, falling back to the romanization.
func WordSound(w alphabetdomain.ExampleWord) (Utterance, error) {
	text := w.Korean
	if text == "" {
		text = w.Romanization
	}
	if text == "" {
		return Utterance{}, fmt.Errorf("%w: word %d has no text", apperrors.ErrInvalidInput, w.ID)
	}
	return korean(text, DefaultRate), nil
}

// PronunciationGuide reads the English approximation of a letter's sound.
func PronunciationGuide(l alphabetdomain.Letter) (Utterance, error) {
	if l.EnglishSound == "" {
		return Utterance{}, fmt.Errorf("%w: letter %d has no pronunciation guide", apperrors.ErrInvalidInput, l.ID)
	}
	return Utterance{Text: l.EnglishSound, Lang: English, Rate: 0.9, Pitch: 1.1, Volume: DefaultVolume}, nil
}
