package domain

import (
	"fmt"
	"strings"

	apperrors "hangul/internal/platform/errors"
)

type Kind string

const (
	KindMultipleChoice  Kind = "multiple-choice"
	KindLetterToSound   Kind = "letter-to-sound"
	KindSoundToLetter   Kind = "sound-to-letter"
	KindLetterMatching  Kind = "letter-matching"
	KindWordAssociation Kind = "word-association"

	// KindInsufficientLetters marks the placeholder shown when fewer than two letters are unlocked.
	KindInsufficientLetters Kind = "insufficient-letters"
)

type KindInfo struct {
	Kind        Kind
	Name        string
	Description string
}

var kinds = []KindInfo{
	{KindMultipleChoice, "Multiple Choice", "Choose the correct answer from options"},
	{KindLetterToSound, "Letter to Sound", "Match Korean letters to their English sounds"},
	{KindSoundToLetter, "Sound to Letter", "Find the Korean letter that makes a specific sound"},
	{KindLetterMatching, "Letter Matching", "Match letters to their pronunciations"},
	{KindWordAssociation, "Sound Association", "Match letters to words containing their sounds"},
}

// Kinds lists the playable question kinds.
func Kinds() []KindInfo {
	return append([]KindInfo(nil), kinds...)
}

func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(raw)))
	for _, info := range kinds {
		if info.Kind == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: unknown question kind %q", apperrors.ErrInvalidInput, raw)
}
