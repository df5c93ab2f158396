package out

import (
	"context"

	alphabetdomain "hangul/internal/modules/alphabet/domain"
	"hangul/internal/modules/speech/domain"
)

// Synthesizer speaks an utterance with the named voice and returns when it is done.
type Synthesizer interface {
	Speak(ctx context.Context, u domain.Utterance, voice string) error
}

// TextSource resolves catalog entries to speak.
type TextSource interface {
	Letter(ctx context.Context, ref string) (alphabetdomain.Letter, error)
	Word(ctx context.Context, id int) (alphabetdomain.ExampleWord, error)
}
