package domain

import (
	"fmt"

	alphabetdomain "hangul/internal/modules/alphabet/domain"
	apperrors "hangul/internal/platform/errors"
	"hangul/internal/platform/random"
)

const maxDistractors = 3

type template struct {
	value   func(alphabetdomain.Letter) string
	prompts []func(l alphabetdomain.Letter, word string) string
}

func name(l alphabetdomain.Letter) string         { return l.Name }
func sound(l alphabetdomain.Letter) string        { return l.EnglishSound }
func glyph(l alphabetdomain.Letter) string        { return l.Glyph }
func romanization(l alphabetdomain.Letter) string { return l.Romanization }

var templates = map[Kind]template{
	KindMultipleChoice: {value: name, prompts: []func(alphabetdomain.Letter, string) string{
		func(l alphabetdomain.Letter, _ string) string {
			return fmt.Sprintf("What is the name of this Korean letter: %q?", l.Glyph)
		},
		func(l alphabetdomain.Letter, _ string) string {
			return fmt.Sprintf("Which letter makes the %q sound?", l.EnglishSound)
		},
		func(l alphabetdomain.Letter, _ string) string {
			return fmt.Sprintf("What letter should you use for the %q sound?", l.EnglishSound)
		},
	}},
	KindLetterToSound: {value: sound, prompts: []func(alphabetdomain.Letter, string) string{
		func(l alphabetdomain.Letter, _ string) string { return fmt.Sprintf("What sound does %q make?", l.Glyph) },
		func(l alphabetdomain.Letter, _ string) string { return fmt.Sprintf("How do you pronounce %q?", l.Glyph) },
		func(l alphabetdomain.Letter, _ string) string {
			return fmt.Sprintf("What is the English sound for %q?", l.Glyph)
		},
	}},
	KindSoundToLetter: {value: glyph, prompts: []func(alphabetdomain.Letter, string) string{
		func(l alphabetdomain.Letter, _ string) string {
			return fmt.Sprintf("Which Korean letter makes the %q sound?", l.EnglishSound)
		},
		func(l alphabetdomain.Letter, _ string) string {
			return fmt.Sprintf("What letter should you use for the %q sound?", l.EnglishSound)
		},
		func(l alphabetdomain.Letter, _ string) string {
			return fmt.Sprintf("If you want to make the %q sound, which letter do you use?", l.EnglishSound)
		},
	}},
	KindLetterMatching: {value: romanization, prompts: []func(alphabetdomain.Letter, string) string{
		func(l alphabetdomain.Letter, _ string) string {
			return fmt.Sprintf("What is the romanization of %q?", l.Glyph)
		},
		func(l alphabetdomain.Letter, _ string) string {
			return fmt.Sprintf("How do you write %q in English letters?", l.Glyph)
		},
		func(l alphabetdomain.Letter, _ string) string {
			return fmt.Sprintf("What is the English spelling for %q?", l.Glyph)
		},
	}},
	KindWordAssociation: {value: name, prompts: []func(alphabetdomain.Letter, string) string{
		func(l alphabetdomain.Letter, word string) string {
			return fmt.Sprintf("Which letter makes the %q sound found in %q?", l.EnglishSound, word)
		},
		func(_ alphabetdomain.Letter, word string) string {
			return fmt.Sprintf("What letter would you use to start writing %q in Korean?", word)
		},
		func(_ alphabetdomain.Letter, word string) string {
			return fmt.Sprintf("Which Korean letter sounds like the beginning of %q?", word)
		},
	}},
}

// Generator builds quiz questions from the letters a learner has unlocked.
type Generator struct {
	rnd random.Source
}

func NewGenerator(rnd random.Source) *Generator {
	if rnd == nil {
		rnd = random.New()
	}
	return &Generator{rnd: rnd}
}

// Generate returns a question of kind about one available letter. The pinned
// letter is used when it is available, otherwise the focus is drawn at
// random. With fewer than two letters the placeholder question is returned.
// Options hold the answer plus up to three distractors with distinct values,
// so small pools yield fewer than four options.
func (g *Generator) Generate(kind Kind, available []alphabetdomain.Letter, pinnedID int) (Question, error) {
	tpl, ok := templates[kind]
	if !ok {
		return Question{}, fmt.Errorf("%w: unknown question kind %q", apperrors.ErrInvalidInput, kind)
	}
	if len(available) < 2 {
		return Placeholder(), nil
	}

	focusIdx := -1
	for i, l := range available {
		if pinnedID != 0 && l.ID == pinnedID {
			focusIdx = i
			break
		}
	}
	if focusIdx < 0 {
		focusIdx = g.rnd.IntN(len(available))
	}
	focus := available[focusIdx]

	others := make([]alphabetdomain.Letter, 0, len(available)-1)
	for i, l := range available {
		if i != focusIdx {
			others = append(others, l)
		}
	}
	random.Shuffle(g.rnd, others)

	answer := tpl.value(focus)
	seen := map[string]bool{answer: true}
	options := []string{answer}
	for _, l := range others {
		if len(options) > maxDistractors {
			break
		}
		v := tpl.value(l)
		if seen[v] {
			continue
		}
		seen[v] = true
		options = append(options, v)
	}
	random.Shuffle(g.rnd, options)

	word := ""
	if kind == KindWordAssociation && len(focus.ExampleWords) > 0 {
		word = random.Pick(g.rnd, focus.ExampleWords[:min(3, len(focus.ExampleWords))])
	}
	prompt := random.Pick(g.rnd, tpl.prompts)
	if kind == KindWordAssociation && word == "" {
		prompt = templates[KindMultipleChoice].prompts[0]
	}

	return Question{
		Kind:          kind,
		Prompt:        prompt(focus, word),
		CorrectAnswer: answer,
		Options:       options,
		LetterID:      focus.ID,
		Word:          word,
	}, nil
}
