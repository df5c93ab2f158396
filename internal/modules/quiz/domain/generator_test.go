package domain_test

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	alphabetout "hangul/internal/modules/alphabet/adapter/out"
	alphabetdomain "hangul/internal/modules/alphabet/domain"
	alphabetservice "hangul/internal/modules/alphabet/service"
	"hangul/internal/modules/quiz/domain"
	apperrors "hangul/internal/platform/errors"
	"hangul/internal/platform/random"
)

func loadCatalog(t *testing.T) *alphabetdomain.Catalog {
	t.Helper()
	svc, err := alphabetservice.NewCatalogService(context.Background(), alphabetout.NewEmbeddedCatalogSource())
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return svc.Catalog()
}

func TestGenerateOptionsContainAnswerWithoutDuplicates(t *testing.T) {
	t.Parallel()
	starter := loadCatalog(t).Subset(alphabetdomain.StarterLetterIDs)

	for _, info := range domain.Kinds() {
		for seed := uint64(1); seed <= 25; seed++ {
			gen := domain.NewGenerator(random.Seeded(seed))
			q, err := gen.Generate(info.Kind, starter, 0)
			if err != nil {
				t.Fatalf("%s seed %d: %v", info.Kind, seed, err)
			}
			if q.Kind != info.Kind {
				t.Fatalf("expected kind %s, got %s", info.Kind, q.Kind)
			}
			if !slices.Contains(q.Options, q.CorrectAnswer) {
				t.Fatalf("%s: answer %q missing from %v", info.Kind, q.CorrectAnswer, q.Options)
			}
			if len(q.Options) < 2 || len(q.Options) > 4 {
				t.Fatalf("%s: expected 2..4 options, got %v", info.Kind, q.Options)
			}
			sorted := slices.Clone(q.Options)
			slices.Sort(sorted)
			if len(slices.Compact(sorted)) != len(q.Options) {
				t.Fatalf("%s: duplicate options %v", info.Kind, q.Options)
			}
			if q.Prompt == "" || q.LetterID == 0 {
				t.Fatalf("%s: incomplete question %+v", info.Kind, q)
			}
		}
	}
}

func TestGenerateAnswerMatchesKind(t *testing.T) {
	t.Parallel()
	catalog := loadCatalog(t)
	starter := catalog.Subset(alphabetdomain.StarterLetterIDs)
	gen := domain.NewGenerator(random.Seeded(7))

	cases := map[domain.Kind]func(alphabetdomain.Letter) string{
		domain.KindMultipleChoice:  func(l alphabetdomain.Letter) string { return l.Name },
		domain.KindLetterToSound:   func(l alphabetdomain.Letter) string { return l.EnglishSound },
		domain.KindSoundToLetter:   func(l alphabetdomain.Letter) string { return l.Glyph },
		domain.KindLetterMatching:  func(l alphabetdomain.Letter) string { return l.Romanization },
		domain.KindWordAssociation: func(l alphabetdomain.Letter) string { return l.Name },
	}
	for kind, value := range cases {
		q, err := gen.Generate(kind, starter, 16)
		if err != nil {
			t.Fatalf("generate %s: %v", kind, err)
		}
		if q.LetterID != 16 {
			t.Fatalf("%s: expected pinned focus 16, got %d", kind, q.LetterID)
		}
		l, _ := catalog.Letter(16)
		if q.CorrectAnswer != value(l) {
			t.Fatalf("%s: expected answer %q, got %q", kind, value(l), q.CorrectAnswer)
		}
	}
}

func TestGenerateWordAssociationUsesFirstExampleWords(t *testing.T) {
	t.Parallel()
	catalog := loadCatalog(t)
	starter := catalog.Subset(alphabetdomain.StarterLetterIDs)
	focus, _ := catalog.Letter(1)

	for seed := uint64(1); seed <= 20; seed++ {
		q, err := domain.NewGenerator(random.Seeded(seed)).Generate(domain.KindWordAssociation, starter, 1)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if !slices.Contains(focus.ExampleWords[:min(3, len(focus.ExampleWords))], q.Word) {
			t.Fatalf("expected one of the first example words, got %q", q.Word)
		}
		if !strings.Contains(q.Prompt, q.Word) {
			t.Fatalf("expected prompt to mention %q, got %q", q.Word, q.Prompt)
		}
	}
}

func TestGenerateIgnoresUnavailablePin(t *testing.T) {
	t.Parallel()
	starter := loadCatalog(t).Subset(alphabetdomain.StarterLetterIDs)
	q, err := domain.NewGenerator(random.Seeded(3)).Generate(domain.KindSoundToLetter, starter, 24)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !slices.Contains(alphabetdomain.StarterLetterIDs, q.LetterID) {
		t.Fatalf("expected focus from available letters, got %d", q.LetterID)
	}
}

func TestGeneratePlaceholderBelowTwoLetters(t *testing.T) {
	t.Parallel()
	one := loadCatalog(t).Subset([]int{1})
	gen := domain.NewGenerator(random.Seeded(1))

	for _, letters := range [][]alphabetdomain.Letter{nil, one} {
		q, err := gen.Generate(domain.KindMultipleChoice, letters, 0)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !q.IsPlaceholder() || len(q.Options) != 0 {
			t.Fatalf("expected placeholder, got %+v", q)
		}
		if q.Prompt != "Complete more letters to unlock practice exercises!" {
			t.Fatalf("unexpected placeholder prompt %q", q.Prompt)
		}
		if q.Check("") {
			t.Fatalf("placeholder must not accept answers")
		}
	}
}

func TestGenerateSmallPoolYieldsFewerOptions(t *testing.T) {
	t.Parallel()
	pair := loadCatalog(t).Subset([]int{1, 2})
	q, err := domain.NewGenerator(random.Seeded(9)).Generate(domain.KindLetterMatching, pair, 0)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(q.Options) != 2 {
		t.Fatalf("expected 2 options, got %v", q.Options)
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()
	kind, err := domain.ParseKind(" Letter-To-Sound ")
	if err != nil || kind != domain.KindLetterToSound {
		t.Fatalf("expected letter-to-sound, got %q (%v)", kind, err)
	}
	if _, err := domain.ParseKind("essay"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := domain.ParseKind(string(domain.KindInsufficientLetters)); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("placeholder kind must not be playable, got %v", err)
	}
	if _, err := domain.NewGenerator(nil).Generate(domain.Kind("essay"), nil, 0); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input from generator, got %v", err)
	}
}
