package domain_test

import (
	"strings"
	"testing"

	"hangul/internal/modules/alphabet/domain"
)

func fixtureLetters() []domain.Letter {
	consonants := []string{"ㄱ", "ㄴ", "ㄷ", "ㄹ", "ㅁ"}
	vowels := []string{"ㅏ", "ㅑ", "ㅓ", "ㅕ", "ㅗ"}
	letters := []domain.Letter{}
	for i, g := range consonants {
		letters = append(letters, domain.Letter{ID: i + 1, Name: "c" + g, Glyph: g, Romanization: "r", EnglishSound: "s" + g, Category: domain.CategoryConsonant, Difficulty: 1})
	}
	for i, g := range vowels {
		letters = append(letters, domain.Letter{ID: i + 15, Name: "v" + g, Glyph: g, Romanization: "r", EnglishSound: "s" + g, Category: domain.CategoryVowel, Difficulty: 1})
	}
	letters = append(letters, domain.Letter{ID: 6, Name: "cㅂ", Glyph: "ㅂ", Romanization: "b", EnglishSound: "b", Category: domain.CategoryConsonant, Difficulty: 2})
	return letters
}

func TestNewCatalogIndexesLetters(t *testing.T) {
	t.Parallel()
	words := []domain.ExampleWord{{ID: 1, Korean: "가다", Syllables: []domain.SyllableSpec{
		{Text: "가", Initial: "ㄱ", Vowel: "ㅏ", Structure: domain.StructureCV},
		{Text: "다", Initial: "ㄷ", Vowel: "ㅏ", Structure: domain.StructureCV},
	}}}
	catalog, err := domain.NewCatalog(fixtureLetters(), words)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if l, ok := catalog.LetterByGlyph("ㄷ"); !ok || l.ID != 3 {
		t.Fatalf("expected glyph lookup for ㄷ, got %+v", l)
	}
	if got := catalog.IDsAtLevel(2); len(got) != 1 || got[0] != 6 {
		t.Fatalf("expected tier 2 = [6], got %v", got)
	}
	if catalog.MaxLevel() != 2 {
		t.Fatalf("expected max level 2, got %d", catalog.MaxLevel())
	}
	if catalog.Difficulty(99) != 0 {
		t.Fatalf("unknown id must have difficulty 0")
	}
	subset := catalog.Subset([]int{16, 1})
	if len(subset) != 2 || subset[0].ID != 1 || subset[1].ID != 16 {
		t.Fatalf("subset must follow catalog order, got %+v", subset)
	}
}

func TestNewCatalogRejectsBrokenData(t *testing.T) {
	t.Parallel()
	dup := append(fixtureLetters(), domain.Letter{ID: 1, Name: "x", Glyph: "ㅎ", Romanization: "h", EnglishSound: "h", Category: domain.CategoryConsonant, Difficulty: 1})
	if _, err := domain.NewCatalog(dup, nil); err == nil || !strings.Contains(err.Error(), "duplicate letter id") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}

	gap := append(fixtureLetters(), domain.Letter{ID: 7, Name: "x", Glyph: "ㅎ", Romanization: "h", EnglishSound: "h", Category: domain.CategoryConsonant, Difficulty: 4})
	if _, err := domain.NewCatalog(gap, nil); err == nil || !strings.Contains(err.Error(), "tier 3") {
		t.Fatalf("expected empty tier error, got %v", err)
	}

	wrongText := []domain.ExampleWord{{ID: 1, Korean: "나", Syllables: []domain.SyllableSpec{
		{Text: "나", Initial: "ㄱ", Vowel: "ㅏ", Structure: domain.StructureCV},
	}}}
	if _, err := domain.NewCatalog(fixtureLetters(), wrongText); err == nil {
		t.Fatalf("expected composition mismatch error")
	}

	missingFinal := []domain.ExampleWord{{ID: 1, Korean: "가", Syllables: []domain.SyllableSpec{
		{Text: "가", Initial: "ㄱ", Vowel: "ㅏ", Structure: domain.StructureCVC},
	}}}
	if _, err := domain.NewCatalog(fixtureLetters(), missingFinal); err == nil {
		t.Fatalf("expected structure mismatch error")
	}

	unknownJamo := []domain.ExampleWord{{ID: 1, Korean: "하", Syllables: []domain.SyllableSpec{
		{Text: "하", Initial: "ㅎ", Vowel: "ㅏ", Structure: domain.StructureCV},
	}}}
	if _, err := domain.NewCatalog(fixtureLetters(), unknownJamo); err == nil {
		t.Fatalf("expected unknown jamo error")
	}
}
