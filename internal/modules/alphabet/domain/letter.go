package domain

import (
	"fmt"
	"regexp"
	"strings"
)

type Category string

const (
	CategoryConsonant Category = "consonant"
	CategoryVowel     Category = "vowel"
)

const (
	MinDifficulty = 1
	MaxDifficulty = 4
)

type CommonWord struct {
	Word  string
	Gloss string
}

type Letter struct {
	ID                int
	Name              string
	Glyph             string
	Romanization      string
	EnglishSound      string
	EnglishComparison string
	Category          Category
	Difficulty        int
	ExampleWords      []string
	CommonWords       []CommonWord
	VisualAid         string
	Position          string
}

func (l Letter) IsConsonant() bool { return l.Category == CategoryConsonant }
func (l Letter) IsVowel() bool { return l.Category == CategoryVowel }

func (l Letter) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("letter id must be positive")
	}
	if strings.TrimSpace(l.Name) == "" || strings.TrimSpace(l.Glyph) == "" {
		return fmt.Errorf("letter %d: name and glyph are required", l.ID)
	}
	if l.Category != CategoryConsonant && l.Category != CategoryVowel {
		return fmt.Errorf("letter %d: unknown category %q", l.ID, l.Category)
	}
	if l.Difficulty < MinDifficulty || l.Difficulty > MaxDifficulty {
		return fmt.Errorf("letter %d: difficulty %d out of range", l.ID, l.Difficulty)
	}
	if l.EnglishSound == "" || l.Romanization == "" {
		return fmt.Errorf("letter %d: sound and romanization are required", l.ID)
	}
	return nil
}

var commonWordPattern = regexp.MustCompile(`^(.*?)\s*\((.*)\)\s*$`)

// ParseCommonWord splits the "word (gloss)" form. Entries without a gloss keep the whole text as the word.
func ParseCommonWord(raw string) CommonWord {
	raw = strings.TrimSpace(raw)
	m := commonWordPattern.FindStringSubmatch(raw)
	if m == nil {
		return CommonWord{Word: raw}
	}
	return CommonWord{Word: strings.TrimSpace(m[1]), Gloss: strings.TrimSpace(m[2])}
}

func (w CommonWord) String() string {
	if w.Gloss == "" {
		return w.Word
	}
	return w.Word + " (" + w.Gloss + ")"
}
