package out

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hangul/internal/modules/alphabet/domain"
	alphabetout "hangul/internal/modules/alphabet/port/out"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

type catalogFile struct {
	Letters []letterRecord `yaml:"letters"`
	Words   []wordRecord   `yaml:"words"`
}

type letterRecord struct {
	ID                int      `yaml:"id"`
	Name              string   `yaml:"name"`
	Glyph             string   `yaml:"glyph"`
	Romanization      string   `yaml:"romanization"`
	EnglishSound      string   `yaml:"english_sound"`
	EnglishComparison string   `yaml:"english_comparison"`
	Category          string   `yaml:"category"`
	Difficulty        int      `yaml:"difficulty"`
	VisualAid         string   `yaml:"visual_aid"`
	Position          string   `yaml:"position"`
	ExampleWords      []string `yaml:"example_words"`
	CommonWords       []string `yaml:"common_words"`
}

type wordRecord struct {
	ID           int              `yaml:"id"`
	Korean       string           `yaml:"korean"`
	Romanization string           `yaml:"romanization"`
	English      string           `yaml:"english"`
	Syllables    []syllableRecord `yaml:"syllables"`
}

type syllableRecord struct {
	Text      string `yaml:"text"`
	Initial   string `yaml:"initial"`
	Vowel     string `yaml:"vowel"`
	Final     string `yaml:"final"`
	Structure string `yaml:"structure"`
}

// YAMLCatalogSource decodes the catalog from YAML bytes, by default the copy compiled into the binary.
type YAMLCatalogSource struct {
	raw []byte
}

func NewEmbeddedCatalogSource() alphabetout.CatalogSource {
	return &YAMLCatalogSource{raw: embeddedCatalog}
}

// NewFileCatalogSource reads an alternative catalog from disk, for custom word lists.
func NewFileCatalogSource(path string) (alphabetout.CatalogSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return &YAMLCatalogSource{raw: raw}, nil
}

func (s *YAMLCatalogSource) Load(_ context.Context) ([]domain.Letter, []domain.ExampleWord, error) {
	file := catalogFile{}
	if err := yaml.Unmarshal(s.raw, &file); err != nil {
		return nil, nil, fmt.Errorf("decode catalog: %w", err)
	}
	letters := make([]domain.Letter, 0, len(file.Letters))
	for _, r := range file.Letters {
		common := make([]domain.CommonWord, 0, len(r.CommonWords))
		for _, raw := range r.CommonWords {
			common = append(common, domain.ParseCommonWord(raw))
		}
		letters = append(letters, domain.Letter{
			ID:                r.ID,
			Name:              r.Name,
			Glyph:             r.Glyph,
			Romanization:      r.Romanization,
			EnglishSound:      r.EnglishSound,
			EnglishComparison: r.EnglishComparison,
			Category:          domain.Category(r.Category),
			Difficulty:        r.Difficulty,
			ExampleWords:      r.ExampleWords,
			CommonWords:       common,
			VisualAid:         r.VisualAid,
			Position:          r.Position,
		})
	}
	words := make([]domain.ExampleWord, 0, len(file.Words))
	for _, r := range file.Words {
		syllables := make([]domain.SyllableSpec, 0, len(r.Syllables))
		for _, s := range r.Syllables {
			syllables = append(syllables, domain.SyllableSpec{
				Text:      s.Text,
				Initial:   s.Initial,
				Vowel:     s.Vowel,
				Final:     s.Final,
				Structure: domain.Structure(s.Structure),
			})
		}
		words = append(words, domain.ExampleWord{
			ID:           r.ID,
			Korean:       r.Korean,
			Romanization: r.Romanization,
			English:      r.English,
			Syllables:    syllables,
		})
	}
	return letters, words, nil
}
