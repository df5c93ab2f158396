package dto

type LetterFilter struct {
	Category string
	Level    int
}

type CommonWordOutput struct {
	Word  string
	Gloss string
}

type LetterOutput struct {
	ID                int
	Name              string
	Glyph             string
	Romanization      string
	EnglishSound      string
	EnglishComparison string
	Category          string
	Difficulty        int
	ExampleWords      []string
	CommonWords       []CommonWordOutput
	VisualAid         string
	Position          string
}

type SyllableOutput struct {
	Text      string
	Initial   string
	Vowel     string
	Final     string
	Structure string
}

type WordOutput struct {
	ID           int
	Korean       string
	Romanization string
	English      string
	Syllables    []SyllableOutput
}
