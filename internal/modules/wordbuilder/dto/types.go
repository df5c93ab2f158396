package dto

type JamoOutput struct {
	ID       int
	Glyph    string
	Name     string
	Category string
}

type SyllableOutput struct {
	Text      string
	Initial   string
	Vowel     string
	Final     string
	Structure string
}

type SessionOutput struct {
	ID                 string
	WordID             int
	Korean             string
	Romanization       string
	English            string
	Stage              int
	StageName          string
	Slots              int
	RequiredConsonants []JamoOutput
	RequiredVowels     []JamoOutput
	SelectedConsonants []JamoOutput
	SelectedVowels     []JamoOutput
	Built              []SyllableOutput
	Assembled          []SyllableOutput
	StageComplete      bool
	CanBuild           bool
	Completed          bool
	Hint               string
}

type BuildOutput struct {
	Syllable SyllableOutput
	Session  SessionOutput
}

type CompletionOutput struct {
	Session  SessionOutput
	Recorded bool
	Granted  []string
}
