package dto

const (
	TargetLetter   = "letter"
	TargetGuide    = "guide"
	TargetSyllable = "syllable"
	TargetWord     = "word"
)

// SpeakInput names what to say. Ref is a letter id, glyph or name, a
// syllable, or a word id depending on Target.
type SpeakInput struct {
	Target string
	Ref    string
}

type SpeakOutput struct {
	Text     string
	Language string
}
