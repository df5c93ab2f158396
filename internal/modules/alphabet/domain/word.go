package domain

import "fmt"

type Structure string

const (
	StructureCV  Structure = "CV"
	StructureCVC Structure = "CVC"
)

type SyllableSpec struct {
	Text      string
	Initial   string
	Vowel     string
	Final     string
	Structure Structure
}

func (s SyllableSpec) HasFinal() bool { return s.Final != "" }

// Matches reports whether the jamo triple builds this syllable. An absent final must match an absent final.
func (s SyllableSpec) Matches(initial, vowel, final string) bool {
	return s.Initial == initial && s.Vowel == vowel && s.Final == final
}

type ExampleWord struct {
	ID           int
	Korean       string
	Romanization string
	English      string
	Syllables    []SyllableSpec
}

func (w ExampleWord) Validate() error {
	if w.ID <= 0 {
		return fmt.Errorf("word id must be positive")
	}
	if w.Korean == "" || len(w.Syllables) == 0 {
		return fmt.Errorf("word %d: text and syllables are required", w.ID)
	}
	joined := ""
	for i, s := range w.Syllables {
		if s.Initial == "" || s.Vowel == "" {
			return fmt.Errorf("word %d syllable %d: initial and vowel are required", w.ID, i)
		}
		switch {
		case s.Structure == StructureCV && s.HasFinal():
			return fmt.Errorf("word %d syllable %d: CV syllable with a final", w.ID, i)
		case s.Structure == StructureCVC && !s.HasFinal():
			return fmt.Errorf("word %d syllable %d: CVC syllable without a final", w.ID, i)
		case s.Structure != StructureCV && s.Structure != StructureCVC:
			return fmt.Errorf("word %d syllable %d: unknown structure %q", w.ID, i, s.Structure)
		}
		composed, err := Compose(s.Initial, s.Vowel, s.Final)
		if err != nil {
			return fmt.Errorf("word %d syllable %d: %w", w.ID, i, err)
		}
		if composed != s.Text {
			return fmt.Errorf("word %d syllable %d: %q composes to %q", w.ID, i, s.Text, composed)
		}
		joined += s.Text
	}
	if joined != w.Korean {
		return fmt.Errorf("word %d: syllables %q do not spell %q", w.ID, joined, w.Korean)
	}
	return nil
}
