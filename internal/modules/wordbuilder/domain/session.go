package domain

import (
	"fmt"
	"slices"

	alphabetdomain "hangul/internal/modules/alphabet/domain"
	apperrors "hangul/internal/platform/errors"
)

type Stage int

const (
	StageJamo Stage = iota + 1
	StageSyllables
	StageWord
)

func (s Stage) String() string {
	switch s {
	case StageJamo:
		return "Jamo"
	case StageSyllables:
		return "Syllables"
	case StageWord:
		return "Word"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Syllable is a syllable the learner built in the second stage.
type Syllable struct {
	Text      string
	Initial   string
	Vowel     string
	Final     string
	Structure alphabetdomain.Structure
}

// Session walks a learner through building one example word: collecting
// its letters, composing its syllables, then ordering them.
type Session struct {
	id       string
	word     alphabetdomain.ExampleWord
	stage    Stage
	required Jamo

	consonants []alphabetdomain.Letter
	vowels     []alphabetdomain.Letter
	built      []Syllable
	assembled  []Syllable
	completed  bool
}

// Jamo is an ordered set of distinct consonants and vowels.
type Jamo struct {
	Consonants []alphabetdomain.Letter
	Vowels     []alphabetdomain.Letter
}

func (j Jamo) consonant(glyph string) (alphabetdomain.Letter, bool) {
	i := slices.IndexFunc(j.Consonants, func(l alphabetdomain.Letter) bool { return l.Glyph == glyph })
	if i < 0 {
		return alphabetdomain.Letter{}, false
	}
	return j.Consonants[i], true
}

func (j Jamo) vowel(glyph string) (alphabetdomain.Letter, bool) {
	i := slices.IndexFunc(j.Vowels, func(l alphabetdomain.Letter) bool { return l.Glyph == glyph })
	if i < 0 {
		return alphabetdomain.Letter{}, false
	}
	return j.Vowels[i], true
}

// RequiredJamo lists the distinct letters of a word in order of first
// appearance: initial, vowel, then final of each syllable.
func RequiredJamo(word alphabetdomain.ExampleWord, catalog *alphabetdomain.Catalog) (Jamo, error) {
	var req Jamo
	add := func(glyph string, vowel bool) error {
		l, ok := catalog.LetterByGlyph(glyph)
		if !ok {
			return fmt.Errorf("%w: letter %q of word %d", apperrors.ErrNotFound, glyph, word.ID)
		}
		set := &req.Consonants
		if vowel {
			set = &req.Vowels
		}
		if !slices.ContainsFunc(*set, func(x alphabetdomain.Letter) bool { return x.ID == l.ID }) {
			*set = append(*set, l)
		}
		return nil
	}
	for _, s := range word.Syllables {
		if err := add(s.Initial, false); err != nil {
			return Jamo{}, err
		}
		if err := add(s.Vowel, true); err != nil {
			return Jamo{}, err
		}
		if s.HasFinal() {
			if err := add(s.Final, false); err != nil {
				return Jamo{}, err
			}
		}
	}
	return req, nil
}

func NewSession(id string, word alphabetdomain.ExampleWord, catalog *alphabetdomain.Catalog) (*Session, error) {
	req, err := RequiredJamo(word, catalog)
	if err != nil {
		return nil, err
	}
	return &Session{id: id, word: word, stage: StageJamo, required: req}, nil
}

func (s *Session) ID() string { return s.id }
func (s *Session) Word() alphabetdomain.ExampleWord { return s.word }
func (s *Session) Stage() Stage { return s.stage }
func (s *Session) Required() Jamo { return s.required }
func (s *Session) Completed() bool { return s.completed }

func (s *Session) Selection() Jamo {
	return Jamo{Consonants: slices.Clone(s.consonants), Vowels: slices.Clone(s.vowels)}
}

func (s *Session) Built() []Syllable { return slices.Clone(s.built) }
func (s *Session) Assembled() []Syllable { return slices.Clone(s.assembled) }

// SelectConsonant appends a required consonant to the selection. Repeats are
// kept so one letter can serve as both initial and final.
func (s *Session) SelectConsonant(glyph string) error {
	if s.stage == StageWord {
		return fmt.Errorf("%w: letters are chosen in the first two stages", apperrors.ErrInvalidInput)
	}
	l, ok := s.required.consonant(glyph)
	if !ok {
		return fmt.Errorf("%w: %q is not a consonant of %s", apperrors.ErrInvalidInput, glyph, s.word.Korean)
	}
	s.consonants = append(s.consonants, l)
	return nil
}

// ToggleVowel adds a required vowel to the selection or removes it.
func (s *Session) ToggleVowel(glyph string) error {
	if s.stage == StageWord {
		return fmt.Errorf("%w: letters are chosen in the first two stages", apperrors.ErrInvalidInput)
	}
	l, ok := s.required.vowel(glyph)
	if !ok {
		return fmt.Errorf("%w: %q is not a vowel of %s", apperrors.ErrInvalidInput, glyph, s.word.Korean)
	}
	if i := slices.IndexFunc(s.vowels, func(v alphabetdomain.Letter) bool { return v.ID == l.ID }); i >= 0 {
		s.vowels = slices.Delete(s.vowels, i, i+1)
		return nil
	}
	s.vowels = append(s.vowels, l)
	return nil
}

func (s *Session) ClearSelection() {
	s.consonants = nil
	s.vowels = nil
}

func hasLetter(set []alphabetdomain.Letter, id int) bool {
	return slices.ContainsFunc(set, func(l alphabetdomain.Letter) bool { return l.ID == id })
}

func (s *Session) jamoCollected() bool {
	for _, c := range s.required.Consonants {
		if !hasLetter(s.consonants, c.ID) {
			return false
		}
	}
	for _, v := range s.required.Vowels {
		if !hasLetter(s.vowels, v.ID) {
			return false
		}
	}
	return true
}

func (s *Session) CanBuild() bool {
	return s.stage == StageSyllables && len(s.consonants) >= 1 && len(s.vowels) >= 1
}

// BuildSyllable composes the selection into a syllable: the first consonant
// is the initial, the first vowel the vowel, the second consonant the final.
// A selection that matches no syllable of the word is ErrNotFound and leaves
// the session untouched.
func (s *Session) BuildSyllable() (Syllable, error) {
	if s.stage != StageSyllables {
		return Syllable{}, fmt.Errorf("%w: syllables are built in stage 2", apperrors.ErrInvalidInput)
	}
	if !s.CanBuild() {
		return Syllable{}, fmt.Errorf("%w: select a consonant and a vowel", apperrors.ErrInvalidInput)
	}
	initial, vowel, final := s.consonants[0].Glyph, s.vowels[0].Glyph, ""
	if len(s.consonants) > 1 {
		final = s.consonants[1].Glyph
	}
	idx := slices.IndexFunc(s.word.Syllables, func(sp alphabetdomain.SyllableSpec) bool {
		return sp.Matches(initial, vowel, final)
	})
	if idx < 0 {
		return Syllable{}, fmt.Errorf("%w: %s+%s+%q is not a syllable of %s", apperrors.ErrNotFound, initial, vowel, final, s.word.Korean)
	}
	want := s.word.Syllables[idx]
	if countText(s.built, want.Text) >= s.wanted(want.Text) {
		return Syllable{}, fmt.Errorf("%w: %q is already built", apperrors.ErrInvalidInput, want.Text)
	}
	syl := Syllable{Text: want.Text, Initial: initial, Vowel: vowel, Final: final, Structure: want.Structure}
	s.built = append(s.built, syl)
	s.ClearSelection()
	return syl, nil
}

func (s *Session) wanted(text string) int {
	n := 0
	for _, sp := range s.word.Syllables {
		if sp.Text == text {
			n++
		}
	}
	return n
}

func countText(syllables []Syllable, text string) int {
	n := 0
	for _, syl := range syllables {
		if syl.Text == text {
			n++
		}
	}
	return n
}

// PlaceSyllable puts a built syllable in the next free slot of the word.
func (s *Session) PlaceSyllable(text string) error {
	if s.stage != StageWord {
		return fmt.Errorf("%w: syllables are placed in stage 3", apperrors.ErrInvalidInput)
	}
	if len(s.assembled) >= len(s.word.Syllables) {
		return fmt.Errorf("%w: every slot is filled", apperrors.ErrInvalidInput)
	}
	i := slices.IndexFunc(s.built, func(syl Syllable) bool { return syl.Text == text })
	if i < 0 {
		return fmt.Errorf("%w: %q was not built", apperrors.ErrNotFound, text)
	}
	if countText(s.assembled, text) >= countText(s.built, text) {
		return fmt.Errorf("%w: %q is already placed", apperrors.ErrInvalidInput, text)
	}
	s.assembled = append(s.assembled, s.built[i])
	return nil
}

func (s *Session) RemoveSyllable(index int) error {
	if s.stage != StageWord {
		return fmt.Errorf("%w: syllables are placed in stage 3", apperrors.ErrInvalidInput)
	}
	if index < 0 || index >= len(s.assembled) {
		return fmt.Errorf("%w: no syllable at slot %d", apperrors.ErrInvalidInput, index)
	}
	s.assembled = slices.Delete(s.assembled, index, index+1)
	return nil
}

// StageComplete reports whether the current stage's goal is met.
func (s *Session) StageComplete() bool {
	switch s.stage {
	case StageJamo:
		return s.jamoCollected()
	case StageSyllables:
		return len(s.built) == len(s.word.Syllables)
	case StageWord:
		return s.wordAssembled()
	}
	return false
}

func (s *Session) wordAssembled() bool {
	if len(s.assembled) != len(s.word.Syllables) {
		return false
	}
	for i, sp := range s.word.Syllables {
		if s.assembled[i].Text != sp.Text {
			return false
		}
	}
	return true
}

func (s *Session) Advance() error {
	if s.stage == StageWord {
		return fmt.Errorf("%w: already at the final stage", apperrors.ErrInvalidInput)
	}
	if !s.StageComplete() {
		return fmt.Errorf("%w: %s stage is not finished", apperrors.ErrStageIncomplete, s.stage)
	}
	s.stage++
	s.ClearSelection()
	return nil
}

// Complete checks the assembled word. It reports true only the first time
// the word is assembled correctly.
func (s *Session) Complete() (first bool, err error) {
	if s.stage != StageWord || !s.wordAssembled() {
		return false, fmt.Errorf("%w: the word is not assembled in order", apperrors.ErrStageIncomplete)
	}
	if s.completed {
		return false, nil
	}
	s.completed = true
	return true, nil
}

func (s *Session) Reset() {
	s.stage = StageJamo
	s.ClearSelection()
	s.built = nil
	s.assembled = nil
	s.completed = false
}

// View is a copy of the session state safe to hand across goroutines.
type View struct {
	ID            string
	Word          alphabetdomain.ExampleWord
	Stage         Stage
	Required      Jamo
	Selection     Jamo
	Built         []Syllable
	Assembled     []Syllable
	StageComplete bool
	CanBuild      bool
	Completed     bool
	Hint          string
}

func (s *Session) View() View {
	return View{
		ID:            s.id,
		Word:          s.word,
		Stage:         s.stage,
		Required:      s.required,
		Selection:     s.Selection(),
		Built:         s.Built(),
		Assembled:     s.Assembled(),
		StageComplete: s.StageComplete(),
		CanBuild:      s.CanBuild(),
		Completed:     s.completed,
		Hint:          s.Hint(),
	}
}
