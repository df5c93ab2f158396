package domain

import "fmt"

// Hint names the next missing input for the current stage. It never changes the session.
func (s *Session) Hint() string {
	switch s.stage {
	case StageJamo:
		return s.jamoHint()
	case StageSyllables:
		return s.syllableHint()
	default:
		return s.wordHint()
	}
}

func (s *Session) jamoHint() string {
	for _, c := range s.required.Consonants {
		if !hasLetter(s.consonants, c.ID) {
			return fmt.Sprintf("Select the consonant: %s (%s)", c.Glyph, c.Name)
		}
	}
	for _, v := range s.required.Vowels {
		if !hasLetter(s.vowels, v.ID) {
			return fmt.Sprintf("Select the vowel: %s (%s)", v.Glyph, v.Name)
		}
	}
	return "Great! You've selected all required letters. Press 'Next' to build syllables."
}

// nextTarget is the first syllable of the word with fewer built copies than it needs.
func (s *Session) nextTarget() (int, bool) {
	seen := map[string]int{}
	for i, sp := range s.word.Syllables {
		seen[sp.Text]++
		if countText(s.built, sp.Text) < seen[sp.Text] {
			return i, true
		}
	}
	return 0, false
}

func (s *Session) syllableHint() string {
	idx, ok := s.nextTarget()
	if !ok {
		return "All syllables are built. Press 'Next' to assemble the word."
	}
	t := s.word.Syllables[idx]
	hasInitial, hasVowel, hasFinal := len(s.consonants) > 0, len(s.vowels) > 0, len(s.consonants) > 1

	switch {
	case !hasInitial && !hasVowel:
		if t.HasFinal() {
			return fmt.Sprintf("Build %q (CVC): Select %s (initial) + %s + %s (final)", t.Text, t.Initial, t.Vowel, t.Final)
		}
		return fmt.Sprintf("Build %q (CV): Select %s + %s", t.Text, t.Initial, t.Vowel)
	case hasInitial && !hasVowel:
		if t.HasFinal() {
			return fmt.Sprintf("Now select %s (and optionally %s for final consonant)", t.Vowel, t.Final)
		}
		return fmt.Sprintf("Now select %s", t.Vowel)
	case !hasInitial && hasVowel:
		return fmt.Sprintf("Select %s as initial consonant", t.Initial)
	case !hasFinal:
		if !t.HasFinal() {
			return fmt.Sprintf("Press 'Build' to create %q (CV structure)", t.Text)
		}
		if t.Final == t.Initial {
			return fmt.Sprintf("Add %s as final consonant (you can reuse %s since it's the same letter)", t.Final, t.Initial)
		}
		return fmt.Sprintf("Add %s as final consonant", t.Final)
	default:
		return fmt.Sprintf("Press 'Build' to create %q (CVC structure)", t.Text)
	}
}

func (s *Session) wordHint() string {
	if len(s.assembled) >= len(s.word.Syllables) {
		return "Press 'Check' to verify your word construction"
	}
	next := s.word.Syllables[len(s.assembled)].Text
	switch {
	case countText(s.built, next) > countText(s.assembled, next):
		return fmt.Sprintf("Place %q in the next empty slot", next)
	case countText(s.built, next) > 0:
		slot := s.misplaced(next)
		return fmt.Sprintf("%q is in slot %d. Remove it and place %q there", next, slot+1, s.word.Syllables[slot].Text)
	}
	return fmt.Sprintf("Build %q first in Stage 2", next)
}

// misplaced is the first filled slot holding text where the word wants
// another syllable.
func (s *Session) misplaced(text string) int {
	for i, syl := range s.assembled {
		if syl.Text == text && s.word.Syllables[i].Text != text {
			return i
		}
	}
	return 0
}
