package domain

import (
	"fmt"
	"slices"
)

// StarterLetterIDs are unlocked on a fresh profile: the first five consonants and the first five vowels.
var StarterLetterIDs = []int{1, 2, 3, 4, 5, 15, 16, 17, 18, 19}

// Catalog is the read-only letter and word reference. It is built once and shared.
type Catalog struct {
	letters []Letter
	words   []ExampleWord
	byID    map[int]int
	byGlyph map[string]int
	wordIdx map[int]int
}

func NewCatalog(letters []Letter, words []ExampleWord) (*Catalog, error) {
	c := &Catalog{
		letters: slices.Clone(letters),
		words:   slices.Clone(words),
		byID:    make(map[int]int, len(letters)),
		byGlyph: make(map[string]int, len(letters)),
		wordIdx: make(map[int]int, len(words)),
	}
	tiers := map[int]int{}
	for i, l := range c.letters {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.byID[l.ID]; ok {
			return nil, fmt.Errorf("duplicate letter id %d", l.ID)
		}
		if _, ok := c.byGlyph[l.Glyph]; ok {
			return nil, fmt.Errorf("duplicate letter glyph %q", l.Glyph)
		}
		c.byID[l.ID] = i
		c.byGlyph[l.Glyph] = i
		tiers[l.Difficulty]++
	}
	for _, id := range StarterLetterIDs {
		if _, ok := c.byID[id]; !ok {
			return nil, fmt.Errorf("starter letter %d missing from catalog", id)
		}
	}
	for level := MinDifficulty; level <= c.MaxLevel(); level++ {
		if tiers[level] == 0 {
			return nil, fmt.Errorf("difficulty tier %d has no letters", level)
		}
	}
	for i, w := range c.words {
		if err := w.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.wordIdx[w.ID]; ok {
			return nil, fmt.Errorf("duplicate word id %d", w.ID)
		}
		for _, s := range w.Syllables {
			if err := c.checkJamo(w.ID, s); err != nil {
				return nil, err
			}
		}
		c.wordIdx[w.ID] = i
	}
	return c, nil
}

func (c *Catalog) checkJamo(wordID int, s SyllableSpec) error {
	want := []struct {
		glyph    string
		category Category
	}{{s.Initial, CategoryConsonant}, {s.Vowel, CategoryVowel}, {s.Final, CategoryConsonant}}
	for _, w := range want {
		if w.glyph == "" {
			continue
		}
		l, ok := c.LetterByGlyph(w.glyph)
		if !ok {
			return fmt.Errorf("word %d: jamo %q is not in the catalog", wordID, w.glyph)
		}
		if l.Category != w.category {
			return fmt.Errorf("word %d: jamo %q is a %s", wordID, w.glyph, l.Category)
		}
	}
	return nil
}

// Letters returns every letter in catalog order.
func (c *Catalog) Letters() []Letter { return slices.Clone(c.letters) }

func (c *Catalog) Words() []ExampleWord { return slices.Clone(c.words) }

func (c *Catalog) Len() int { return len(c.letters) }

func (c *Catalog) Letter(id int) (Letter, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Letter{}, false
	}
	return c.letters[i], true
}

func (c *Catalog) LetterByGlyph(glyph string) (Letter, bool) {
	i, ok := c.byGlyph[glyph]
	if !ok {
		return Letter{}, false
	}
	return c.letters[i], true
}

func (c *Catalog) Word(id int) (ExampleWord, bool) {
	i, ok := c.wordIdx[id]
	if !ok {
		return ExampleWord{}, false
	}
	return c.words[i], true
}

// Difficulty returns the tier of a letter, or 0 for unknown ids.
func (c *Catalog) Difficulty(id int) int {
	l, ok := c.Letter(id)
	if !ok {
		return 0
	}
	return l.Difficulty
}

// IDsAtLevel lists letter ids of one difficulty tier in catalog order.
func (c *Catalog) IDsAtLevel(level int) []int {
	ids := []int{}
	for _, l := range c.letters {
		if l.Difficulty == level {
			ids = append(ids, l.ID)
		}
	}
	return ids
}

func (c *Catalog) MaxLevel() int {
	top := MinDifficulty
	for _, l := range c.letters {
		top = max(top, l.Difficulty)
	}
	return top
}

// Filter keeps letters matching both criteria. Empty category or zero level matches all.
func (c *Catalog) Filter(category Category, level int) []Letter {
	out := []Letter{}
	for _, l := range c.letters {
		if category != "" && l.Category != category {
			continue
		}
		if level != 0 && l.Difficulty != level {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Subset returns the letters whose ids are in ids, in catalog order.
func (c *Catalog) Subset(ids []int) []Letter {
	out := []Letter{}
	for _, l := range c.letters {
		if slices.Contains(ids, l.ID) {
			out = append(out, l)
		}
	}
	return out
}
