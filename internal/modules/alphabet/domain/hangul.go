package domain

import (
	"fmt"
	"slices"
)

const syllableBase = 0xAC00

var (
	initialJamo = []string{"ㄱ", "ㄲ", "ㄴ", "ㄷ", "ㄸ", "ㄹ", "ㅁ", "ㅂ", "ㅃ", "ㅅ", "ㅆ", "ㅇ", "ㅈ", "ㅉ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ"}
	medialJamo  = []string{"ㅏ", "ㅐ", "ㅑ", "ㅒ", "ㅓ", "ㅔ", "ㅕ", "ㅖ", "ㅗ", "ㅘ", "ㅙ", "ㅚ", "ㅛ", "ㅜ", "ㅝ", "ㅞ", "ㅟ", "ㅠ", "ㅡ", "ㅢ", "ㅣ"}
	finalJamo   = []string{"", "ㄱ", "ㄲ", "ㄳ", "ㄴ", "ㄵ", "ㄶ", "ㄷ", "ㄹ", "ㄺ", "ㄻ", "ㄼ", "ㄽ", "ㄾ", "ㄿ", "ㅀ", "ㅁ", "ㅂ", "ㅄ", "ㅅ", "ㅆ", "ㅇ", "ㅈ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ"}
)

// Compose joins compatibility jamo into a precomposed syllable block.
// final may be empty.
func Compose(initial, vowel, final string) (string, error) {
	i := slices.Index(initialJamo, initial)
	if i < 0 {
		return "", fmt.Errorf("%q is not an initial consonant", initial)
	}
	v := slices.Index(medialJamo, vowel)
	if v < 0 {
		return "", fmt.Errorf("%q is not a vowel", vowel)
	}
	f := slices.Index(finalJamo, final)
	if f < 0 {
		return "", fmt.Errorf("%q is not a final consonant", final)
	}
	return string(rune(syllableBase + (i*len(medialJamo)+v)*len(finalJamo) + f)), nil
}

// Decompose splits a precomposed syllable block back into jamo.
func Decompose(syllable string) (initial, vowel, final string, err error) {
	runes := []rune(syllable)
	if len(runes) != 1 {
		return "", "", "", fmt.Errorf("%q is not a single syllable", syllable)
	}
	offset := int(runes[0]) - syllableBase
	if offset < 0 || offset >= len(initialJamo)*len(medialJamo)*len(finalJamo) {
		return "", "", "", fmt.Errorf("%q is not a hangul syllable", syllable)
	}
	f := offset % len(finalJamo)
	v := (offset / len(finalJamo)) % len(medialJamo)
	i := offset / (len(finalJamo) * len(medialJamo))
	return initialJamo[i], medialJamo[v], finalJamo[f], nil
}
