package domain

import (
	"slices"

	alphabetdomain "hangul/internal/modules/alphabet/domain"
)

// UnlockAverage is the tier average a learner must exceed to open the next tier.
const UnlockAverage = 70

// Tiers exposes letter difficulty; the alphabet catalog satisfies it.
type Tiers interface {
	Difficulty(id int) int
	IDsAtLevel(level int) []int
}

// CurrentLevel is the highest difficulty among unlocked letters, 1 when none are known.
func CurrentLevel(unlocked []int, tiers Tiers) int {
	level := alphabetdomain.MinDifficulty
	for _, id := range unlocked {
		level = max(level, tiers.Difficulty(id))
	}
	return level
}

// ComputeUnlocks opens every letter of the next tier once the unlocked letters
// of the current tier average more than UnlockAverage. Missing scores count as
// zero. The result is sorted, never drops an input id and is stable under
// repeated calls with the same arguments.
func ComputeUnlocks(scores map[int]int, unlocked []int, tiers Tiers) []int {
	out := slices.Sorted(slices.Values(unlocked))
	out = slices.Compact(out)
	level := CurrentLevel(out, tiers)
	if level >= alphabetdomain.MaxDifficulty {
		return out
	}
	n, sum := 0, 0
	for _, id := range out {
		if tiers.Difficulty(id) == level {
			n++
			sum += scores[id]
		}
	}
	if n == 0 || sum <= UnlockAverage*n {
		return out
	}
	for _, id := range tiers.IDsAtLevel(level + 1) {
		out, _ = insertSorted(out, id)
	}
	return out
}
