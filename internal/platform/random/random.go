package random

import "math/rand/v2"

// Source is the randomness used for question and prompt selection.
type Source interface {
	IntN(n int) int
}

// New returns a process-seeded source.
func New() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Seeded returns a deterministic source for tests and replays.
func Seeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle permutes xs in place with Fisher-Yates.
func Shuffle[T any](src Source, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// Pick returns a uniformly chosen element. xs must not be empty.
func Pick[T any](src Source, xs []T) T {
	return xs[src.IntN(len(xs))]
}
