package engine

import "math/rand"

// Shuffle returns a uniformly shuffled copy of items using a Fisher-Yates
// pass. The input slice is not modified.
func Shuffle[T any](rng *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
