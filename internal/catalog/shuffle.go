package catalog

// Intner is the random source used for shuffling.
// *math/rand.Rand satisfies it.
type Intner interface {
	Intn(n int) int
}

// Shuffle returns a uniformly permuted copy of items (Fisher-Yates).
// The input slice is left untouched.
func Shuffle[T any](rng Intner, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
