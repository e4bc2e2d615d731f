package util

import "math/rand"

// New returns a deterministic random source. Seed 0 is mapped to 1 so a zero
// value config still yields a usable, repeatable stream.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Pick returns a uniformly chosen element of items. ok is false when items
// is empty.
func Pick[T any](rng *rand.Rand, items []T) (v T, ok bool) {
	if len(items) == 0 {
		return v, false
	}
	return items[rng.Intn(len(items))], true
}
