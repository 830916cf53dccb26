package cannings

import (
	"golang.org/x/exp/rand"
)

// globalRand is the shared package source used whenever a Model carries no
// generator of its own. The core never re-seeds it internally: callers
// control reproducibility by calling Seed before invoking the model, and two
// runs with identical seed and identical call sequence produce identical
// outcomes.
var globalRand = rand.New(rand.NewSource(1))

// Seed resets the shared package source. Convenience for top-level scripts;
// concurrent trials should inject independent generators with NewRand
// instead (a single Model run is inherently sequential and the shared source
// is not synchronized).
func Seed(seed uint64) {
	globalRand.Seed(seed)
}

// NewRand returns an independent generator seeded with seed. Use one per
// goroutine when parallelizing trials externally.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// source resolves an optional caller-supplied generator to the shared one.
func source(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return globalRand
	}
	return rng
}

// uniformSource is the capability the sequential draws actually need.
// *rand.Rand satisfies it.
type uniformSource interface {
	Float64() float64
}
