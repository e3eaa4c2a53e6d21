package engine

import (
	"math/rand/v2"
	"time"
)

// Random is the subset of *rand.Rand the engine needs.
type Random interface {
	IntN(n int) int
}

// NewRandom returns a PCG-backed generator for the given seed.
// It is not cryptographically secure.
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SeedFromClock derives a seed from wall-clock time.
func SeedFromClock(now time.Time) uint64 {
	return uint64(now.UnixNano())
}

// DrawTarget returns a value uniformly distributed in [1, upperBound].
func DrawTarget(rng Random, upperBound int) int {
	return rng.IntN(upperBound) + 1
}

// HintWindow returns [target - upperBound/10, target + upperBound/10]
// clamped to [1, upperBound].
func HintWindow(target, upperBound int) (low, high int) {
	spread := upperBound / 10
	low = target - spread
	high = target + spread
	if low < 1 {
		low = 1
	}
	if high > upperBound {
		high = upperBound
	}
	return low, high
}
