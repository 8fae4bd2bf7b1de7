package pomcp

import (
	"math/rand"
	"time"
)

// RNG is the minimal random-number surface the core draws from. A Planner
// owns exactly one RNG, rather than drawing from a process-wide generator,
// so that search runs are reproducible when seeded.
type RNG interface {
	Intn(n int) int
	Float64() float64
}

// SeedFunc produces a seed for a new Planner's RNG. Override it (e.g. in
// tests) to get reproducible searches; the default draws from wall-clock
// time.
type SeedFunc func() int64

// DefaultSeedFunc is the out-of-the-box SeedFunc, seeding from the current
// time.
var DefaultSeedFunc SeedFunc = func() int64 {
	return time.Now().UnixNano()
}

// NewRNG builds an RNG seeded via seed (or DefaultSeedFunc when seed is nil).
func NewRNG(seed SeedFunc) RNG {
	if seed == nil {
		seed = DefaultSeedFunc
	}
	return rand.New(rand.NewSource(seed()))
}
