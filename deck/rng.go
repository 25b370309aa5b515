package deck

import (
	"math/rand"
	"time"
)

// RNG abstracts random number generation so shuffles can be made deterministic
type RNG interface {
	// Intn returns a non-negative random int in [0, n)
	Intn(n int) int
}

// NewRNG returns an RNG seeded from the clock
func NewRNG() RNG {
	return NewSeededRNG(time.Now().UnixNano())
}

// NewSeededRNG returns an RNG that always produces the same sequence for a seed
func NewSeededRNG(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}
