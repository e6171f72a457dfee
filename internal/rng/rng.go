// Package rng provides the single source of randomness for combat and
// story checks. Everything that rolls goes through a Roller so tests can
// substitute a scripted source and pin outcomes.
package rng

import (
	"math/rand"
	"time"
)

// Roller draws random values for the game.
type Roller interface {
	// Between returns a uniform integer in [lo, hi], both inclusive.
	Between(lo, hi int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

type source struct {
	r *rand.Rand
}

// New returns a Roller seeded with the given value. A seed of 0 derives
// one from the current time.
func New(seed int64) Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &source{r: rand.New(rand.NewSource(seed))}
}

func (s *source) Between(lo, hi int) int {
	return lo + s.r.Intn(hi-lo+1)
}

func (s *source) Float64() float64 {
	return s.r.Float64()
}
