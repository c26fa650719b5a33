package generator

import (
	"math/rand"
	"time"
)

// Factory hands out a fresh Generator for every request so no random source
// is shared between goroutines.
type Factory struct {
	seed int64
	now  func() time.Time
}

// NewFactory returns a Factory. A non-zero seed makes every Generator replay
// the same sequence; zero seeds each Generator from the clock.
func NewFactory(seed int64, now func() time.Time) *Factory {
	if now == nil {
		now = time.Now
	}
	return &Factory{seed: seed, now: now}
}

// New builds a Generator with its own random source.
func (f *Factory) New() *Generator {
	seed := f.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(rand.NewSource(seed), f.now)
}
