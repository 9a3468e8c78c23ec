// Package core holds the small types shared between the CLI and the
// terminal platform: runtime configuration and input actions.
package core

import (
	"math/rand"
	"time"
)

// RuntimeConfig contains configuration passed to the platform at startup.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for reproducible shuffles
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time
	}
}

// ResolveSeed replaces a zero seed with a time-based one.
func (c RuntimeConfig) ResolveSeed() RuntimeConfig {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// NewRand returns an RNG seeded from the config.
// Call ResolveSeed first if a zero seed should mean "random".
func (c RuntimeConfig) NewRand() *rand.Rand {
	return rand.New(rand.NewSource(c.Seed))
}
