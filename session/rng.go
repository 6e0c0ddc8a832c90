// File: rng.go
// Role: Deterministic random values for AppendRandom.
//
// math/rand.Rand is not goroutine-safe; each Session owns its own stream.
package session

import "math/rand"

// defaultSeed is used when the caller passes seed == 0.
const defaultSeed int64 = 1

// Bounds of values produced by AppendRandom, inclusive.
const (
	RandomMin = 1
	RandomMax = 100
)

// rngFromSeed returns a deterministic *rand.Rand: seed == 0 ⇒ defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// randomValue draws uniformly from [RandomMin, RandomMax].
func randomValue(r *rand.Rand) int {
	return RandomMin + r.Intn(RandomMax-RandomMin+1)
}
