// File: config.go
// Role: Session configuration and deterministic defaults.
//
// Defaults:
//   - stack capacity = stack.DefaultCapacity (10)
//   - stack backing  = stack.BackingSlice
//   - seed           = 0 (resolved to defaultSeed by rngFromSeed)
//   - onEvent        = nil (journal only)
//   - journalLimit   = 0 (unlimited)
//   - clock          = time.Now
package session

import (
	"time"

	"github.com/katalvlaran/lvlist/stack"
)

// Option configures a Session before creation. Options apply in order; last wins.
type Option func(*config)

type config struct {
	stackCapacity int
	stackBacking  stack.Backing
	seed          int64
	onEvent       func(Event)
	journalLimit  int
	clock         func() time.Time
}

// WithStackCapacity sets the capacity of the session's stack.
func WithStackCapacity(n int) Option {
	return func(c *config) { c.stackCapacity = n }
}

// WithStackBacking selects the store of the session's stack.
func WithStackBacking(b stack.Backing) Option {
	return func(c *config) { c.stackBacking = b }
}

// WithSeed makes AppendRandom reproducible. Seed 0 selects the fixed default seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithOnEvent installs fn to receive every Event right after it is journaled.
func WithOnEvent(fn func(Event)) Option {
	return func(c *config) { c.onEvent = fn }
}

// WithJournalLimit keeps only the most recent n events. n <= 0 means unlimited.
func WithJournalLimit(n int) Option {
	return func(c *config) { c.journalLimit = n }
}

// WithClock sets the source of Event.Time. A nil fn keeps time.Now.
func WithClock(fn func() time.Time) Option {
	return func(c *config) {
		if fn != nil {
			c.clock = fn
		}
	}
}

func newConfig(opts ...Option) config {
	cfg := config{
		stackCapacity: stack.DefaultCapacity,
		stackBacking:  stack.BackingSlice,
		clock:         time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.journalLimit < 0 {
		cfg.journalLimit = 0
	}

	return cfg
}
