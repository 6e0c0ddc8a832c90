// File: types.go
// Role: Sentinel errors, Backing selector and construction options.
package stack

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is returned by Push when the stack is at capacity.
	ErrOverflow = errors.New("stack: overflow")

	// ErrUnderflow is returned by Pop and Peek on an empty stack.
	ErrUnderflow = errors.New("stack: underflow")

	// ErrInvalidCapacity indicates a non-positive capacity option.
	ErrInvalidCapacity = errors.New("stack: capacity must be positive")

	// ErrUnknownBacking indicates a Backing value that names no store.
	ErrUnknownBacking = errors.New("stack: unknown backing")
)

// DefaultCapacity is the capacity used when WithCapacity is not given.
const DefaultCapacity = 10

// Backing selects the storage that holds the stack's elements.
type Backing int

const (
	// BackingSlice stores elements in a flat slice; the top is the last element.
	BackingSlice Backing = iota
	// BackingList stores elements in a singly linked list; the top is the head.
	BackingList
)

// String returns "slice", "list" or Backing(n) for unknown values.
func (b Backing) String() string {
	switch b {
	case BackingSlice:
		return "slice"
	case BackingList:
		return "list"
	default:
		return fmt.Sprintf("Backing(%d)", int(b))
	}
}

// Option configures a Stack before creation.
type Option func(*config)

type config struct {
	capacity int
	backing  Backing
}

// WithCapacity sets the maximum number of elements. Must be > 0.
func WithCapacity(n int) Option {
	return func(c *config) { c.capacity = n }
}

// WithBacking selects the element store.
func WithBacking(b Backing) Option {
	return func(c *config) { c.backing = b }
}

// newConfig applies opts over the defaults, last option wins, then validates.
func newConfig(opts ...Option) (config, error) {
	cfg := config{capacity: DefaultCapacity, backing: BackingSlice}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.capacity <= 0 {
		return cfg, fmt.Errorf("%w: got %d", ErrInvalidCapacity, cfg.capacity)
	}
	if cfg.backing != BackingSlice && cfg.backing != BackingList {
		return cfg, fmt.Errorf("%w: %d", ErrUnknownBacking, int(cfg.backing))
	}

	return cfg, nil
}
