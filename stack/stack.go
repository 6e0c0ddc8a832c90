// File: stack.go
// Role: Bounded LIFO contract on top of an interchangeable store.
//
// Invariants:
//   - 0 <= Size() <= Cap() at all times.
//   - A failed Push/Pop/Peek leaves the stack exactly as it was.
package stack

import "fmt"

// Stack is a fixed-capacity LIFO container. Create it with New.
type Stack[T comparable] struct {
	capacity int
	backing  Backing
	items    store[T]
}

// New creates an empty Stack.
//
// Defaults: capacity DefaultCapacity, BackingSlice.
//
// Errors:
//   - ErrInvalidCapacity if WithCapacity(n) was given n <= 0.
//   - ErrUnknownBacking if WithBacking received an undeclared value.
//
// Complexity: O(capacity) for the slice backing (buffer preallocation), O(1) otherwise.
func New[T comparable](opts ...Option) (*Stack[T], error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	s := &Stack[T]{capacity: cfg.capacity, backing: cfg.backing}
	switch cfg.backing {
	case BackingList:
		s.items = newListStore[T]()
	default:
		s.items = newSliceStore[T](cfg.capacity)
	}

	return s, nil
}

// Push places v on top of the stack.
// Returns ErrOverflow, wrapped with the capacity, when the stack is full.
// Complexity: O(1).
func (s *Stack[T]) Push(v T) error {
	if s.items.len() >= s.capacity {
		return fmt.Errorf("%w (capacity %d)", ErrOverflow, s.capacity)
	}
	s.items.push(v)

	return nil
}

// Pop removes and returns the top element, or ErrUnderflow when empty.
// Complexity: O(1).
func (s *Stack[T]) Pop() (T, error) {
	if s.items.len() == 0 {
		var zero T
		return zero, ErrUnderflow
	}

	return s.items.pop(), nil
}

// Peek returns the top element without removing it, or ErrUnderflow when empty.
// Complexity: O(1).
func (s *Stack[T]) Peek() (T, error) {
	if s.items.len() == 0 {
		var zero T
		return zero, ErrUnderflow
	}

	return s.items.top(), nil
}

// Search scans from the top down and returns the 1-based distance from the
// top to the first element equal to v. ok is false if v is not on the stack.
// Complexity: O(n).
func (s *Stack[T]) Search(v T) (pos int, ok bool) {
	i := 0
	s.items.topDown(func(x T) bool {
		i++
		if x == v {
			pos, ok = i, true
			return false
		}
		return true
	})

	return pos, ok
}

// Size returns the number of elements.
func (s *Stack[T]) Size() int { return s.items.len() }

// Cap returns the fixed capacity.
func (s *Stack[T]) Cap() int { return s.capacity }

// IsEmpty reports whether Size() == 0.
func (s *Stack[T]) IsEmpty() bool { return s.items.len() == 0 }

// IsFull reports whether Size() == Cap().
func (s *Stack[T]) IsFull() bool { return s.items.len() >= s.capacity }

// Backing reports the store chosen at construction.
func (s *Stack[T]) Backing() Backing { return s.backing }

// Clear removes every element; capacity and backing are kept.
func (s *Stack[T]) Clear() { s.items.clear() }

// ToSlice returns the elements bottom to top.
// Complexity: O(n).
func (s *Stack[T]) ToSlice() []T { return s.items.bottomUp() }
