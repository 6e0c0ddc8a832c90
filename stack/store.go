// File: store.go
// Role: Element stores behind Stack. Stores are unbounded; Stack enforces capacity
// and emptiness before calling pop/top.
package stack

import "github.com/katalvlaran/lvlist/list"

// store is the minimal LIFO surface both backings provide.
type store[T comparable] interface {
	push(v T)
	pop() T
	top() T
	len() int
	// topDown yields elements from top to bottom until fn returns false.
	topDown(fn func(v T) bool)
	// bottomUp returns a fresh bottom-to-top snapshot.
	bottomUp() []T
	clear()
}

// sliceStore keeps elements bottom-to-top in a slice.
type sliceStore[T comparable] struct {
	items []T
}

func newSliceStore[T comparable](capacity int) *sliceStore[T] {
	return &sliceStore[T]{items: make([]T, 0, capacity)}
}

func (s *sliceStore[T]) push(v T) { s.items = append(s.items, v) }

func (s *sliceStore[T]) pop() T {
	last := len(s.items) - 1
	v := s.items[last]
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
	return v
}

func (s *sliceStore[T]) top() T   { return s.items[len(s.items)-1] }
func (s *sliceStore[T]) len() int { return len(s.items) }

func (s *sliceStore[T]) topDown(fn func(v T) bool) {
	for i := len(s.items) - 1; i >= 0; i-- {
		if !fn(s.items[i]) {
			return
		}
	}
}

func (s *sliceStore[T]) bottomUp() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *sliceStore[T]) clear() { s.items = s.items[:0] }

// listStore keeps elements in a singly linked list whose head is the top.
type listStore[T comparable] struct {
	chain *list.Singly[T]
}

func newListStore[T comparable]() *listStore[T] {
	return &listStore[T]{chain: list.NewSingly[T]()}
}

func (s *listStore[T]) push(v T) { s.chain.Prepend(v) }

func (s *listStore[T]) pop() T {
	v, _ := s.chain.PopHead()
	return v
}

func (s *listStore[T]) top() T {
	v, _ := s.chain.PeekHead()
	return v
}

func (s *listStore[T]) len() int { return s.chain.Len() }

func (s *listStore[T]) topDown(fn func(v T) bool) {
	for v := range s.chain.Values() {
		if !fn(v) {
			return
		}
	}
}

// bottomUp reverses the head-first snapshot with an explicit loop.
func (s *listStore[T]) bottomUp() []T {
	out := s.chain.ToSlice()
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func (s *listStore[T]) clear() { s.chain.Clear() }
