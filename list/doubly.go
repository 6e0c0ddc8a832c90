// File: doubly.go
// Role: Doubly linked list stored in an index arena.
//
// Ownership:
//   - nodes is the single owner of every node; next/prev are arena indices.
//   - Freed slots are chained through next on the free list and reused.
//
// Invariants (for every live node i):
//   - nodes[i].next != nilIndex ⇒ nodes[nodes[i].next].prev == i
//   - nodes[i].prev != nilIndex ⇒ nodes[nodes[i].prev].next == i
//   - nodes[head].prev == nilIndex
package list

import "iter"

type doublyNode[T comparable] struct {
	value T
	next  int
	prev  int
}

// Doubly is a doubly linked list. Use NewDoubly to construct one.
type Doubly[T comparable] struct {
	nodes []doublyNode[T]
	head  int
	free  int // head of the free-slot chain, nilIndex if none
	size  int
}

// NewDoubly returns an empty Doubly list.
func NewDoubly[T comparable]() *Doubly[T] {
	return &Doubly[T]{head: nilIndex, free: nilIndex}
}

// NewDoublyFrom returns a Doubly list holding values in the given order.
// Complexity: O(n).
func NewDoublyFrom[T comparable](values ...T) *Doubly[T] {
	l := NewDoubly[T]()
	for _, v := range values {
		l.Append(v)
	}

	return l
}

// alloc stores v in a free slot (or a new one) and returns its index.
func (l *Doubly[T]) alloc(v T) int {
	n := doublyNode[T]{value: v, next: nilIndex, prev: nilIndex}
	if l.free != nilIndex {
		i := l.free
		l.free = l.nodes[i].next
		l.nodes[i] = n
		return i
	}
	l.nodes = append(l.nodes, n)

	return len(l.nodes) - 1
}

// release returns slot i to the free list.
func (l *Doubly[T]) release(i int) {
	var zero T
	l.nodes[i] = doublyNode[T]{value: zero, next: l.free, prev: nilIndex}
	l.free = i
}

// terminal returns the index of the last node, or nilIndex when empty.
func (l *Doubly[T]) terminal() int {
	if l.head == nilIndex {
		return nilIndex
	}
	i := l.head
	for l.nodes[i].next != nilIndex {
		i = l.nodes[i].next
	}

	return i
}

// Append adds v after the terminal node and links it back to its predecessor.
// Complexity: O(n).
func (l *Doubly[T]) Append(v T) {
	last := l.terminal()
	i := l.alloc(v)
	l.size++
	if last == nilIndex {
		l.head = i
		return
	}
	l.nodes[last].next = i
	l.nodes[i].prev = last
}

// Prepend adds v as the new head; the old head's prev points to it.
// Complexity: O(1) amortised.
func (l *Doubly[T]) Prepend(v T) {
	i := l.alloc(v)
	l.size++
	if l.head != nilIndex {
		l.nodes[l.head].prev = i
		l.nodes[i].next = l.head
	}
	l.head = i
}

// Delete removes the first node, in head-to-tail order, whose value equals v.
//
// Implementation:
//   - Stage 1: Walk forward from head until a value match.
//   - Stage 2: Point the predecessor's next (or head) past the node.
//   - Stage 3: Point the successor's prev (if any) at the predecessor.
//
// Returns false and leaves the list unchanged when v is absent.
// Complexity: O(n).
func (l *Doubly[T]) Delete(v T) bool {
	i := l.head
	for i != nilIndex && l.nodes[i].value != v {
		i = l.nodes[i].next
	}
	if i == nilIndex {
		return false
	}
	prev, next := l.nodes[i].prev, l.nodes[i].next
	if prev != nilIndex {
		l.nodes[prev].next = next
	} else {
		l.head = next
	}
	if next != nilIndex {
		l.nodes[next].prev = prev
	}
	l.release(i)
	l.size--

	return true
}

// Reverse swaps the roles of next and prev on every node in place.
// The old terminal becomes head.
// Complexity: O(n) time, O(1) extra space.
func (l *Doubly[T]) Reverse() {
	last := nilIndex
	for i := l.head; i != nilIndex; {
		n := &l.nodes[i]
		n.next, n.prev = n.prev, n.next
		last = i
		i = n.prev // old next
	}
	if last != nilIndex {
		l.head = last
	}
}

// ToSlice returns the values from head to terminal.
// Complexity: O(n).
func (l *Doubly[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for i := l.head; i != nilIndex; i = l.nodes[i].next {
		out = append(out, l.nodes[i].value)
	}

	return out
}

// Backward walks to the terminal node and returns the values reached by
// following prev links back to head. For a consistent list it equals
// ToSlice in reverse order.
// Complexity: O(n).
func (l *Doubly[T]) Backward() []T {
	out := make([]T, 0, l.size)
	for i := l.terminal(); i != nilIndex; i = l.nodes[i].prev {
		out = append(out, l.nodes[i].value)
	}

	return out
}

// Values returns a restartable iterator over the list, head first.
func (l *Doubly[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.head; i != nilIndex; i = l.nodes[i].next {
			if !yield(l.nodes[i].value) {
				return
			}
		}
	}
}

// Len returns the number of live nodes.
func (l *Doubly[T]) Len() int { return l.size }

// IsEmpty reports whether the list has no head.
func (l *Doubly[T]) IsEmpty() bool { return l.head == nilIndex }

// Clear discards every node and resets the arena.
func (l *Doubly[T]) Clear() {
	l.nodes = nil
	l.head = nilIndex
	l.free = nilIndex
	l.size = 0
}
