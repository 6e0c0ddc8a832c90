// File: circular.go
// Role: Circular singly linked list stored in an index arena.
//
// Invariants:
//   - Empty list ⇔ head == nilIndex.
//   - Otherwise following next from head returns to head after exactly size hops.
//   - A single node links to itself.
//
// Traversal termination compares arena indices, never values.
package list

import "iter"

type circularNode[T comparable] struct {
	value T
	next  int
}

// Circular is a circular linked list. Use NewCircular to construct one.
type Circular[T comparable] struct {
	nodes []circularNode[T]
	head  int
	free  int
	size  int
}

// NewCircular returns an empty Circular list.
func NewCircular[T comparable]() *Circular[T] {
	return &Circular[T]{head: nilIndex, free: nilIndex}
}

// NewCircularFrom returns a Circular list holding values in the given order.
// Complexity: O(n²) because every Append locates the terminal.
func NewCircularFrom[T comparable](values ...T) *Circular[T] {
	l := NewCircular[T]()
	for _, v := range values {
		l.Append(v)
	}

	return l
}

func (l *Circular[T]) alloc(v T) int {
	n := circularNode[T]{value: v, next: nilIndex}
	if l.free != nilIndex {
		i := l.free
		l.free = l.nodes[i].next
		l.nodes[i] = n
		return i
	}
	l.nodes = append(l.nodes, n)

	return len(l.nodes) - 1
}

func (l *Circular[T]) release(i int) {
	var zero T
	l.nodes[i] = circularNode[T]{value: zero, next: l.free}
	l.free = i
}

// terminal returns the node whose next link is head, or nilIndex when empty.
func (l *Circular[T]) terminal() int {
	if l.head == nilIndex {
		return nilIndex
	}
	i := l.head
	for l.nodes[i].next != l.head {
		i = l.nodes[i].next
	}

	return i
}

// insertAfterTerminal links a fresh node for v between the terminal and head
// and returns its index. On an empty list the node becomes a self-linked head.
func (l *Circular[T]) insertAfterTerminal(v T) int {
	last := l.terminal()
	i := l.alloc(v)
	l.size++
	if last == nilIndex {
		l.head = i
		l.nodes[i].next = i
		return i
	}
	l.nodes[last].next = i
	l.nodes[i].next = l.head

	return i
}

// Append adds v just before head in traversal order, restoring the wrap link.
// Complexity: O(n).
func (l *Circular[T]) Append(v T) {
	l.insertAfterTerminal(v)
}

// Prepend adds v as the new head; the terminal's wrap link is retargeted to it.
// Complexity: O(n), the terminal has to be located.
func (l *Circular[T]) Prepend(v T) {
	l.head = l.insertAfterTerminal(v)
}

// Delete removes the first node, starting at head, whose value equals v.
//
// The walk stops on a match or on revisiting head (not found, returns false).
// Removal cases:
//   - single node: the list becomes empty;
//   - head with other nodes: head moves to its successor and the terminal's
//     wrap link follows it;
//   - any other node: predecessor is spliced to successor.
//
// Complexity: O(n).
func (l *Circular[T]) Delete(v T) bool {
	if l.head == nilIndex {
		return false
	}
	prev := nilIndex
	cur := l.head
	for l.nodes[cur].value != v {
		prev = cur
		cur = l.nodes[cur].next
		if cur == l.head {
			return false
		}
	}

	switch {
	case cur == l.head && l.nodes[cur].next == cur:
		l.head = nilIndex
	case cur == l.head:
		last := l.terminal()
		l.head = l.nodes[cur].next
		l.nodes[last].next = l.head
	default:
		l.nodes[prev].next = l.nodes[cur].next
	}
	l.release(cur)
	l.size--
	if l.size == 0 {
		l.nodes = nil
		l.free = nilIndex
	}

	return true
}

// Reverse inverts the value order while keeping the list circular.
// The traversal order is captured once, the list is cleared and rebuilt
// by re-appending the captured values back to front.
// Complexity: O(n²) time (each Append locates the terminal), O(n) space.
func (l *Circular[T]) Reverse() {
	if l.size < 2 {
		return
	}
	values := l.ToSlice()
	l.Clear()
	for i := len(values) - 1; i >= 0; i-- {
		l.Append(values[i])
	}
}

// ToSlice returns the values from head up to, not including, the revisit of head.
// An empty list yields an empty slice.
// Complexity: O(n).
func (l *Circular[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for v := range l.Values() {
		out = append(out, v)
	}

	return out
}

// Values returns a restartable iterator yielding each node once, head first.
func (l *Circular[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.head == nilIndex {
			return
		}
		i := l.head
		for {
			if !yield(l.nodes[i].value) {
				return
			}
			i = l.nodes[i].next
			if i == l.head {
				return
			}
		}
	}
}

// Walk follows next links from head steps times and returns the value of
// every node visited, head included, wrapping around as often as needed.
// It returns an empty slice for an empty list or steps <= 0.
//
// Example: on [A B C], Walk(4) = [A B C A].
func (l *Circular[T]) Walk(steps int) []T {
	if l.head == nilIndex || steps <= 0 {
		return []T{}
	}
	out := make([]T, 0, steps)
	i := l.head
	for s := 0; s < steps; s++ {
		out = append(out, l.nodes[i].value)
		i = l.nodes[i].next
	}

	return out
}

// StepsToHead counts the next hops from head until head is revisited.
// It is 0 for an empty list and equals Len otherwise.
func (l *Circular[T]) StepsToHead() int {
	if l.head == nilIndex {
		return 0
	}
	steps := 1
	for i := l.nodes[l.head].next; i != l.head; i = l.nodes[i].next {
		steps++
	}

	return steps
}

// Len returns the number of live nodes.
func (l *Circular[T]) Len() int { return l.size }

// IsEmpty reports whether the list has no head.
func (l *Circular[T]) IsEmpty() bool { return l.head == nilIndex }

// Clear discards every node and resets the arena.
func (l *Circular[T]) Clear() {
	l.nodes = nil
	l.head = nilIndex
	l.free = nilIndex
	l.size = 0
}
