// File: singly.go
// Role: Singly linked list with a nil-terminated forward chain.
//
// Invariants:
//   - The terminal node's next link is nil.
//   - size equals the number of nodes reachable from head.
package list

import "iter"

// singlyNode holds one value and the forward link.
type singlyNode[T comparable] struct {
	value T
	next  *singlyNode[T]
}

// Singly is a singly linked list. The zero value is an empty list ready to use.
type Singly[T comparable] struct {
	head *singlyNode[T]
	size int
}

// NewSingly returns an empty Singly list.
func NewSingly[T comparable]() *Singly[T] {
	return &Singly[T]{}
}

// NewSinglyFrom returns a Singly list holding values in the given order.
// Complexity: O(n).
func NewSinglyFrom[T comparable](values ...T) *Singly[T] {
	l := NewSingly[T]()
	var tail *singlyNode[T]
	for _, v := range values {
		n := &singlyNode[T]{value: v}
		if tail == nil {
			l.head = n
		} else {
			tail.next = n
		}
		tail = n
		l.size++
	}

	return l
}

// Append adds v as the new terminal node.
// Complexity: O(n), the terminal is found by walking from head.
func (l *Singly[T]) Append(v T) {
	n := &singlyNode[T]{value: v}
	l.size++
	if l.head == nil {
		l.head = n
		return
	}
	last := l.head
	for last.next != nil {
		last = last.next
	}
	last.next = n
}

// Prepend adds v as the new head.
// Complexity: O(1).
func (l *Singly[T]) Prepend(v T) {
	l.head = &singlyNode[T]{value: v, next: l.head}
	l.size++
}

// Delete removes the first node, in head-to-tail order, whose value equals v.
// It returns false and leaves the list unchanged when no node matches.
// Complexity: O(n).
func (l *Singly[T]) Delete(v T) bool {
	var prev *singlyNode[T]
	cur := l.head
	for cur != nil && cur.value != v {
		prev = cur
		cur = cur.next
	}
	if cur == nil {
		return false
	}
	if prev == nil {
		l.head = cur.next
	} else {
		prev.next = cur.next
	}
	cur.next = nil // detach for GC
	l.size--

	return true
}

// Reverse flips every forward link in place; the old terminal becomes head.
// Complexity: O(n) time, O(1) extra space.
func (l *Singly[T]) Reverse() {
	var prev *singlyNode[T]
	cur := l.head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	l.head = prev
}

// PopHead removes and returns the head value.
// The boolean is false when the list is empty.
// Complexity: O(1).
func (l *Singly[T]) PopHead() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	l.head = n.next
	n.next = nil
	l.size--

	return n.value, true
}

// PeekHead returns the head value without removing it.
func (l *Singly[T]) PeekHead() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	return l.head.value, true
}

// ToSlice returns the values from head to terminal.
// Complexity: O(n).
func (l *Singly[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}

	return out
}

// Values returns a restartable iterator over the list, head first.
func (l *Singly[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// Len returns the number of nodes.
func (l *Singly[T]) Len() int { return l.size }

// IsEmpty reports whether the list has no head.
func (l *Singly[T]) IsEmpty() bool { return l.head == nil }

// Clear discards every node.
func (l *Singly[T]) Clear() {
	l.head = nil
	l.size = 0
}
