// File: cursor.go
// Role: Node positions for step-wise walks driven by the caller.
//
// A Cursor is only valid until the next mutation of the list it came from.
package list

// Cursor identifies one node of a list. It is comparable, so cursors can be
// held in containers such as a bounded stack while a walk is in progress.
type Cursor[T comparable] struct {
	node *singlyNode[T] // Singly
	idx  int            // Doubly, Circular
}

// Walker is implemented by every list kind. First returns the head position,
// Next the following one; both report false when the walk is over. A walk
// over a Circular list ends before head is revisited.
type Walker[T comparable] interface {
	First() (Cursor[T], bool)
	Next(c Cursor[T]) (Cursor[T], bool)
	At(c Cursor[T]) T
}

var (
	_ Walker[int] = (*Singly[int])(nil)
	_ Walker[int] = (*Doubly[int])(nil)
	_ Walker[int] = (*Circular[int])(nil)
)

// First returns the head position.
func (l *Singly[T]) First() (Cursor[T], bool) {
	return Cursor[T]{node: l.head, idx: nilIndex}, l.head != nil
}

// Next returns the position after c.
func (l *Singly[T]) Next(c Cursor[T]) (Cursor[T], bool) {
	if c.node == nil || c.node.next == nil {
		return Cursor[T]{idx: nilIndex}, false
	}
	return Cursor[T]{node: c.node.next, idx: nilIndex}, true
}

// At returns the value stored at c.
func (l *Singly[T]) At(c Cursor[T]) T { return c.node.value }

// First returns the head position.
func (l *Doubly[T]) First() (Cursor[T], bool) {
	return Cursor[T]{idx: l.head}, l.head != nilIndex
}

// Next returns the position after c.
func (l *Doubly[T]) Next(c Cursor[T]) (Cursor[T], bool) {
	if c.idx == nilIndex || l.nodes[c.idx].next == nilIndex {
		return Cursor[T]{idx: nilIndex}, false
	}
	return Cursor[T]{idx: l.nodes[c.idx].next}, true
}

// At returns the value stored at c.
func (l *Doubly[T]) At(c Cursor[T]) T { return l.nodes[c.idx].value }

// First returns the head position.
func (l *Circular[T]) First() (Cursor[T], bool) {
	return Cursor[T]{idx: l.head}, l.head != nilIndex
}

// Next returns the position after c; false once the next hop would reach head.
func (l *Circular[T]) Next(c Cursor[T]) (Cursor[T], bool) {
	if c.idx == nilIndex || l.nodes[c.idx].next == l.head {
		return Cursor[T]{idx: nilIndex}, false
	}
	return Cursor[T]{idx: l.nodes[c.idx].next}, true
}

// At returns the value stored at c.
func (l *Circular[T]) At(c Cursor[T]) T { return l.nodes[c.idx].value }
