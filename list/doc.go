// Package list provides the three classic linked-list flavours used by the
// lvlist visualizer: Singly, Doubly and Circular.
//
// All lists hold opaque comparable values (T comparable) and share one
// operation surface, the Sequence interface:
//
//	Append(v)      // add v after the terminal node        O(n)
//	Prepend(v)     // add v as the new head                O(1) (Circular: O(n))
//	Delete(v) bool // unlink the first v, head-to-tail     O(n)
//	Reverse()      // invert traversal order               O(n)
//	ToSlice() []T  // ordered snapshot, head first         O(n)
//	Values()       // restartable iter.Seq over the chain  O(n)
//	Len(), IsEmpty(), Clear()
//
// Representation:
//
//   - Singly keeps a plain chain of uniquely-owned forward pointers; the
//     terminal node's next link is nil.
//   - Doubly stores its nodes in an index arena. Forward and backward links
//     are arena indices, so back-links never own anything and no reference
//     cycle is formed. For every live node: next.prev == node and
//     prev.next == node whenever the neighbour exists; head.prev is absent.
//   - Circular also uses an arena. The last node's next always points back
//     to head; a single node points to itself; an empty list has no head.
//     Traversal stops on revisiting head by index identity, never by value,
//     so duplicate values cannot terminate a walk early.
//
// Not-found on Delete is reported through the boolean result; the list is
// left untouched. None of the lists are safe for concurrent mutation: every
// instance is owned by one caller acting one operation at a time.
//
// Example:
//
//	l := list.NewSingly[int]()
//	l.Append(1)
//	l.Append(2)
//	l.Prepend(0)   // [0 1 2]
//	l.Delete(1)    // true, [0 2]
//	l.Reverse()    // [2 0]
package list
