// Package lvlist is the data-structure engine behind an educational
// linked-list and stack visualizer: every user action mutates exactly one
// structure, and the display is refreshed from an ordered snapshot.
//
// What is inside?
//
//	list/      — Singly, Doubly (index arena with non-owning back-links) and
//	             Circular (wrap-around, identity-terminated traversal) lists
//	stack/     — bounded LIFO Stack with ErrOverflow / ErrUnderflow, top-down
//	             Search, and a slice or linked-list backing
//	recursion/ — tail vs. head recursion call-stack frames on a bounded stack
//	session/   — one instance of each structure per session, input checks,
//	             a journal of human-readable log lines and an OnEvent hook
//	examples/  — runnable walkthrough of a full session
//
// Quick ASCII example of a circular list after Append("A","B","C"):
//
//	head
//	 │
//	 A ──▶ B ──▶ C
//	 ▲           │
//	 └───────────┘
//
// Everything is in-memory, single-owner and synchronous: no operation blocks,
// and none is safe to run concurrently on the same instance.
//
//	go get github.com/katalvlaran/lvlist
package lvlist
