// Package stack implements a bounded LIFO stack with explicit overflow and
// underflow signalling and positional search.
//
// A Stack is created once with a fixed positive capacity (default 10) and
// one of two interchangeable backings:
//
//	BackingSlice — flat resizable buffer, top is the last element (default)
//	BackingList  — list.Singly, top is the list head (push = Prepend, pop = PopHead)
//
// The backing is a construction-time choice only; both obey the same
// contract:
//
//	Push(v)   ErrOverflow when Size() == Cap(); stack unchanged
//	Pop()     ErrUnderflow when empty; stack unchanged
//	Peek()    ErrUnderflow when empty (strict policy, no "no value" marker)
//	Search(v) 1-based distance from the top to the topmost v, ok=false if absent
//	ToSlice() bottom-to-top snapshot
//
// Errors are recoverable sentinels; match them with errors.Is.
package stack
