// File: traverse.go
// Role: Read-only list walks that journal the visited values.
//
// Both modes visit head to terminal (Circular: up to, not including, the
// revisit of head) and never mutate the list.
package session

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlist/list"
	"github.com/katalvlaran/lvlist/stack"
)

// TraverseMode selects how a list walk is driven.
type TraverseMode int

const (
	// TraverseRecursive follows next links in a loop with an explicit accumulator,
	// standing in for a recursive visit(node.next) helper.
	TraverseRecursive TraverseMode = iota
	// TraverseStack keeps the current node on a bounded stack: pop it, record it,
	// push its successor.
	TraverseStack
)

// String returns "recursive", "stack" or TraverseMode(n).
func (m TraverseMode) String() string {
	switch m {
	case TraverseRecursive:
		return "recursive"
	case TraverseStack:
		return "stack"
	default:
		return fmt.Sprintf("TraverseMode(%d)", int(m))
	}
}

// joinValues renders visited values the way the log panel shows them.
func joinValues(values []string) string { return strings.Join(values, " -> ") }

// walkAccumulate visits every node from First to the end of the walk.
func walkAccumulate(w list.Walker[string]) []string {
	acc := []string{}
	for c, ok := w.First(); ok; c, ok = w.Next(c) {
		acc = append(acc, w.At(c))
	}
	return acc
}

// walkWithStack visits every node by cycling the current cursor through a stack.
func walkWithStack(w list.Walker[string]) ([]string, error) {
	out := []string{}
	head, ok := w.First()
	if !ok {
		return out, nil
	}
	// At most one cursor is pending at a time.
	pending, err := stack.New[list.Cursor[string]](stack.WithCapacity(1), stack.WithBacking(stack.BackingSlice))
	if err != nil {
		return nil, err
	}
	if err = pending.Push(head); err != nil {
		return nil, err
	}
	for !pending.IsEmpty() {
		cur, err := pending.Pop()
		if err != nil {
			return nil, err
		}
		out = append(out, w.At(cur))
		if next, ok := w.Next(cur); ok {
			if err = pending.Push(next); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// walker returns the list owned for kind as a Walker.
func (s *Session) walker(kind list.Kind) (list.Walker[string], error) {
	switch kind {
	case list.KindSingly:
		return s.singly, nil
	case list.KindDoubly:
		return s.doubly, nil
	case list.KindCircular:
		return s.circular, nil
	default:
		return nil, fmt.Errorf("%w: %d", list.ErrUnknownKind, int(kind))
	}
}

// Traverse walks the kind list head first and returns the visited values.
// The walk is journaled as one line, e.g. "Recursive traverse: A -> B" or
// "Iterative traverse (using a stack): A -> B".
//
// Errors: list.ErrUnknownKind, ErrUnknownTraverseMode.
func (s *Session) Traverse(kind list.Kind, mode TraverseMode) ([]string, error) {
	w, err := s.walker(kind)
	if err != nil {
		s.record(ActionTraverse, noKind, "", false, "Unknown list kind %d.", int(kind))
		return nil, err
	}

	switch mode {
	case TraverseRecursive:
		values := walkAccumulate(w)
		result := "Empty"
		if len(values) > 0 {
			result = joinValues(values)
		}
		s.record(ActionTraverse, kind, mode.String(), true, "Recursive traverse: %s", result)
		return values, nil

	case TraverseStack:
		values, err := walkWithStack(w)
		if err != nil {
			s.record(ActionTraverse, kind, mode.String(), false, "Iterative traverse failed: %v", err)
			return nil, err
		}
		if len(values) == 0 {
			s.record(ActionTraverse, kind, mode.String(), true, "Iterative traverse: List is empty")
			return values, nil
		}
		s.record(ActionTraverse, kind, mode.String(), true, "Iterative traverse (using a stack): %s", joinValues(values))
		return values, nil

	default:
		s.record(ActionTraverse, kind, mode.String(), false, "Unknown traverse mode %d.", int(mode))
		return nil, fmt.Errorf("%w: %d", ErrUnknownTraverseMode, int(mode))
	}
}
