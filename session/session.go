// Package session is the caller-facing layer of lvlist: it owns one instance
// of every structure for the lifetime of a visualizer session, validates raw
// user input, dispatches actions and turns every outcome into a human-readable
// journal Event.
//
// The core packages never log. Session is where log lines are produced, and
// WithOnEvent lets a presentation layer forward them to its output panel.
//
// A Session is not safe for concurrent use; actions run one at a time and each
// completes before the next snapshot is read.
package session

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/lvlist/list"
	"github.com/katalvlaran/lvlist/recursion"
	"github.com/katalvlaran/lvlist/stack"
)

var (
	// ErrEmptyValue indicates an action that needs a value received "".
	ErrEmptyValue = errors.New("session: value is empty")

	// ErrInvalidValue indicates a stack value that is not a base-10 integer.
	ErrInvalidValue = errors.New("session: value is not an integer")

	// ErrUnknownTraverseMode indicates a TraverseMode other than TraverseRecursive or TraverseStack.
	ErrUnknownTraverseMode = errors.New("session: unknown traverse mode")
)

// Session holds the structures driven by one visualizer.
type Session struct {
	singly   *list.Singly[string]
	doubly   *list.Doubly[string]
	circular *list.Circular[string]
	stack    *stack.Stack[int]

	rng     *rand.Rand
	onEvent func(Event)
	now     func() time.Time
	limit   int
	journal []Event
	seq     uint64
}

// New creates a Session with empty structures.
//
// Errors: stack.ErrInvalidCapacity or stack.ErrUnknownBacking from the stack options.
func New(opts ...Option) (*Session, error) {
	cfg := newConfig(opts...)
	st, err := stack.New[int](stack.WithCapacity(cfg.stackCapacity), stack.WithBacking(cfg.stackBacking))
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	return &Session{
		singly:   list.NewSingly[string](),
		doubly:   list.NewDoubly[string](),
		circular: list.NewCircular[string](),
		stack:    st,
		rng:      rngFromSeed(cfg.seed),
		onEvent:  cfg.onEvent,
		now:      cfg.clock,
		limit:    cfg.journalLimit,
	}, nil
}

// sequence returns the list owned for kind.
func (s *Session) sequence(kind list.Kind) (list.Sequence[string], error) {
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

// record appends an event to the journal, trims it to the limit and notifies the hook.
func (s *Session) record(action Action, kind list.Kind, value string, ok bool, format string, args ...any) {
	s.seq++
	ev := Event{
		Seq:     s.seq,
		Time:    s.now(),
		Action:  action,
		Kind:    kind,
		Value:   value,
		OK:      ok,
		Message: fmt.Sprintf(format, args...),
	}
	s.journal = append(s.journal, ev)
	if s.limit > 0 && len(s.journal) > s.limit {
		s.journal = append(s.journal[:0], s.journal[len(s.journal)-s.limit:]...)
	}
	if s.onEvent != nil {
		s.onEvent(ev)
	}
}

// listTarget resolves kind and checks raw for value-taking list actions.
func (s *Session) listTarget(action Action, kind list.Kind, raw string) (list.Sequence[string], error) {
	seq, err := s.sequence(kind)
	if err != nil {
		s.record(action, noKind, raw, false, "Unknown list kind %d.", int(kind))
		return nil, err
	}
	if raw == "" && action != ActionReverse && action != ActionRandom && action != ActionClearList {
		s.record(action, kind, raw, false, "Input Error: please enter a value to %s.", action)
		return nil, ErrEmptyValue
	}

	return seq, nil
}

// Append adds raw to the end of the kind list.
func (s *Session) Append(kind list.Kind, raw string) error {
	seq, err := s.listTarget(ActionAppend, kind, raw)
	if err != nil {
		return err
	}
	seq.Append(raw)
	s.record(ActionAppend, kind, raw, true, "Appended '%s' to %s list.", raw, kind)

	return nil
}

// Prepend adds raw as the head of the kind list.
func (s *Session) Prepend(kind list.Kind, raw string) error {
	seq, err := s.listTarget(ActionPrepend, kind, raw)
	if err != nil {
		return err
	}
	seq.Prepend(raw)
	s.record(ActionPrepend, kind, raw, true, "Prepended '%s' to %s list.", raw, kind)

	return nil
}

// Delete removes the first raw from the kind list. Not-found is (false, nil).
func (s *Session) Delete(kind list.Kind, raw string) (bool, error) {
	seq, err := s.listTarget(ActionDelete, kind, raw)
	if err != nil {
		return false, err
	}
	if !seq.Delete(raw) {
		s.record(ActionDelete, kind, raw, false, "Failed to delete '%s' (not found) from %s list.", raw, kind)
		return false, nil
	}
	s.record(ActionDelete, kind, raw, true, "Deleted '%s' from %s list.", raw, kind)

	return true, nil
}

// Reverse inverts the kind list.
func (s *Session) Reverse(kind list.Kind) error {
	seq, err := s.listTarget(ActionReverse, kind, "")
	if err != nil {
		return err
	}
	seq.Reverse()
	s.record(ActionReverse, kind, "", true, "Reversed %s list.", kind)

	return nil
}

// AppendRandom appends a value drawn from [RandomMin, RandomMax] and returns it.
func (s *Session) AppendRandom(kind list.Kind) (int, error) {
	seq, err := s.listTarget(ActionRandom, kind, "")
	if err != nil {
		return 0, err
	}
	n := randomValue(s.rng)
	v := strconv.Itoa(n)
	seq.Append(v)
	s.record(ActionRandom, kind, v, true, "Added random node '%s' to %s list.", v, kind)

	return n, nil
}

// ClearList empties the kind list.
func (s *Session) ClearList(kind list.Kind) error {
	seq, err := s.listTarget(ActionClearList, kind, "")
	if err != nil {
		return err
	}
	seq.Clear()
	s.record(ActionClearList, kind, "", true, "Cleared %s list.", kind)

	return nil
}

// Snapshot returns the kind list head first. It is a query and is not journaled.
func (s *Session) Snapshot(kind list.Kind) ([]string, error) {
	seq, err := s.sequence(kind)
	if err != nil {
		return nil, err
	}

	return seq.ToSlice(), nil
}

// parseStackValue validates raw stack input.
func (s *Session) parseStackValue(action Action, raw string) (int, error) {
	if raw == "" {
		s.record(action, noKind, raw, false, "Input Error: please enter a value to %s.", action)
		return 0, ErrEmptyValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		s.record(action, noKind, raw, false, "Input Error: '%s' is not an integer.", raw)
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, raw)
	}

	return n, nil
}

// Push parses raw as an integer and pushes it. stack.ErrOverflow is returned at capacity.
func (s *Session) Push(raw string) error {
	n, err := s.parseStackValue(ActionPush, raw)
	if err != nil {
		return err
	}
	if err = s.stack.Push(n); err != nil {
		s.record(ActionPush, noKind, raw, false, "Failed to Push: %v", err)
		return err
	}
	s.record(ActionPush, noKind, raw, true, "Pushed %d onto the stack.", n)

	return nil
}

// Pop removes the top of the stack. stack.ErrUnderflow is returned when empty.
func (s *Session) Pop() (int, error) {
	n, err := s.stack.Pop()
	if err != nil {
		s.record(ActionPop, noKind, "", false, "Failed to Pop: %v", err)
		return 0, err
	}
	s.record(ActionPop, noKind, strconv.Itoa(n), true, "Popped %d from the stack.", n)

	return n, nil
}

// Peek reads the top of the stack. stack.ErrUnderflow is returned when empty.
func (s *Session) Peek() (int, error) {
	n, err := s.stack.Peek()
	if err != nil {
		s.record(ActionPeek, noKind, "", false, "Peeked: Stack is empty.")
		return 0, err
	}
	s.record(ActionPeek, noKind, strconv.Itoa(n), true, "Peeked: Top element is %d.", n)

	return n, nil
}

// Search returns the 1-based position of raw from the top of the stack.
func (s *Session) Search(raw string) (int, bool, error) {
	n, err := s.parseStackValue(ActionSearch, raw)
	if err != nil {
		return 0, false, err
	}
	pos, ok := s.stack.Search(n)
	if !ok {
		s.record(ActionSearch, noKind, raw, false, "Search: '%d' not found.", n)
		return 0, false, nil
	}
	s.record(ActionSearch, noKind, raw, true, "Search: Found %d at position %d.", n, pos)

	return pos, true, nil
}

// StackSize reports the number of stack elements and journals the check.
func (s *Session) StackSize() int {
	n := s.stack.Size()
	s.record(ActionSize, noKind, "", true, "Stack size checked: %d elements.", n)

	return n
}

// StackCapacity returns the capacity the stack was built with.
func (s *Session) StackCapacity() int { return s.stack.Cap() }

// StackSnapshot returns the stack bottom to top. Not journaled.
func (s *Session) StackSnapshot() []int { return s.stack.ToSlice() }

// ClearStack empties the stack.
func (s *Session) ClearStack() {
	s.stack.Clear()
	s.record(ActionClearStack, noKind, "", true, "Cleared the stack.")
}

// Recursion runs a call-stack simulation; mode is "tail" or "head".
func (s *Session) Recursion(mode string, n int) ([]recursion.Frame, error) {
	m, err := recursion.ParseMode(mode)
	if err != nil {
		s.record(ActionRecursion, noKind, mode, false, "Unknown recursion mode '%s'.", mode)
		return nil, err
	}
	frames, err := recursion.Simulate(m, n)
	if err != nil {
		s.record(ActionRecursion, noKind, strconv.Itoa(n), false,
			"Input Error: enter a number between %d and %d for the elements.", recursion.MinDepth, recursion.MaxDepth)
		return nil, err
	}
	name := m.String()
	s.record(ActionRecursion, noKind, strconv.Itoa(n), true,
		"Running %s Recursion simulation with %d elements.", strings.ToUpper(name[:1])+name[1:], n)

	return frames, nil
}

// Journal returns a copy of the recorded events, oldest first.
func (s *Session) Journal() []Event {
	out := make([]Event, len(s.journal))
	copy(out, s.journal)
	return out
}

// Messages returns the log lines of the journal, oldest first.
func (s *Session) Messages() []string {
	out := make([]string, len(s.journal))
	for i, ev := range s.journal {
		out[i] = ev.Message
	}
	return out
}

// ClearJournal drops every recorded event. Sequence numbers keep increasing.
func (s *Session) ClearJournal() { s.journal = nil }

// Reset empties every structure and the journal, then records the reset.
func (s *Session) Reset() {
	s.singly.Clear()
	s.doubly.Clear()
	s.circular.Clear()
	s.stack.Clear()
	s.journal = nil
	s.record(ActionReset, noKind, "", true, "Session reset.")
}
