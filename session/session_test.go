package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlist/list"
	"github.com/katalvlaran/lvlist/recursion"
	"github.com/katalvlaran/lvlist/session"
	"github.com/katalvlaran/lvlist/stack"
)

func newSession(t *testing.T, opts ...session.Option) *session.Session {
	t.Helper()
	s, err := session.New(opts...)
	require.NoError(t, err)
	return s
}

func TestNew_InvalidStackCapacity(t *testing.T) {
	s, err := session.New(session.WithStackCapacity(0))
	assert.Nil(t, s)
	assert.ErrorIs(t, err, stack.ErrInvalidCapacity)
}

func TestSession_ListActionsAndMessages(t *testing.T) {
	s := newSession(t)

	require.NoError(t, s.Append(list.KindSingly, "1"))
	require.NoError(t, s.Append(list.KindSingly, "2"))
	require.NoError(t, s.Prepend(list.KindSingly, "0"))
	ok, err := s.Delete(list.KindSingly, "1")
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, s.Reverse(list.KindSingly))

	snap, err := s.Snapshot(list.KindSingly)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "0"}, snap)

	assert.Equal(t, []string{
		"Appended '1' to Singly list.",
		"Appended '2' to Singly list.",
		"Prepended '0' to Singly list.",
		"Deleted '1' from Singly list.",
		"Reversed Singly list.",
	}, s.Messages())
}

func TestSession_ListsAreIndependent(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.Append(list.KindDoubly, "d"))
	require.NoError(t, s.Append(list.KindCircular, "c"))

	for kind, want := range map[list.Kind][]string{
		list.KindSingly:   {},
		list.KindDoubly:   {"d"},
		list.KindCircular: {"c"},
	} {
		got, err := s.Snapshot(kind)
		require.NoError(t, err)
		assert.Equal(t, want, got, kind.String())
	}
}

func TestSession_DeleteNotFound(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.Append(list.KindCircular, "A"))

	ok, err := s.Delete(list.KindCircular, "Z")
	require.NoError(t, err)
	assert.False(t, ok)

	j := s.Journal()
	require.Len(t, j, 2)
	last := j[1]
	assert.False(t, last.OK)
	assert.Equal(t, session.ActionDelete, last.Action)
	assert.Equal(t, list.KindCircular, last.Kind)
	assert.Equal(t, "Failed to delete 'Z' (not found) from Circular list.", last.Message)
}

func TestSession_InputValidation(t *testing.T) {
	s := newSession(t)

	assert.ErrorIs(t, s.Append(list.KindSingly, ""), session.ErrEmptyValue)
	_, err := s.Delete(list.KindDoubly, "")
	assert.ErrorIs(t, err, session.ErrEmptyValue)
	assert.ErrorIs(t, s.Append(list.Kind(5), "x"), list.ErrUnknownKind)
	_, err = s.Snapshot(list.Kind(5))
	assert.ErrorIs(t, err, list.ErrUnknownKind)

	assert.ErrorIs(t, s.Push(""), session.ErrEmptyValue)
	assert.ErrorIs(t, s.Push("abc"), session.ErrInvalidValue)
	_, _, err = s.Search("1.5")
	assert.ErrorIs(t, err, session.ErrInvalidValue)

	assert.Empty(t, s.StackSnapshot())
	snap, err := s.Snapshot(list.KindSingly)
	require.NoError(t, err)
	assert.Empty(t, snap)

	for _, ev := range s.Journal() {
		assert.False(t, ev.OK, ev.Message)
	}
	assert.Contains(t, s.Messages(), "Input Error: 'abc' is not an integer.")
}

func TestSession_StackScenario(t *testing.T) {
	s := newSession(t, session.WithStackCapacity(2), session.WithStackBacking(stack.BackingList))
	assert.Equal(t, 2, s.StackCapacity())

	require.NoError(t, s.Push("5"))
	require.NoError(t, s.Push(" 7 "))
	assert.ErrorIs(t, s.Push("9"), stack.ErrOverflow)

	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	require.NoError(t, s.Push("9"))

	pos, found, err := s.Search("5")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, pos)

	_, found, err = s.Search("4")
	require.NoError(t, err)
	assert.False(t, found)

	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, 9, top)
	assert.Equal(t, 2, s.StackSize())
	assert.Equal(t, []int{5, 9}, s.StackSnapshot())

	s.ClearStack()
	_, err = s.Pop()
	assert.ErrorIs(t, err, stack.ErrUnderflow)
	_, err = s.Peek()
	assert.ErrorIs(t, err, stack.ErrUnderflow)

	assert.Equal(t, []string{
		"Pushed 5 onto the stack.",
		"Pushed 7 onto the stack.",
		"Failed to Push: stack: overflow (capacity 2)",
		"Popped 7 from the stack.",
		"Pushed 9 onto the stack.",
		"Search: Found 5 at position 2.",
		"Search: '4' not found.",
		"Peeked: Top element is 9.",
		"Stack size checked: 2 elements.",
		"Cleared the stack.",
		"Failed to Pop: stack: underflow",
		"Peeked: Stack is empty.",
	}, s.Messages())
}

func TestSession_AppendRandomIsSeeded(t *testing.T) {
	a := newSession(t, session.WithSeed(42))
	b := newSession(t, session.WithSeed(42))

	for i := 0; i < 20; i++ {
		va, err := a.AppendRandom(list.KindDoubly)
		require.NoError(t, err)
		vb, err := b.AppendRandom(list.KindDoubly)
		require.NoError(t, err)
		assert.Equal(t, va, vb)
		assert.GreaterOrEqual(t, va, session.RandomMin)
		assert.LessOrEqual(t, va, session.RandomMax)
	}
	sa, _ := a.Snapshot(list.KindDoubly)
	sb, _ := b.Snapshot(list.KindDoubly)
	assert.Equal(t, sa, sb)
	assert.Len(t, sa, 20)
}

func TestSession_ClearListAndReset(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.Append(list.KindSingly, "a"))
	require.NoError(t, s.Append(list.KindDoubly, "b"))
	require.NoError(t, s.Push("1"))

	require.NoError(t, s.ClearList(list.KindSingly))
	snap, _ := s.Snapshot(list.KindSingly)
	assert.Empty(t, snap)
	snap, _ = s.Snapshot(list.KindDoubly)
	assert.Equal(t, []string{"b"}, snap)

	s.Reset()
	snap, _ = s.Snapshot(list.KindDoubly)
	assert.Empty(t, snap)
	assert.Empty(t, s.StackSnapshot())
	assert.Equal(t, []string{"Session reset."}, s.Messages())
}

func TestSession_Recursion(t *testing.T) {
	s := newSession(t)

	frames, err := s.Recursion("head", 2)
	require.NoError(t, err)
	assert.Equal(t, []recursion.Frame{
		{Call: 2, Value: "2", Order: 1},
		{Call: 1, Value: "1", Order: 2},
	}, frames)

	_, err = s.Recursion("tail", 11)
	assert.ErrorIs(t, err, recursion.ErrDepthOutOfRange)
	_, err = s.Recursion("sideways", 3)
	assert.ErrorIs(t, err, recursion.ErrUnknownMode)

	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "Running Head Recursion simulation with 2 elements.", msgs[0])
	assert.Equal(t, "Input Error: enter a number between 1 and 10 for the elements.", msgs[1])
}

func TestSession_OnEventAndJournalLimit(t *testing.T) {
	var seen []session.Event
	s := newSession(t,
		session.WithOnEvent(func(ev session.Event) { seen = append(seen, ev) }),
		session.WithJournalLimit(2),
	)
	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, s.Append(list.KindCircular, v))
	}

	require.Len(t, seen, 3, "hook sees every event")
	assert.Equal(t, uint64(1), seen[0].Seq)
	assert.Equal(t, uint64(3), seen[2].Seq)

	j := s.Journal()
	require.Len(t, j, 2, "journal keeps the most recent events")
	assert.Equal(t, "b", j[0].Value)
	assert.Equal(t, "c", j[1].Value)

	s.ClearJournal()
	assert.Empty(t, s.Journal())
	require.NoError(t, s.Reverse(list.KindCircular))
	assert.Equal(t, uint64(4), s.Journal()[0].Seq)
}
