package list

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// assertDoublyLinks checks next/prev symmetry for every node reachable from head.
func assertDoublyLinks[T comparable](t *testing.T, l *Doubly[T]) {
	t.Helper()
	if l.head == nilIndex {
		require.Equal(t, 0, l.size)
		return
	}
	require.Equal(t, nilIndex, l.nodes[l.head].prev, "head has no back-link")
	count := 0
	for i := l.head; i != nilIndex; i = l.nodes[i].next {
		count++
		if n := l.nodes[i].next; n != nilIndex {
			require.Equal(t, i, l.nodes[n].prev, "next.prev == node at %d", i)
		}
		if p := l.nodes[i].prev; p != nilIndex {
			require.Equal(t, i, l.nodes[p].next, "prev.next == node at %d", i)
		}
	}
	require.Equal(t, l.size, count)
}

// assertCircularWrap checks that size hops from head land on head again.
func assertCircularWrap[T comparable](t *testing.T, l *Circular[T]) {
	t.Helper()
	if l.head == nilIndex {
		require.Equal(t, 0, l.size)
		return
	}
	i := l.head
	for s := 0; s < l.size; s++ {
		require.NotEqual(t, nilIndex, l.nodes[i].next, "chain is never terminal")
		i = l.nodes[i].next
		if s < l.size-1 {
			require.NotEqual(t, l.head, i, "returned to head early after %d hops", s+1)
		}
	}
	require.Equal(t, l.head, i)
}

func TestDoubly_LinkInvariantUnderChurn(t *testing.T) {
	l := NewDoubly[int]()
	for i := 0; i < 30; i++ {
		switch i % 4 {
		case 0:
			l.Append(i)
		case 1:
			l.Prepend(i)
		case 2:
			l.Reverse()
		case 3:
			l.Delete(i - 3)
		}
		assertDoublyLinks(t, l)
	}
}

func TestDoubly_ReusesFreedSlots(t *testing.T) {
	l := NewDoublyFrom(1, 2, 3)
	require.Len(t, l.nodes, 3)
	require.True(t, l.Delete(2))
	l.Append(4)
	require.Len(t, l.nodes, 3, "freed slot is reused")
	require.Equal(t, []int{1, 3, 4}, l.ToSlice())
	assertDoublyLinks(t, l)
}

func TestCircular_WrapInvariantUnderChurn(t *testing.T) {
	l := NewCircular[int]()
	for i := 0; i < 30; i++ {
		switch i % 4 {
		case 0:
			l.Append(i)
		case 1:
			l.Prepend(i)
		case 2:
			l.Reverse()
		case 3:
			l.Delete(i - 2)
		}
		assertCircularWrap(t, l)
	}
	for !l.IsEmpty() {
		v, _ := firstValue(l)
		require.True(t, l.Delete(v))
		assertCircularWrap(t, l)
	}
	require.Nil(t, l.nodes, "arena released once drained")
}

func firstValue[T comparable](l *Circular[T]) (T, bool) {
	for v := range l.Values() {
		return v, true
	}
	var zero T
	return zero, false
}
