// File: types.go
// Role: Shared Sequence contract, list kinds, sentinel errors and factory.
package list

import (
	"errors"
	"fmt"
	"iter"
)

// Sentinel errors for list construction.
var (
	// ErrUnknownKind indicates a Kind value outside KindSingly..KindCircular.
	ErrUnknownKind = errors.New("list: unknown list kind")
)

// nilIndex marks an absent link inside an arena-backed list.
const nilIndex = -1

// Sequence is the operation surface shared by every list kind.
//
// Delete removes only the first match in traversal order and reports
// whether anything was removed. ToSlice and Values never mutate the list.
type Sequence[T comparable] interface {
	Append(v T)
	Prepend(v T)
	Delete(v T) bool
	Reverse()
	ToSlice() []T
	Values() iter.Seq[T]
	Len() int
	IsEmpty() bool
	Clear()
}

// Compile-time checks that every list kind satisfies Sequence.
var (
	_ Sequence[int] = (*Singly[int])(nil)
	_ Sequence[int] = (*Doubly[int])(nil)
	_ Sequence[int] = (*Circular[int])(nil)
)

// Kind selects one of the list flavours.
type Kind int

const (
	// KindSingly selects a Singly linked list.
	KindSingly Kind = iota
	// KindDoubly selects a Doubly linked list.
	KindDoubly
	// KindCircular selects a Circular linked list.
	KindCircular
)

// Kinds lists every supported Kind in display order.
func Kinds() []Kind {
	return []Kind{KindSingly, KindDoubly, KindCircular}
}

// String returns the display name of k ("Singly", "Doubly", "Circular").
func (k Kind) String() string {
	switch k {
	case KindSingly:
		return "Singly"
	case KindDoubly:
		return "Doubly"
	case KindCircular:
		return "Circular"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k names a supported list flavour.
func (k Kind) Valid() bool {
	return k >= KindSingly && k <= KindCircular
}

// New returns an empty list of the requested kind.
//
// Errors:
//   - ErrUnknownKind if k is not one of the declared kinds.
//
// Complexity: O(1).
func New[T comparable](k Kind) (Sequence[T], error) {
	switch k {
	case KindSingly:
		return NewSingly[T](), nil
	case KindDoubly:
		return NewDoubly[T](), nil
	case KindCircular:
		return NewCircular[T](), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}
