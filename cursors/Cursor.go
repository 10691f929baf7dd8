package cursors

import (
	"github.com/NthPortal/cursor-exploration/consterr"
)

// Cursor define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use a cursor to access and traverse an aggregate without knowing its representation (data structures).
// A cursor is positioned over an element or over nothing;
// a freshly made cursor is over nothing, before the first traversable element.
// https://en.wikipedia.org/wiki/Iterator_pattern
type Cursor[V any] interface {
	// Advance will move the cursor onto the next traversable element,
	// and reports whether the cursor is over an element after the move.
	// Advancing past the last element is a no-op that keeps reporting false, it is not an error.
	Advance() bool
	// Current returns the element under the cursor.
	// While the cursor is over nothing, Current fails with ErrEmptyTraversal.
	// The call is repeatable without side effects.
	Current() (V, error)
}

// ReverseCursor is a Cursor that can also traverse backwards.
//
// Advance and Retreat may be interleaved freely;
// they act on the one shared position of the cursor,
// not on two independent forward and backward pointers.
type ReverseCursor[V any] interface {
	Cursor[V]
	// Retreat will move the cursor onto the previous traversable element,
	// and reports whether the cursor is over an element after the move.
	// Retreating while already before the first element is a no-op that keeps reporting false.
	Retreat() bool
}

// RemoveCursor is a Cursor that can delete the element it is over from the underlying collection.
type RemoveCursor[V any] interface {
	Cursor[V]
	// Remove deletes the element under the cursor from the underlying collection,
	// performing the structural deletion before returning control.
	// The cursor is left over nothing, in the gap the element left behind:
	// a following Advance reaches the element that followed the removed one,
	// and a following Retreat, on cursors that support it, reaches the element that preceded it.
	// While the cursor is over nothing, Remove fails with ErrEmptyTraversal.
	Remove() error
}

const (
	// ErrEmptyTraversal is the failure of Current and Remove while the cursor is over nothing.
	// It is always recoverable: check the last Advance/Retreat report before calling,
	// or match on it with errors.Is and continue.
	ErrEmptyTraversal consterr.Error = "EmptyTraversal"
	// ErrNegativeCount is the panic value of the counted AdvanceBy/RetreatBy when the count is negative.
	// A negative count is a programmer error, it is not meant to be caught in normal control flow.
	ErrNegativeCount consterr.Error = "NegativeCount"
)
