package cursors

import (
	"github.com/samber/mo"
)

// Iterator represents the conventional external protocol for consuming a traversal:
// check whether a next element is available, then take it.
type Iterator[V any] interface {
	// HasNext reports whether Next would return an element.
	// It is callable zero or many times between two takes without consuming anything.
	HasNext() bool
	// Next returns the next element of the traversal.
	// On an exhausted traversal, Next fails with ErrEmptyTraversal.
	Next() (V, error)
}

// ToIterator exposes the remaining elements of the cursor through the Iterator protocol.
// The element the cursor is currently over is not part of the view, only what lies ahead of it.
// The view is lazy and single use: it traverses by advancing the given cursor,
// so the cursor must not be advanced directly while the view is in use.
func ToIterator[V any](c Cursor[V]) *CursorIterator[V] {
	return &CursorIterator[V]{Cursor: c}
}

// CursorIterator is the Iterator view of a Cursor, made by ToIterator.
type CursorIterator[V any] struct {
	Cursor Cursor[V]

	ahead lookahead
}

// lookahead is what the iterator knows about its next element:
// nothing yet, known to be under the cursor already, or known not to exist.
type lookahead int

const (
	lookaheadUnknown lookahead = iota
	lookaheadHasNext
	lookaheadExhausted
)

func (i *CursorIterator[V]) HasNext() bool {
	if i.ahead == lookaheadUnknown {
		if i.Cursor.Advance() {
			i.ahead = lookaheadHasNext
		} else {
			i.ahead = lookaheadExhausted
		}
	}
	return i.ahead == lookaheadHasNext
}

func (i *CursorIterator[V]) Next() (V, error) {
	if !i.HasNext() {
		var v V
		return v, ErrEmptyTraversal
	}
	i.ahead = lookaheadUnknown
	return i.Cursor.Current()
}

// FromIterator adapts an iterator into a cursor positioned before the iterator's next element.
// When the iterator is a view made by ToIterator, the original cursor is returned as is
// instead of double wrapping, so a convert-back-and-forth keeps the cursor's own capabilities;
// an element the view already looked ahead to stays under the returned cursor,
// where Current can still reach it.
// A nil iterator yields a cursor over nothing.
func FromIterator[V any](it Iterator[V]) Cursor[V] {
	if it == nil {
		return Empty[V]()
	}
	if view, ok := it.(*CursorIterator[V]); ok {
		return view.Cursor
	}
	return &iteratorCursor[V]{Iterator: it}
}

type iteratorCursor[V any] struct {
	Iterator Iterator[V]

	current mo.Option[V]
}

func (c *iteratorCursor[V]) Advance() bool {
	if !c.Iterator.HasNext() {
		c.current = mo.None[V]()
		return false
	}
	v, err := c.Iterator.Next()
	if err != nil {
		c.current = mo.None[V]()
		return false
	}
	c.current = mo.Some(v)
	return true
}

func (c *iteratorCursor[V]) Current() (V, error) {
	v, ok := c.current.Get()
	if !ok {
		return v, ErrEmptyTraversal
	}
	return v, nil
}
