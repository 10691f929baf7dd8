// Package gods adapts the list containers of the emirpasic/gods collection library
// to the cursor protocol.
package gods

import (
	"fmt"

	"github.com/emirpasic/gods/lists"
	"github.com/samber/mo"

	"github.com/NthPortal/cursor-exploration/cursors"
)

// List returns a cursor over the elements of the borrowed gods list.
// It works with any lists.List implementation (ArrayList, SinglyLinkedList, DoublyLinkedList).
// The list stores untyped values, each element is type asserted to V;
// a foreign typed element ends the traversal and surfaces through Err.
// Mutating the list through anything other than the cursor while the traversal
// is in progress leaves the cursor in an undefined state.
func List[V any](l lists.List) *ListCursor[V] {
	return &ListCursor[V]{List: l}
}

type ListCursor[V any] struct {
	List lists.List

	// boundary is where the next Advance resumes while the cursor is over nothing:
	// 0 before the first element, List.Size() after the last, the gap index after a Remove.
	boundary int
	index    int
	current  mo.Option[V]
	err      error
}

func (c *ListCursor[V]) Advance() bool {
	if c.err != nil {
		return false
	}
	next := c.boundary
	if c.current.IsPresent() {
		next = c.index + 1
	}
	if c.List.Size() <= next {
		c.boundary = c.List.Size()
		c.current = mo.None[V]()
		return false
	}
	return c.land(next)
}

func (c *ListCursor[V]) Retreat() bool {
	if c.err != nil {
		return false
	}
	prev := c.boundary - 1
	if c.current.IsPresent() {
		prev = c.index - 1
	}
	if prev < 0 {
		c.boundary = 0
		c.current = mo.None[V]()
		return false
	}
	return c.land(prev)
}

func (c *ListCursor[V]) land(index int) bool {
	value, found := c.List.Get(index)
	if !found {
		c.current = mo.None[V]()
		return false
	}
	v, ok := value.(V)
	if !ok {
		var zero V
		c.err = fmt.Errorf("unexpected element type %T in the list, %T expected", value, zero)
		c.boundary = index
		c.current = mo.None[V]()
		return false
	}
	c.index = index
	c.current = mo.Some(v)
	return true
}

func (c *ListCursor[V]) Current() (V, error) {
	v, ok := c.current.Get()
	if !ok {
		return v, cursors.ErrEmptyTraversal
	}
	return v, nil
}

func (c *ListCursor[V]) Remove() error {
	if c.current.IsAbsent() {
		return cursors.ErrEmptyTraversal
	}
	c.List.Remove(c.index)
	c.boundary = c.index
	c.current = mo.None[V]()
	return nil
}

// Err returns the error cause of the traversal ending early, an element of a foreign type.
func (c *ListCursor[V]) Err() error {
	return c.err
}
