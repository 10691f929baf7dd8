package cursors

import (
	"slices"

	"github.com/samber/mo"
)

// Slice returns a cursor over the values of the borrowed slice.
// The cursor can also retreat and remove: Remove deletes the element in place
// through the slice pointer, so the deletion is visible to the slice's owner.
// Mutating the slice through anything other than the cursor while the
// traversal is in progress leaves the cursor in an undefined state.
func Slice[V any](slice *[]V) *SliceCursor[V] {
	return &SliceCursor[V]{Slice: slice}
}

type SliceCursor[V any] struct {
	Slice *[]V

	// boundary is where the next Advance resumes while the cursor is over nothing:
	// 0 before the first element, len(*Slice) after the last, the gap index after a Remove.
	boundary int
	index    int
	current  mo.Option[V]
}

func (c *SliceCursor[V]) Advance() bool {
	next := c.boundary
	if c.current.IsPresent() {
		next = c.index + 1
	}
	if len(*c.Slice) <= next {
		c.boundary = len(*c.Slice)
		c.current = mo.None[V]()
		return false
	}
	c.index = next
	c.current = mo.Some((*c.Slice)[next])
	return true
}

func (c *SliceCursor[V]) Retreat() bool {
	prev := c.boundary - 1
	if c.current.IsPresent() {
		prev = c.index - 1
	}
	if prev < 0 {
		c.boundary = 0
		c.current = mo.None[V]()
		return false
	}
	c.index = prev
	c.current = mo.Some((*c.Slice)[prev])
	return true
}

func (c *SliceCursor[V]) Current() (V, error) {
	v, ok := c.current.Get()
	if !ok {
		return v, ErrEmptyTraversal
	}
	return v, nil
}

func (c *SliceCursor[V]) Remove() error {
	if c.current.IsAbsent() {
		return ErrEmptyTraversal
	}
	*c.Slice = slices.Delete(*c.Slice, c.index, c.index+1)
	c.boundary = c.index
	c.current = mo.None[V]()
	return nil
}
