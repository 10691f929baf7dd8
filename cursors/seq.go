package cursors

import (
	"iter"

	"github.com/samber/mo"
)

// ToSeq exposes the remaining elements of the cursor as a range-able sequence.
// The sequence is lazy and single use: it traverses by advancing the given cursor,
// so ranging over it twice yields values only the first time.
func ToSeq[V any](c Cursor[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for c.Advance() {
			v, err := c.Current()
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// FromSeq returns a cursor over the values of the sequence, driven by iter.Pull.
// Call Stop when the traversal is abandoned before exhaustion,
// so the sequence can release whatever it holds behind the scene.
func FromSeq[V any](s iter.Seq[V]) *SeqCursor[V] {
	next, stop := iter.Pull(s)
	return &SeqCursor[V]{next: next, stop: stop}
}

type SeqCursor[V any] struct {
	next func() (V, bool)
	stop func()

	done    bool
	current mo.Option[V]
}

func (c *SeqCursor[V]) Advance() bool {
	if c.done {
		return false
	}
	v, ok := c.next()
	if !ok {
		c.Stop()
		c.current = mo.None[V]()
		return false
	}
	c.current = mo.Some(v)
	return true
}

func (c *SeqCursor[V]) Current() (V, error) {
	v, ok := c.current.Get()
	if !ok {
		return v, ErrEmptyTraversal
	}
	return v, nil
}

// Stop releases the underlying sequence.
// The element under the cursor stays reachable, but every further Advance reports false.
// Stop is idempotent, and a fully exhausted cursor stops itself.
func (c *SeqCursor[V]) Stop() {
	if c.done {
		return
	}
	c.done = true
	c.stop()
}
