package cursors

import (
	"github.com/samber/mo"
)

// Func returns a forward-only cursor over the values a pull function produces.
// The function reports false once it has nothing more to give;
// after that the cursor treats the traversal as exhausted and will not call it again.
func Func[V any](next func() (V, bool)) *FuncCursor[V] {
	return &FuncCursor[V]{NextFn: next}
}

type FuncCursor[V any] struct {
	NextFn func() (V, bool)

	exhausted bool
	current   mo.Option[V]
}

func (c *FuncCursor[V]) Advance() bool {
	if c.exhausted {
		return false
	}
	v, ok := c.NextFn()
	if !ok {
		c.exhausted = true
		c.current = mo.None[V]()
		return false
	}
	c.current = mo.Some(v)
	return true
}

func (c *FuncCursor[V]) Current() (V, error) {
	v, ok := c.current.Get()
	if !ok {
		return v, ErrEmptyTraversal
	}
	return v, nil
}
