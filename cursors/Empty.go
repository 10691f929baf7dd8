package cursors

// Empty returns a cursor that is over nothing and stays over nothing.
// It helps to achieve the Null Object Pattern when no value is logically expected and a cursor must be returned.
func Empty[V any]() EmptyCursor[V] {
	return EmptyCursor[V]{}
}

// EmptyCursor is a cursor over an empty traversal.
// The zero value is ready to use, and because an EmptyCursor holds no state,
// a single value may be shared between any number of traversals.
// It has every cursor capability: Advance and Retreat report false,
// Current and Remove fail with ErrEmptyTraversal.
type EmptyCursor[V any] struct{}

func (EmptyCursor[V]) Advance() bool { return false }

func (EmptyCursor[V]) Retreat() bool { return false }

func (EmptyCursor[V]) Current() (V, error) {
	var v V
	return v, ErrEmptyTraversal
}

func (EmptyCursor[V]) Remove() error { return ErrEmptyTraversal }
