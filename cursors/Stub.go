package cursors

func Stub[V any](c Cursor[V]) *StubCursor[V] {
	return &StubCursor[V]{
		Cursor:      c,
		StubAdvance: c.Advance,
		StubCurrent: c.Current,
	}
}

// StubCursor is a test double where each cursor behaviour can be replaced per call site,
// and restored afterwards to the wrapped cursor's own behaviour.
type StubCursor[V any] struct {
	Cursor      Cursor[V]
	StubAdvance func() bool
	StubCurrent func() (V, error)
}

// wrapper

func (m *StubCursor[V]) Advance() bool {
	return m.StubAdvance()
}

func (m *StubCursor[V]) Current() (V, error) {
	return m.StubCurrent()
}

// Reseting stubs

func (m *StubCursor[V]) ResetAdvance() {
	m.StubAdvance = m.Cursor.Advance
}

func (m *StubCursor[V]) ResetCurrent() {
	m.StubCurrent = m.Cursor.Current
}
