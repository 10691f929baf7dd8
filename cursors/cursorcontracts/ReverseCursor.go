package cursorcontracts

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"github.com/NthPortal/cursor-exploration/cursors"
)

// ReverseCursor is the behaviour contract of cursors that can also traverse backwards.
// It includes the Cursor contract.
type ReverseCursor[V any] func(tb testing.TB) ReverseCursorSubject[V]

type ReverseCursorSubject[V any] struct {
	// Cursor is a freshly made cursor, positioned before the first element.
	Cursor cursors.ReverseCursor[V]
	// Expected are the elements the cursor will traverse, in traversal order.
	Expected []V
}

func (c ReverseCursor[V]) Spec(s *testcase.Spec) {
	Cursor[V](func(tb testing.TB) CursorSubject[V] {
		sub := c(tb)
		return CursorSubject[V]{Cursor: sub.Cursor, Expected: sub.Expected}
	}).Spec(s)

	s.Describe("it behaves like a reversible cursor", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) ReverseCursorSubject[V] {
			sub := c(t)
			t.Must.True(3 <= len(sub.Expected), "the contract requires at least three expected elements")
			return sub
		})

		s.Then("retreating from before the first element is a repeatable no-op", func(t *testcase.T) {
			sub := subject.Get(t)
			for i, n := 0, t.Random.IntB(3, 7); i < n; i++ {
				t.Must.False(sub.Cursor.Retreat())
				_, err := sub.Cursor.Current()
				t.Must.ErrorIs(cursors.ErrEmptyTraversal, err)
			}
		})

		s.Then("after exhausting forward, retreating walks the elements backwards", func(t *testcase.T) {
			sub := subject.Get(t)
			for sub.Cursor.Advance() {
			}
			for i := len(sub.Expected) - 1; 0 <= i; i-- {
				t.Must.True(sub.Cursor.Retreat())
				got, err := sub.Cursor.Current()
				t.Must.NoError(err)
				t.Must.Equal(sub.Expected[i], got)
			}
			t.Must.False(sub.Cursor.Retreat())
		})

		s.Then("advance and retreat act on one shared position", func(t *testcase.T) {
			sub := subject.Get(t)
			t.Must.True(sub.Cursor.Advance())
			t.Must.True(sub.Cursor.Advance())
			t.Must.True(sub.Cursor.Retreat())
			got, err := sub.Cursor.Current()
			t.Must.NoError(err)
			t.Must.Equal(sub.Expected[0], got)
			t.Must.True(sub.Cursor.Advance())
			got, err = sub.Cursor.Current()
			t.Must.NoError(err)
			t.Must.Equal(sub.Expected[1], got)
		})

		s.Then("retreating off the first element then advancing returns to it", func(t *testcase.T) {
			sub := subject.Get(t)
			t.Must.True(sub.Cursor.Advance())
			t.Must.False(sub.Cursor.Retreat())
			t.Must.True(sub.Cursor.Advance())
			got, err := sub.Cursor.Current()
			t.Must.NoError(err)
			t.Must.Equal(sub.Expected[0], got)
		})

		s.Describe("RetreatBy", func(s *testcase.Spec) {
			s.Then("a zero count preserves the position", func(t *testcase.T) {
				sub := subject.Get(t)
				t.Must.True(sub.Cursor.Advance())
				t.Must.True(cursors.RetreatBy[V](sub.Cursor, 0))
				got, err := sub.Cursor.Current()
				t.Must.NoError(err)
				t.Must.Equal(sub.Expected[0], got)
			})

			s.Then("retreating back over the traversed elements lands on the first one", func(t *testcase.T) {
				sub := subject.Get(t)
				t.Must.True(cursors.AdvanceBy[V](sub.Cursor, len(sub.Expected)))
				t.Must.True(cursors.RetreatBy[V](sub.Cursor, len(sub.Expected)-1))
				got, err := sub.Cursor.Current()
				t.Must.NoError(err)
				t.Must.Equal(sub.Expected[0], got)
			})

			s.Then("retreating past the first element reports false", func(t *testcase.T) {
				sub := subject.Get(t)
				t.Must.True(cursors.AdvanceBy[V](sub.Cursor, len(sub.Expected)))
				t.Must.False(cursors.RetreatBy[V](sub.Cursor, len(sub.Expected)))
			})

			s.Then("a negative count panics", func(t *testcase.T) {
				sub := subject.Get(t)
				v := assert.Panic(t, func() { cursors.RetreatBy[V](sub.Cursor, -1*t.Random.IntB(1, 42)) })
				t.Must.Equal(v, cursors.ErrNegativeCount)
			})
		})
	})
}

func (c ReverseCursor[V]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c ReverseCursor[V]) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}
