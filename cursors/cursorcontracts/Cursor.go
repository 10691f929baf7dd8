package cursorcontracts

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"github.com/NthPortal/cursor-exploration/cursors"
)

// Cursor is the behaviour contract every cursor implementation is expected to honor.
// The contract function yields a fresh subject per test case:
// a cursor positioned before its first element, along with the elements it traverses.
// The contract needs a subject with at least three elements.
type Cursor[V any] func(tb testing.TB) CursorSubject[V]

type CursorSubject[V any] struct {
	// Cursor is a freshly made cursor, positioned before the first element.
	Cursor cursors.Cursor[V]
	// Expected are the elements the cursor will traverse, in traversal order.
	Expected []V
}

func (c Cursor[V]) Spec(s *testcase.Spec) {
	s.Describe("it behaves like a cursor", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) CursorSubject[V] {
			sub := c(t)
			t.Must.True(3 <= len(sub.Expected), "the contract requires at least three expected elements")
			return sub
		})

		s.Then("a fresh cursor is over nothing", func(t *testcase.T) {
			_, err := subject.Get(t).Cursor.Current()
			t.Must.ErrorIs(cursors.ErrEmptyTraversal, err)
		})

		s.Then("advancing walks the expected elements in order", func(t *testcase.T) {
			sub := subject.Get(t)
			for _, expected := range sub.Expected {
				t.Must.True(sub.Cursor.Advance())
				got, err := sub.Cursor.Current()
				t.Must.NoError(err)
				t.Must.Equal(expected, got)
			}
			t.Must.False(sub.Cursor.Advance())
		})

		s.Then("the element under the cursor is repeatable without side effects", func(t *testcase.T) {
			sub := subject.Get(t)
			t.Must.True(sub.Cursor.Advance())
			for i, n := 0, t.Random.IntB(3, 7); i < n; i++ {
				got, err := sub.Cursor.Current()
				t.Must.NoError(err)
				t.Must.Equal(sub.Expected[0], got)
			}
		})

		s.Then("advancing past the last element is a repeatable no-op", func(t *testcase.T) {
			sub := subject.Get(t)
			for sub.Cursor.Advance() {
			}
			for i, n := 0, t.Random.IntB(3, 7); i < n; i++ {
				t.Must.False(sub.Cursor.Advance())
				_, err := sub.Cursor.Current()
				t.Must.ErrorIs(cursors.ErrEmptyTraversal, err)
			}
		})

		s.Then("collecting gathers every expected element", func(t *testcase.T) {
			sub := subject.Get(t)
			vs, err := cursors.Collect(sub.Cursor)
			t.Must.NoError(err)
			t.Must.Equal(sub.Expected, vs)
		})

		s.Then("counting a fresh cursor reports the element count and consumes the traversal", func(t *testcase.T) {
			sub := subject.Get(t)
			t.Must.Equal(len(sub.Expected), cursors.Count(sub.Cursor))
			t.Must.False(sub.Cursor.Advance())
		})

		s.Then("counting excludes the element already under the cursor", func(t *testcase.T) {
			sub := subject.Get(t)
			t.Must.True(sub.Cursor.Advance())
			t.Must.Equal(len(sub.Expected)-1, cursors.Count(sub.Cursor))
		})

		s.Describe("AdvanceBy", func(s *testcase.Spec) {
			s.Then("a zero count preserves the position", func(t *testcase.T) {
				sub := subject.Get(t)
				t.Must.True(cursors.AdvanceBy(sub.Cursor, 0))
				_, err := sub.Cursor.Current()
				t.Must.ErrorIs(cursors.ErrEmptyTraversal, err)
				t.Must.True(sub.Cursor.Advance())
				got, err := sub.Cursor.Current()
				t.Must.NoError(err)
				t.Must.Equal(sub.Expected[0], got)
			})

			s.Then("advancing by the element count lands on the last element", func(t *testcase.T) {
				sub := subject.Get(t)
				t.Must.True(cursors.AdvanceBy(sub.Cursor, len(sub.Expected)))
				got, err := sub.Cursor.Current()
				t.Must.NoError(err)
				t.Must.Equal(sub.Expected[len(sub.Expected)-1], got)
			})

			s.Then("advancing beyond the element count reports false", func(t *testcase.T) {
				sub := subject.Get(t)
				t.Must.False(cursors.AdvanceBy(sub.Cursor, len(sub.Expected)+1))
			})

			s.Then("a negative count panics", func(t *testcase.T) {
				sub := subject.Get(t)
				v := assert.Panic(t, func() { cursors.AdvanceBy(sub.Cursor, -1*t.Random.IntB(1, 42)) })
				t.Must.Equal(v, cursors.ErrNegativeCount)
			})
		})

		s.Describe("iterator view", func(s *testcase.Spec) {
			s.Then("the view yields the expected elements through HasNext and Next", func(t *testcase.T) {
				sub := subject.Get(t)
				it := cursors.ToIterator(sub.Cursor)
				var vs []V
				for it.HasNext() {
					v, err := it.Next()
					t.Must.NoError(err)
					vs = append(vs, v)
				}
				t.Must.Equal(sub.Expected, vs)
			})

			s.Then("checking availability many times consumes nothing", func(t *testcase.T) {
				sub := subject.Get(t)
				it := cursors.ToIterator(sub.Cursor)
				for i, n := 0, t.Random.IntB(3, 7); i < n; i++ {
					t.Must.True(it.HasNext())
				}
				v, err := it.Next()
				t.Must.NoError(err)
				t.Must.Equal(sub.Expected[0], v)
			})

			s.Then("taking from an exhausted view fails with the empty traversal error", func(t *testcase.T) {
				sub := subject.Get(t)
				it := cursors.ToIterator(sub.Cursor)
				for it.HasNext() {
					_, err := it.Next()
					t.Must.NoError(err)
				}
				t.Must.False(it.HasNext())
				_, err := it.Next()
				t.Must.ErrorIs(cursors.ErrEmptyTraversal, err)
			})

			s.Then("converting the view back returns the very same cursor", func(t *testcase.T) {
				sub := subject.Get(t)
				got := cursors.FromIterator[V](cursors.ToIterator(sub.Cursor))
				t.Must.True(got == sub.Cursor)
			})
		})
	})
}

func (c Cursor[V]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c Cursor[V]) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}
