package cursorcontracts

import (
	"testing"

	"go.llib.dev/testcase"

	"github.com/NthPortal/cursor-exploration/cursors"
)

// RemoveCursor is the behaviour contract of cursors that can delete elements from
// the underlying collection. It includes the Cursor contract.
// Every subject must come with its own fresh collection:
// the contract mutates the collection through the cursor.
type RemoveCursor[V any] func(tb testing.TB) RemoveCursorSubject[V]

type RemoveCursorSubject[V any] struct {
	// Cursor is a freshly made cursor, positioned before the first element.
	Cursor cursors.RemoveCursor[V]
	// Expected are the elements the cursor will traverse, in traversal order.
	Expected []V
	// Remaining reads back the underlying collection's elements from its owner,
	// observing the structural deletions the cursor made.
	Remaining func() []V
}

func (c RemoveCursor[V]) Spec(s *testcase.Spec) {
	Cursor[V](func(tb testing.TB) CursorSubject[V] {
		sub := c(tb)
		return CursorSubject[V]{Cursor: sub.Cursor, Expected: sub.Expected}
	}).Spec(s)

	s.Describe("it behaves like a removing cursor", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) RemoveCursorSubject[V] {
			sub := c(t)
			t.Must.True(3 <= len(sub.Expected), "the contract requires at least three expected elements")
			t.Must.NotNil(sub.Remaining, "the contract requires reading back the underlying collection")
			return sub
		})

		s.Then("removing while over nothing fails and leaves the collection untouched", func(t *testcase.T) {
			sub := subject.Get(t)
			t.Must.ErrorIs(cursors.ErrEmptyTraversal, sub.Cursor.Remove())
			t.Must.Equal(sub.Expected, sub.Remaining())
		})

		s.Then("removing deletes the element from the collection before returning", func(t *testcase.T) {
			sub := subject.Get(t)
			t.Must.True(sub.Cursor.Advance())
			t.Must.NoError(sub.Cursor.Remove())
			t.Must.Equal(sub.Expected[1:], sub.Remaining())
		})

		s.Then("after removing, the cursor is over nothing", func(t *testcase.T) {
			sub := subject.Get(t)
			t.Must.True(sub.Cursor.Advance())
			t.Must.NoError(sub.Cursor.Remove())
			_, err := sub.Cursor.Current()
			t.Must.ErrorIs(cursors.ErrEmptyTraversal, err)
			t.Must.ErrorIs(cursors.ErrEmptyTraversal, sub.Cursor.Remove())
		})

		s.Then("advancing out of the gap reaches the removed element's successor", func(t *testcase.T) {
			sub := subject.Get(t)
			t.Must.True(cursors.AdvanceBy[V](sub.Cursor, 2))
			t.Must.NoError(sub.Cursor.Remove())
			t.Must.True(sub.Cursor.Advance())
			got, err := sub.Cursor.Current()
			t.Must.NoError(err)
			t.Must.Equal(sub.Expected[2], got)
		})

		s.Then("retreating out of the gap reaches the removed element's predecessor", func(t *testcase.T) {
			sub := subject.Get(t)
			rev, ok := sub.Cursor.(cursors.ReverseCursor[V])
			if !ok {
				t.Skip("the subject cursor is forward only")
			}
			t.Must.True(cursors.AdvanceBy[V](sub.Cursor, 2))
			t.Must.NoError(sub.Cursor.Remove())
			t.Must.True(rev.Retreat())
			got, err := sub.Cursor.Current()
			t.Must.NoError(err)
			t.Must.Equal(sub.Expected[0], got)
		})

		s.Then("removing the last element exhausts the traversal", func(t *testcase.T) {
			sub := subject.Get(t)
			t.Must.True(cursors.AdvanceBy[V](sub.Cursor, len(sub.Expected)))
			t.Must.NoError(sub.Cursor.Remove())
			t.Must.False(sub.Cursor.Advance())
			t.Must.Equal(sub.Expected[:len(sub.Expected)-1], sub.Remaining())
		})

		s.Then("alternating advance and remove empties the collection", func(t *testcase.T) {
			sub := subject.Get(t)
			var removed int
			for sub.Cursor.Advance() {
				t.Must.NoError(sub.Cursor.Remove())
				removed++
			}
			t.Must.Equal(len(sub.Expected), removed)
			t.Must.Empty(sub.Remaining())
		})

		s.Then("the elements left after a removal are still traversable in order", func(t *testcase.T) {
			sub := subject.Get(t)
			t.Must.True(cursors.AdvanceBy[V](sub.Cursor, 2))
			t.Must.NoError(sub.Cursor.Remove())
			rest, err := cursors.Collect[V](sub.Cursor)
			t.Must.NoError(err)
			t.Must.Equal(sub.Expected[2:], rest)
		})
	})
}

func (c RemoveCursor[V]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c RemoveCursor[V]) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}
