package cursors_test

import (
	"fmt"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"github.com/NthPortal/cursor-exploration/cursors"
)

func ExampleAdvanceBy() {
	vs := []int{1, 2, 3, 4}
	cur := cursors.Slice(&vs)
	if cursors.AdvanceBy[int](cur, 3) {
		v, _ := cur.Current()
		fmt.Println(v)
	}
	// Output: 3
}

func TestAdvanceBy(t *testing.T) {
	s := testcase.NewSpec(t)

	values := testcase.Let(s, func(t *testcase.T) []int {
		var vs []int
		for i, m := 0, t.Random.IntB(3, 7); i < m; i++ {
			vs = append(vs, t.Random.Int())
		}
		return vs
	})
	subject := testcase.Let(s, func(t *testcase.T) *cursors.SliceCursor[int] {
		vs := values.Get(t)
		return cursors.Slice(&vs)
	})

	s.When("the count is zero", func(s *testcase.Spec) {
		s.Then("it reports true and the cursor stays over nothing on a fresh cursor", func(t *testcase.T) {
			t.Must.True(cursors.AdvanceBy[int](subject.Get(t), 0))
			_, err := subject.Get(t).Current()
			t.Must.ErrorIs(cursors.ErrEmptyTraversal, err)
		})

		s.Then("it reports true and the cursor stays over its element", func(t *testcase.T) {
			cur := subject.Get(t)
			t.Must.True(cur.Advance())
			t.Must.True(cursors.AdvanceBy[int](cur, 0))
			got, err := cur.Current()
			t.Must.NoError(err)
			t.Must.Equal(values.Get(t)[0], got)
		})
	})

	s.When("the count is within the remaining elements", func(s *testcase.Spec) {
		s.Then("the cursor lands on the counted element", func(t *testcase.T) {
			n := t.Random.IntB(1, len(values.Get(t)))
			t.Must.True(cursors.AdvanceBy[int](subject.Get(t), n))
			got, err := subject.Get(t).Current()
			t.Must.NoError(err)
			t.Must.Equal(values.Get(t)[n-1], got)
		})
	})

	s.When("the count exceeds the remaining elements", func(s *testcase.Spec) {
		s.Then("it reports false and the cursor is exhausted", func(t *testcase.T) {
			n := len(values.Get(t)) + t.Random.IntB(1, 3)
			t.Must.False(cursors.AdvanceBy[int](subject.Get(t), n))
			_, err := subject.Get(t).Current()
			t.Must.ErrorIs(cursors.ErrEmptyTraversal, err)
		})
	})

	s.When("the count is negative", func(s *testcase.Spec) {
		s.Then("it panics with the negative count error", func(t *testcase.T) {
			v := assert.Panic(t, func() { cursors.AdvanceBy[int](subject.Get(t), -1*t.Random.IntB(1, 42)) })
			t.Must.Equal(v, cursors.ErrNegativeCount)
		})
	})
}

func TestRetreatBy(t *testing.T) {
	s := testcase.NewSpec(t)

	values := testcase.Let(s, func(t *testcase.T) []int {
		var vs []int
		for i, m := 0, t.Random.IntB(3, 7); i < m; i++ {
			vs = append(vs, t.Random.Int())
		}
		return vs
	})
	subject := testcase.Let(s, func(t *testcase.T) *cursors.SliceCursor[int] {
		vs := values.Get(t)
		return cursors.Slice(&vs)
	})

	s.When("the count is zero", func(s *testcase.Spec) {
		s.Then("it reports true and the cursor stays where it is", func(t *testcase.T) {
			cur := subject.Get(t)
			t.Must.True(cur.Advance())
			t.Must.True(cursors.RetreatBy[int](cur, 0))
			got, err := cur.Current()
			t.Must.NoError(err)
			t.Must.Equal(values.Get(t)[0], got)
		})
	})

	s.When("the cursor is past the last element", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			for subject.Get(t).Advance() {
			}
		})

		s.Then("retreating by the element count lands back on the first element", func(t *testcase.T) {
			vs := values.Get(t)
			t.Must.True(cursors.RetreatBy[int](subject.Get(t), len(vs)))
			got, err := subject.Get(t).Current()
			t.Must.NoError(err)
			t.Must.Equal(vs[0], got)
		})

		s.Then("retreating by more than the element count reports false", func(t *testcase.T) {
			t.Must.False(cursors.RetreatBy[int](subject.Get(t), len(values.Get(t))+1))
			_, err := subject.Get(t).Current()
			t.Must.ErrorIs(cursors.ErrEmptyTraversal, err)
		})
	})

	s.When("the count is negative", func(s *testcase.Spec) {
		s.Then("it panics with the negative count error", func(t *testcase.T) {
			v := assert.Panic(t, func() { cursors.RetreatBy[int](subject.Get(t), -1*t.Random.IntB(1, 42)) })
			t.Must.Equal(v, cursors.ErrNegativeCount)
		})
	})
}
