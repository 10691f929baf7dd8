package cursors_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/NthPortal/cursor-exploration/cursors"
)

func TestSliceCursor_observationMatchesRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vs := rapid.SliceOfN(rapid.Int(), 0, 12).Draw(t, "vs")

		owned := append([]int{}, vs...)
		cur := cursors.Slice(&owned)

		var got []int
		for cur.Advance() {
			v, err := cur.Current()
			require.NoError(t, err)
			got = append(got, v)
		}

		var expected []int
		for _, v := range vs {
			expected = append(expected, v)
		}
		require.Equal(t, expected, got)
	})
}

func TestToIterator_viewMatchesTheRemainingElements(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vs := rapid.SliceOfN(rapid.Int(), 0, 12).Draw(t, "vs")
		k := rapid.IntRange(0, len(vs)).Draw(t, "k")

		owned := append([]int{}, vs...)
		cur := cursors.Slice(&owned)
		cursors.AdvanceBy[int](cur, k)

		it := cursors.ToIterator[int](cur)
		var got []int
		for it.HasNext() {
			v, err := it.Next()
			require.NoError(t, err)
			got = append(got, v)
		}

		var expected []int
		for _, v := range vs[k:] {
			expected = append(expected, v)
		}
		require.Equal(t, expected, got)
	})
}

func TestFromIterator_roundTripPreservesObservation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vs := rapid.SliceOfN(rapid.Int(), 0, 12).Draw(t, "vs")

		owned := append([]int{}, vs...)
		cur := cursors.Slice(&owned)

		got := cursors.FromIterator[int](cursors.ToIterator[int](cur))
		require.True(t, got == cursors.Cursor[int](cur))

		collected, err := cursors.Collect[int](got)
		require.NoError(t, err)

		var expected []int
		for _, v := range vs {
			expected = append(expected, v)
		}
		require.Equal(t, expected, collected)
	})
}

func TestAdvanceBy_splitsLikeRepeatedAdvance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vs := rapid.SliceOfN(rapid.Int(), 0, 12).Draw(t, "vs")
		a := rapid.IntRange(0, 6).Draw(t, "a")
		b := rapid.IntRange(0, 6).Draw(t, "b")

		lhsOwned := append([]int{}, vs...)
		lhs := cursors.Slice(&lhsOwned)
		okLHS := cursors.AdvanceBy[int](lhs, a+b)

		rhsOwned := append([]int{}, vs...)
		rhs := cursors.Slice(&rhsOwned)
		okRHS := cursors.AdvanceBy[int](rhs, a) && cursors.AdvanceBy[int](rhs, b)

		require.Equal(t, okLHS, okRHS)

		lv, lerr := lhs.Current()
		rv, rerr := rhs.Current()
		require.Equal(t, lv, rv)
		require.Equal(t, lerr, rerr)
	})
}

func TestSliceCursor_againstIndexModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		initial := rapid.SliceOfN(rapid.Int(), 0, 8).Draw(t, "initial")

		els := append([]int{}, initial...)
		owned := append([]int{}, initial...)
		cur := cursors.Slice(&owned)

		// model: over reports whether the cursor is over the element at idx;
		// otherwise idx is the slot where the next advance would land.
		over := false
		idx := 0

		t.Repeat(map[string]func(*rapid.T){
			"advance": func(t *rapid.T) {
				next := idx
				if over {
					next = idx + 1
				}
				moved := next < len(els)
				require.Equal(t, moved, cur.Advance())
				if moved {
					over, idx = true, next
				} else {
					over, idx = false, len(els)
				}
			},
			"retreat": func(t *rapid.T) {
				prev := idx - 1
				moved := 0 <= prev
				require.Equal(t, moved, cur.Retreat())
				if moved {
					over, idx = true, prev
				} else {
					over, idx = false, 0
				}
			},
			"remove": func(t *rapid.T) {
				if !over {
					require.ErrorIs(t, cur.Remove(), cursors.ErrEmptyTraversal)
					return
				}
				require.NoError(t, cur.Remove())
				els = append(els[:idx], els[idx+1:]...)
				over = false
			},
			"current": func(t *rapid.T) {
				v, err := cur.Current()
				if !over {
					require.ErrorIs(t, err, cursors.ErrEmptyTraversal)
					return
				}
				require.NoError(t, err)
				require.Equal(t, els[idx], v)
			},
			"": func(t *rapid.T) {
				require.Equal(t, els, owned)
			},
		})
	})
}
