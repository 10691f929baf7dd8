package cursors

// AdvanceBy moves the cursor forward n times, or until the traversal is exhausted,
// and reports whether every move landed on an element.
// AdvanceBy with zero count leaves the cursor where it is and reports true,
// even when that position is over nothing.
// A negative count panics with ErrNegativeCount.
func AdvanceBy[V any](c Cursor[V], n int) bool {
	if n < 0 {
		panic(ErrNegativeCount)
	}
	for ; n > 0; n-- {
		if !c.Advance() {
			return false
		}
	}
	return true
}

// RetreatBy moves the cursor backward n times, or until it is before the first element,
// and reports whether every move landed on an element.
// RetreatBy with zero count leaves the cursor where it is and reports true,
// even when that position is over nothing.
// A negative count panics with ErrNegativeCount.
func RetreatBy[V any](c ReverseCursor[V], n int) bool {
	if n < 0 {
		panic(ErrNegativeCount)
	}
	for ; n > 0; n-- {
		if !c.Retreat() {
			return false
		}
	}
	return true
}
