package cursors

// Count advances the cursor until the traversal is exhausted,
// and returns the total number of elements it moved over.
// Counting consumes the traversal: only the elements still ahead of the cursor are counted,
// and the cursor is left over nothing, past the last element.
//
// Good when all you want is the number of remaining elements but don't want to do anything else with them.
func Count[V any](c Cursor[V]) int {
	var total int
	for c.Advance() {
		total++
	}
	return total
}
