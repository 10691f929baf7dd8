package cursors

// First advances the cursor once and returns the element it lands on.
// When the traversal is already exhausted, found reports false.
func First[V any](c Cursor[V]) (value V, found bool) {
	if !c.Advance() {
		return value, false
	}
	v, err := c.Current()
	if err != nil {
		return value, false
	}
	return v, true
}
