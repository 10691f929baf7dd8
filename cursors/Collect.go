package cursors

// Collect advances the cursor until the traversal is exhausted,
// and gathers the elements it moved over into a slice.
// Collecting consumes the traversal from the cursor's position onwards,
// elements already passed are not part of the result.
func Collect[V any](c Cursor[V]) (vs []V, err error) {
	for c.Advance() {
		v, err := c.Current()
		if err != nil {
			return vs, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}
