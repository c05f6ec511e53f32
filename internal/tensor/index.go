package tensor

// ToMultiIndex converts a linear (flattened) index into one coordinate per
// dimension using row-major offsets. The result is written into dst when it
// has room for len(offsets) values; otherwise a new slice is allocated.
//
// The linear index is not checked against the shape bounds. A dimension with
// a zero offset (zero extent somewhere to its right) always decodes to 0.
func ToMultiIndex(linear int, offsets, dst []int) []int {
	if cap(dst) < len(offsets) {
		dst = make([]int, len(offsets))
	}
	dst = dst[:len(offsets)]

	remaining := linear
	for i, off := range offsets {
		if off == 0 {
			dst[i] = 0
			continue
		}
		dst[i] = remaining / off
		remaining -= dst[i] * off
	}
	return dst
}

// ToLinearIndex converts a multi-index back to a linear index:
// the dot product of index and offsets.
//
// Components are allowed to exceed their nominal extent; callers walking past
// an input's bounds (zero-padding) rely on that and check the range themselves.
func ToLinearIndex(index, offsets []int) int {
	linear := 0
	for i, off := range offsets {
		linear += index[i] * off
	}
	return linear
}
