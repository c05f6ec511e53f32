package tensor

import "fmt"

// Shape represents the dimensions of an N-dimensional array.
// Dimension 0 is the outermost (slowest-varying) axis.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements in the array.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions >= 0).
// Zero extents are legal and describe an empty array.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// WithDim returns a copy of the shape with dimension axis replaced by n.
func (s Shape) WithDim(axis, n int) Shape {
	out := s.Clone()
	out[axis] = n
	return out
}

// Without returns a copy of the shape with dimension axis removed.
func (s Shape) Without(axis int) Shape {
	out := make(Shape, 0, len(s)-1)
	for i, dim := range s {
		if i != axis {
			out = append(out, dim)
		}
	}
	return out
}

// ComputeOffsets calculates row-major offsets for the shape.
// offsets[i] = product of all dimensions after i, offsets[rank-1] = 1.
func (s Shape) ComputeOffsets() []int {
	offsets := make([]int, len(s))
	if len(s) == 0 {
		return offsets
	}

	offsets[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		offsets[i] = offsets[i+1] * s[i+1]
	}
	return offsets
}

// NormalizeAxis resolves a possibly negative axis (-1 = last dim) against rank.
// Returns false if the axis is out of range.
func NormalizeAxis(axis, rank int) (int, bool) {
	if axis < 0 {
		axis += rank
	}
	if axis < 0 || axis >= rank {
		return 0, false
	}
	return axis, true
}
