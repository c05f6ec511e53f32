package tensor

import (
	"fmt"
	"iter"
)

// NoAxis marks a view without an active axis: iteration walks the whole
// flattened buffer.
const NoAxis = -1

// View is a non-owning N-dimensional window over a flat row-major buffer.
//
// With an axis set, the dimensions other than the axis form an output space of
// OutputSize() fibers; Begin(o)/End(o) bound the fiber with output index o.
// Without an axis, Begin/End bound the whole buffer and the output index is
// ignored.
//
// A View is safe for concurrent reads. SetAxis and ClearAxis mutate it and
// must not race with iteration.
type View[T any] struct {
	data    []T
	shape   Shape
	offsets []int
	size    int

	axis          int
	step          int   // offsets[axis], or 1 without an axis
	length        int   // shape[axis], or size without an axis
	outputSize    int   // product of all extents except axis
	outputOffsets []int // offsets of shape.Without(axis)
}

// NewView creates a view over data with the given shape and no active axis.
// Panics if the shape is invalid or data is shorter than the shape requires.
func NewView[T any](data []T, shape Shape) *View[T] {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("view: %v", err))
	}
	size := shape.NumElements()
	if len(data) < size {
		panic(fmt.Sprintf("view: buffer holds %d elements, shape %v needs %d", len(data), shape, size))
	}

	v := &View[T]{
		data:    data,
		shape:   shape.Clone(),
		offsets: shape.ComputeOffsets(),
		size:    size,
	}
	v.ClearAxis()
	return v
}

// NewAxisView creates a view over data with the given shape and active axis.
func NewAxisView[T any](data []T, shape Shape, axis int) *View[T] {
	v := NewView(data, shape)
	v.SetAxis(axis)
	return v
}

// SetAxis selects the axis iteration proceeds along.
// Panics if axis is not in [0, rank).
func (v *View[T]) SetAxis(axis int) {
	if axis < 0 || axis >= len(v.shape) {
		panic(fmt.Sprintf("view: axis %d out of range for %dD shape %v", axis, len(v.shape), v.shape))
	}

	v.axis = axis
	v.step = max(v.offsets[axis], 1)
	v.length = v.shape[axis]

	outShape := v.shape.Without(axis)
	v.outputSize = outShape.NumElements()
	v.outputOffsets = outShape.ComputeOffsets()
}

// ClearAxis removes the active axis.
func (v *View[T]) ClearAxis() {
	v.axis = NoAxis
	v.step = 1
	v.length = v.size
	v.outputSize = v.size
	v.outputOffsets = nil
}

// Axis returns the active axis and whether one is set.
func (v *View[T]) Axis() (int, bool) {
	return v.axis, v.axis != NoAxis
}

// Shape returns the view's shape.
func (v *View[T]) Shape() Shape {
	return v.shape
}

// Offsets returns the row-major offsets of the view's shape.
func (v *View[T]) Offsets() []int {
	return v.offsets
}

// Size returns the total number of elements.
func (v *View[T]) Size() int {
	return v.size
}

// Data returns the underlying buffer.
func (v *View[T]) Data() []T {
	return v.data
}

// OutputSize returns the number of fibers: the product of every extent but
// the active axis, or the total size when no axis is set.
func (v *View[T]) OutputSize() int {
	return v.outputSize
}

// At returns the element at a flat, axis-agnostic position.
func (v *View[T]) At(i int) T {
	return v.data[i]
}

// Begin returns an iterator at the first element of fiber outputIndex.
func (v *View[T]) Begin(outputIndex int) Iterator[T] {
	return Iterator[T]{view: v, pos: v.fiberStart(outputIndex), step: v.step}
}

// End returns an iterator one step past the last element of fiber outputIndex.
func (v *View[T]) End(outputIndex int) Iterator[T] {
	return Iterator[T]{view: v, pos: v.fiberStart(outputIndex) + v.length*v.step, step: v.step}
}

// Fiber yields the elements of fiber outputIndex in axis order.
func (v *View[T]) Fiber(outputIndex int) iter.Seq[T] {
	return func(yield func(T) bool) {
		end := v.End(outputIndex)
		for it := v.Begin(outputIndex); !it.Equal(end); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// fiberStart maps an output index to the linear position of its fiber's first
// element: decode over the output shape, re-encode over the full shape with the
// axis coordinate at 0.
func (v *View[T]) fiberStart(outputIndex int) int {
	if v.axis == NoAxis {
		return 0
	}
	if outputIndex < 0 || outputIndex >= v.outputSize {
		panic(fmt.Sprintf("view: output index %d out of range [0, %d)", outputIndex, v.outputSize))
	}

	remaining := outputIndex
	linear := 0
	j := 0
	for d, off := range v.offsets {
		if d == v.axis {
			continue
		}
		outOff := v.outputOffsets[j]
		j++
		if outOff == 0 {
			continue
		}
		coord := remaining / outOff
		remaining -= coord * outOff
		linear += coord * off
	}
	return linear
}
