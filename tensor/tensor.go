// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndaxis/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported types: int32, int64, float32, float64, complex128.
type DType = tensor.DType

// Real is the constraint for ordered element types.
type Real = tensor.Real

// Shape represents tensor dimensions.
type Shape = tensor.Shape

// DataType represents runtime type information.
type DataType = tensor.DataType

// Device represents compute device (CPU, WebGPU).
type Device = tensor.Device

// View is a non-owning N-dimensional window over a flat row-major buffer.
type View[T any] = tensor.View[T]

// Iterator is a strided cursor along one fiber of a View.
type Iterator[T any] = tensor.Iterator[T]

// Data type constants.
const (
	Int32      = tensor.Int32
	Int64      = tensor.Int64
	Float32    = tensor.Float32
	Float64    = tensor.Float64
	Complex128 = tensor.Complex128
)

// Device constants.
const (
	CPU    = tensor.CPU
	WebGPU = tensor.WebGPU
)

// NoAxis marks a view without an active axis.
const NoAxis = tensor.NoAxis

// NewView creates a view over data with no active axis.
// Panics if the shape is invalid or data is too short.
func NewView[T any](data []T, shape Shape) *View[T] {
	return tensor.NewView(data, shape)
}

// NewAxisView creates a view over data iterating along axis.
//
// Example:
//
//	v := tensor.NewAxisView(data, tensor.Shape{2, 3, 4}, 1)
//	v.OutputSize() // 8 fibers of length 3
func NewAxisView[T any](data []T, shape Shape, axis int) *View[T] {
	return tensor.NewAxisView(data, shape, axis)
}

// Distance returns the number of steps from first to last.
func Distance[T any](first, last Iterator[T]) int {
	return tensor.Distance(first, last)
}

// ComputeOffsets returns the row-major offsets of shape:
// offsets[i] is the product of the extents after dimension i.
func ComputeOffsets(shape Shape) []int {
	return shape.ComputeOffsets()
}

// ToMultiIndex decodes a linear index into per-dimension coordinates.
// dst is reused when it has room for len(offsets) values.
func ToMultiIndex(linear int, offsets, dst []int) []int {
	return tensor.ToMultiIndex(linear, offsets, dst)
}

// ToLinearIndex encodes per-dimension coordinates as a linear index.
func ToLinearIndex(index, offsets []int) int {
	return tensor.ToLinearIndex(index, offsets)
}

// NormalizeAxis maps a possibly negative axis into [0, rank).
// The boolean is false when axis is out of range.
func NormalizeAxis(axis, rank int) (int, bool) {
	return tensor.NormalizeAxis(axis, rank)
}
