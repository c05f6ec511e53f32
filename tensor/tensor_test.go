// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/born-ml/ndaxis/backend/cpu"
	"github.com/born-ml/ndaxis/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicCodecRoundTrip(t *testing.T) {
	shape := tensor.Shape{2, 3, 4}
	offsets := tensor.ComputeOffsets(shape)
	assert.Equal(t, []int{12, 4, 1}, offsets)

	idx := make([]int, len(shape))
	for i := 0; i < shape.NumElements(); i++ {
		idx = tensor.ToMultiIndex(i, offsets, idx)
		assert.Equal(t, i, tensor.ToLinearIndex(idx, offsets))
	}
}

func TestPublicAxisView(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6}
	v := tensor.NewAxisView(data, tensor.Shape{2, 3}, 1)
	require.Equal(t, 2, v.OutputSize())

	var sums []float32
	for o := 0; o < v.OutputSize(); o++ {
		var sum float32
		for it, end := v.Begin(o), v.End(o); !it.Equal(end); it.Next() {
			sum += it.Value()
		}
		sums = append(sums, sum)
	}
	assert.Equal(t, []float32{6, 15}, sums)
	assert.Equal(t, 3, tensor.Distance(v.Begin(0), v.End(0)))

	var column []float32
	v.SetAxis(0)
	for x := range v.Fiber(2) {
		column = append(column, x)
	}
	assert.Equal(t, []float32{3, 6}, column)
}

func TestPublicBackend(t *testing.T) {
	var backend tensor.Backend = cpu.New()
	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)

	assert.Equal(t, []float32{3, 7}, backend.SumAxis(x, 1, false).AsFloat32())
	assert.Equal(t, tensor.CPU, backend.Device())
	assert.Equal(t, tensor.Complex128, backend.FFT(x, 0, 0, false).DType())
}

func TestNormalizeAxis(t *testing.T) {
	axis, ok := tensor.NormalizeAxis(-1, 3)
	assert.True(t, ok)
	assert.Equal(t, 2, axis)

	_, ok = tensor.NormalizeAxis(3, 3)
	assert.False(t, ok)
}
