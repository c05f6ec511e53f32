package cpu

import (
	"testing"

	"github.com/born-ml/ndaxis/internal/parallel"
	"github.com/born-ml/ndaxis/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// iotaRaw returns a tensor filled with 1..size in row-major order.
func iotaRaw(t *testing.T, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	t.Helper()
	x, err := tensor.NewRaw(shape, dtype, tensor.CPU)
	require.NoError(t, err)

	switch dtype {
	case tensor.Int32:
		for i := range x.AsInt32() {
			x.AsInt32()[i] = int32(i + 1)
		}
	case tensor.Int64:
		for i := range x.AsInt64() {
			x.AsInt64()[i] = int64(i + 1)
		}
	case tensor.Float32:
		for i := range x.AsFloat32() {
			x.AsFloat32()[i] = float32(i + 1)
		}
	case tensor.Float64:
		for i := range x.AsFloat64() {
			x.AsFloat64()[i] = float64(i + 1)
		}
	case tensor.Complex128:
		for i := range x.AsComplex128() {
			x.AsComplex128()[i] = complex(float64(i+1), 0)
		}
	}
	return x
}

// Expected values match numpy.sum(numpy.arange(1, size+1).reshape(shape), axis=axis).
var sumAxisCases = []struct {
	shape  tensor.Shape
	axis   int
	result []float64
}{
	{tensor.Shape{2, 3, 4}, 0, []float64{14, 16, 18, 20, 22, 24, 26, 28, 30, 32, 34, 36}},
	{tensor.Shape{2, 3, 4}, 1, []float64{15, 18, 21, 24, 51, 54, 57, 60}},
	{tensor.Shape{2, 3, 4}, 2, []float64{10, 26, 42, 58, 74, 90}},
	{tensor.Shape{1, 1, 1}, 0, []float64{1}},
	{tensor.Shape{1, 1, 1}, 1, []float64{1}},
	{tensor.Shape{1, 1, 1}, 2, []float64{1}},
	{tensor.Shape{2, 3, 4, 2}, 0, []float64{26, 28, 30, 32, 34, 36, 38, 40, 42, 44, 46, 48,
		50, 52, 54, 56, 58, 60, 62, 64, 66, 68, 70, 72}},
	{tensor.Shape{2, 3, 4, 2}, 1, []float64{27, 30, 33, 36, 39, 42, 45, 48, 99, 102, 105, 108, 111, 114, 117, 120}},
	{tensor.Shape{2, 3, 4, 2}, 2, []float64{16, 20, 48, 52, 80, 84, 112, 116, 144, 148, 176, 180}},
	{tensor.Shape{2, 3, 4, 2}, 3, []float64{3, 7, 11, 15, 19, 23, 27, 31, 35, 39, 43, 47,
		51, 55, 59, 63, 67, 71, 75, 79, 83, 87, 91, 95}},
	{tensor.Shape{3, 4}, 0, []float64{15, 18, 21, 24}},
	{tensor.Shape{3, 4}, 1, []float64{10, 26, 42}},
	{tensor.Shape{1}, 0, []float64{1}},
}

func TestSumAxis_Calibration(t *testing.T) {
	backends := map[string]*CPUBackend{
		"sequential": New(WithConfig(parallel.Config{Enabled: false})),
		"parallel":   New(WithConfig(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1})),
	}

	for name, backend := range backends {
		t.Run(name, func(t *testing.T) {
			for _, tc := range sumAxisCases {
				x := iotaRaw(t, tc.shape, tensor.Float64)
				result := backend.SumAxis(x, tc.axis, false)

				require.True(t, result.Shape().Equal(tc.shape.Without(tc.axis)), "shape %v axis %d: got %v", tc.shape, tc.axis, result.Shape())
				assert.Equal(t, tc.result, result.AsFloat64(), "shape %v axis %d", tc.shape, tc.axis)
			}
		})
	}
}

func TestSumAxis_Int64(t *testing.T) {
	backend := New()

	x := iotaRaw(t, tensor.Shape{3, 4}, tensor.Int64)
	assert.Equal(t, []int64{15, 18, 21, 24}, backend.SumAxis(x, 0, false).AsInt64())
	assert.Equal(t, []int64{10, 26, 42}, backend.SumAxis(x, 1, false).AsInt64())
}

func TestSumAxis_KeepDim(t *testing.T) {
	backend := New()

	x := iotaRaw(t, tensor.Shape{2, 3}, tensor.Float32)
	result := backend.SumAxis(x, -1, true)

	assert.True(t, result.Shape().Equal(tensor.Shape{2, 1}), "got %v", result.Shape())
	assert.Equal(t, []float32{6, 15}, result.AsFloat32())
}

func TestSumAxis_1DToScalar(t *testing.T) {
	backend := New()

	x := iotaRaw(t, tensor.Shape{4}, tensor.Float32)
	result := backend.SumAxis(x, 0, false)

	assert.Empty(t, result.Shape())
	assert.Equal(t, []float32{10}, result.AsFloat32())
}

func TestSumAxis_ZeroExtent(t *testing.T) {
	backend := New()

	x, err := tensor.NewRaw(tensor.Shape{3, 0}, tensor.Float64, tensor.CPU)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0, 0}, backend.SumAxis(x, 1, false).AsFloat64())
	assert.Empty(t, backend.SumAxis(x, 0, false).AsFloat64())
}

func TestSumAxis_InvalidAxis(t *testing.T) {
	backend := New()
	x := iotaRaw(t, tensor.Shape{2, 3}, tensor.Float32)

	assert.PanicsWithValue(t, "sum: axis 2 out of range for 2D tensor", func() {
		backend.SumAxis(x, 2, false)
	})
	assert.Panics(t, func() { backend.SumAxis(x, -3, false) })
}

func TestProdMinMaxAxis(t *testing.T) {
	backend := New()
	x := iotaRaw(t, tensor.Shape{2, 3}, tensor.Int32)

	assert.Equal(t, []int32{4, 10, 18}, backend.ProdAxis(x, 0, false).AsInt32())
	assert.Equal(t, []int32{6, 120}, backend.ProdAxis(x, 1, false).AsInt32())
	assert.Equal(t, []int32{1, 4}, backend.MinAxis(x, 1, false).AsInt32())
	assert.Equal(t, []int32{4, 5, 6}, backend.MaxAxis(x, 0, false).AsInt32())
}

func TestMinAxis_ZeroExtentPanics(t *testing.T) {
	backend := New()
	x, err := tensor.NewRaw(tensor.Shape{2, 0}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)

	assert.Panics(t, func() { backend.MinAxis(x, 1, false) })
}

func TestMeanAxis(t *testing.T) {
	backend := New()
	x := iotaRaw(t, tensor.Shape{3, 4}, tensor.Float64)

	assert.Equal(t, []float64{5, 6, 7, 8}, backend.MeanAxis(x, 0, false).AsFloat64())
	assert.Equal(t, []float64{2.5, 6.5, 10.5}, backend.MeanAxis(x, -1, false).AsFloat64())

	ints := iotaRaw(t, tensor.Shape{2}, tensor.Int32)
	assert.Panics(t, func() { backend.MeanAxis(ints, 0, false) })
}

func TestComplexReductions(t *testing.T) {
	backend := New()
	x, err := tensor.FromSlice([]complex128{1 + 1i, 2, 3 - 1i, 1i}, tensor.Shape{2, 2})
	require.NoError(t, err)

	assert.Equal(t, []complex128{4, 2 + 1i}, backend.SumAxis(x, 0, false).AsComplex128())
	assert.Equal(t, []complex128{2 + 2i, 1 + 3i}, backend.ProdAxis(x, 1, false).AsComplex128())
	assert.Panics(t, func() { backend.MaxAxis(x, 0, false) })
}

func TestSum_Full(t *testing.T) {
	backend := New()

	for _, shape := range []tensor.Shape{{}, {5}, {2, 3}, {2, 3, 4}} {
		x := iotaRaw(t, shape, tensor.Float64)
		n := float64(shape.NumElements())

		result := backend.Sum(x)
		require.Empty(t, result.Shape())
		assert.InDelta(t, n*(n+1)/2, result.AsFloat64()[0], 0, "shape %v", shape)
	}
}

func TestReduceAxis_CustomOp(t *testing.T) {
	q := parallel.NewQueue(parallel.Config{Enabled: true, NumWorkers: 3, MinChunkSize: 1})
	shape := tensor.Shape{2, 3, 4}
	data := make([]int, shape.NumElements())
	for i := range data {
		data[i] = i + 1
	}

	// Count odd elements along axis 2.
	v := tensor.NewAxisView(data, shape, 2)
	dst := make([]int, v.OutputSize())
	ReduceAxis(q, v, 0, func(acc, x int) int { return acc + x%2 }, dst)

	assert.Equal(t, []int{2, 2, 2, 2, 2, 2}, dst)

	v.ClearAxis()
	total := make([]int, 1)
	ReduceAxis(q, v, 0, func(acc, x int) int { return acc + x }, total)
	assert.Equal(t, 300, total[0])
}

func TestReduceAxis_ShortDestinationPanics(t *testing.T) {
	q := parallel.NewQueue(parallel.DefaultConfig())
	v := tensor.NewAxisView(make([]float64, 12), tensor.Shape{3, 4}, 0)

	assert.Panics(t, func() {
		ReduceAxis(q, v, 0, func(acc, x float64) float64 { return acc + x }, make([]float64, 3))
	})
}

func TestResultReleaseReturnsToPool(t *testing.T) {
	backend := New()
	x := iotaRaw(t, tensor.Shape{16, 16}, tensor.Float64)

	result := backend.SumAxis(x, 0, false)
	result.Release()

	_, released, _, _, pooled := backend.Queue().Pool().Stats()
	assert.Equal(t, uint64(1), released)
	assert.Equal(t, 1, pooled)
}
